package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllProjects is the filter value that applies no project filter.
const AllProjects = "All Projects"

// Source is a named pair of ledger file paths from the profiles registry.
type Source struct {
	Name        string
	ExpensePath string
	InflowPath  string
}

// InflowProjectRow is one project's inflow across the three windows.
type InflowProjectRow struct {
	Project string
	MTD     decimal.Decimal
	QTD     decimal.Decimal
	YTD     decimal.Decimal
}

// Figure returns the row's inflow for a period kind.
func (r InflowProjectRow) Figure(p Period) decimal.Decimal {
	switch p {
	case PeriodQTD:
		return r.QTD
	case PeriodYTD:
		return r.YTD
	default:
		return r.MTD
	}
}

// InflowSummary is the inflow-by-project table plus its grand totals row.
type InflowSummary struct {
	Rows  []InflowProjectRow
	Total InflowProjectRow
}

// ChartPoint is one bar of an inflow distribution series.
type ChartPoint struct {
	Project string
	Value   decimal.Decimal
}

// ChartSeries is one window's worth of bars, ordered like the summary rows.
type ChartSeries struct {
	Period Period
	Points []ChartPoint
}

// RowKind distinguishes reconciliation summary rows from category detail rows.
type RowKind string

const (
	RowTotalInflow  RowKind = "total_inflow"
	RowCategory     RowKind = "category"
	RowTotalOutflow RowKind = "total_outflow"
	RowNetCashFlow  RowKind = "net_cash_flow"
)

// ReconRow is one reconciliation line: a label plus one figure per window.
type ReconRow struct {
	Kind  RowKind
	Label string
	MTD   PeriodFigure
	QTD   PeriodFigure
	YTD   PeriodFigure
}

// Figure returns the row's figure for a period kind.
func (r ReconRow) Figure(p Period) PeriodFigure {
	switch p {
	case PeriodQTD:
		return r.QTD
	case PeriodYTD:
		return r.YTD
	default:
		return r.MTD
	}
}

// ReconTable is the ordered reconciliation output: Total Inflow, category
// rows sorted by label, Total Outflow, Net Cash Flow.
type ReconTable struct {
	Rows []ReconRow
}

// InflowReport is the inflow-only slice of a render pass.
type InflowReport struct {
	Reference time.Time
	Windows   Windows
	Caption   string
	Summary   InflowSummary
	Chart     []ChartSeries
	Projects  []string
}

// Dashboard is the immutable result of one render pass.
type Dashboard struct {
	Reference          time.Time
	Windows            Windows
	Caption            string
	Inflow             InflowSummary
	InflowChart        []ChartSeries
	Reconciliation     ReconTable
	Projects           []string
	ExcludedCategories []string
}
