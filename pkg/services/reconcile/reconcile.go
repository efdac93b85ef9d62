package reconcile

import (
	"strings"
	"time"

	"github.com/de-tools/cash-atlas/pkg/models/domain"
	"github.com/de-tools/cash-atlas/pkg/services/aggregate"
	"github.com/shopspring/decimal"
)

// Aggregate figure keys. Heads come from the category allow-list, which
// does not contain these labels.
const (
	keyTotalInflow  = "total inflow"
	keyTotalOutflow = "total outflow"
	keyNetCashFlow  = "net cash flow"
)

// Engine holds the reconciled figures for one render pass. Figures live in
// a typed map keyed by period and category; outflow totals are sums of the
// category figures, so the totals cannot drift from the rows.
type Engine struct {
	heads   []string
	windows domain.Windows
	figures map[domain.FigureKey]domain.PeriodFigure
}

// NewEngine windows and reconciles the two ledgers. heads are the
// allow-listed category keys present in the wide rows, already sorted; the
// inflow records arrive unfiltered.
func NewEngine(
	wide []domain.WideExpenseRow,
	heads []string,
	inflows []domain.InflowRecord,
	windows domain.Windows,
) *Engine {
	e := &Engine{
		heads:   heads,
		windows: windows,
		figures: make(map[domain.FigureKey]domain.PeriodFigure),
	}
	e.build(wide, inflows)
	return e
}

func (e *Engine) build(wide []domain.WideExpenseRow, inflows []domain.InflowRecord) {
	rowMonth := func(r domain.WideExpenseRow) time.Time { return r.Month }
	inflowMonth := func(r domain.InflowRecord) time.Time { return r.Month }
	inflowActual := func(r domain.InflowRecord) decimal.Decimal { return r.Actual }
	inflowTarget := func(r domain.InflowRecord) decimal.Decimal { return r.Target }

	for _, period := range domain.Periods() {
		w := e.windows.Get(period)

		inflow := domain.NewPeriodFigure(
			aggregate.SumInWindow(inflows, inflowMonth, inflowTarget, w),
			aggregate.SumInWindow(inflows, inflowMonth, inflowActual, w),
		)
		e.figures[domain.FigureKey{Period: period, Category: keyTotalInflow}] = inflow

		var outflow domain.PeriodFigure
		for _, head := range e.heads {
			fig := domain.NewPeriodFigure(
				aggregate.SumInWindow(wide, rowMonth, categoryTarget(head), w),
				aggregate.SumInWindow(wide, rowMonth, categoryActual(head), w),
			)
			e.figures[domain.FigureKey{Period: period, Category: head}] = fig
			outflow = outflow.Add(fig)
		}
		e.figures[domain.FigureKey{Period: period, Category: keyTotalOutflow}] = outflow

		net := domain.NewPeriodFigure(
			inflow.Target.Sub(outflow.Target),
			inflow.Achieved.Sub(outflow.Achieved),
		)
		e.figures[domain.FigureKey{Period: period, Category: keyNetCashFlow}] = net
	}
}

func categoryActual(head string) func(domain.WideExpenseRow) decimal.Decimal {
	return func(r domain.WideExpenseRow) decimal.Decimal { return r.Amounts(head).Actual }
}

func categoryTarget(head string) func(domain.WideExpenseRow) decimal.Decimal {
	return func(r domain.WideExpenseRow) decimal.Decimal { return r.Amounts(head).Target }
}

// InflowFigure returns the windowed inflow target/achieved/delta.
func (e *Engine) InflowFigure(p domain.Period) domain.PeriodFigure {
	return e.figures[domain.FigureKey{Period: p, Category: keyTotalInflow}]
}

// ExpenseFigure returns one category's windowed figure. Unknown heads
// yield a zero figure.
func (e *Engine) ExpenseFigure(category string, p domain.Period) domain.PeriodFigure {
	return e.figures[domain.FigureKey{Period: p, Category: category}]
}

// OutflowTotals returns the sum of all category figures for a window.
func (e *Engine) OutflowTotals(p domain.Period) domain.PeriodFigure {
	return e.figures[domain.FigureKey{Period: p, Category: keyTotalOutflow}]
}

// NetCashFlow returns inflow minus outflow for a window.
func (e *Engine) NetCashFlow(p domain.Period) domain.PeriodFigure {
	return e.figures[domain.FigureKey{Period: p, Category: keyNetCashFlow}]
}

// Table assembles the ordered reconciliation rows: Total Inflow, one row
// per category head, Total Outflow, Net Cash Flow.
func (e *Engine) Table() domain.ReconTable {
	rows := make([]domain.ReconRow, 0, len(e.heads)+3)
	rows = append(rows, e.row(domain.RowTotalInflow, "Total Inflow", keyTotalInflow))
	for _, head := range e.heads {
		rows = append(rows, e.row(domain.RowCategory, displayTitle(head), head))
	}
	rows = append(rows, e.row(domain.RowTotalOutflow, "Total Outflow", keyTotalOutflow))
	rows = append(rows, e.row(domain.RowNetCashFlow, "Net Cash Flow", keyNetCashFlow))
	return domain.ReconTable{Rows: rows}
}

func (e *Engine) row(kind domain.RowKind, label, category string) domain.ReconRow {
	return domain.ReconRow{
		Kind:  kind,
		Label: label,
		MTD:   e.figures[domain.FigureKey{Period: domain.PeriodMTD, Category: category}],
		QTD:   e.figures[domain.FigureKey{Period: domain.PeriodQTD, Category: category}],
		YTD:   e.figures[domain.FigureKey{Period: domain.PeriodYTD, Category: category}],
	}
}

// displayTitle upper-cases the first letter of each word in a category key.
func displayTitle(key string) string {
	words := strings.Split(key, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
