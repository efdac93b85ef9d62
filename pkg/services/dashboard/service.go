package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/de-tools/cash-atlas/pkg/models/domain"
	"github.com/de-tools/cash-atlas/pkg/models/store"
	"github.com/de-tools/cash-atlas/pkg/services/aggregate"
	"github.com/de-tools/cash-atlas/pkg/services/fiscal"
	"github.com/de-tools/cash-atlas/pkg/services/ingest"
	"github.com/de-tools/cash-atlas/pkg/services/reconcile"
	"github.com/de-tools/cash-atlas/pkg/services/reshape"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const windowCaption = "MTD = Last completed month | QTD = Current quarter till last completed month | YTD = Financial year till last completed month"

// Options tune a single render pass.
type Options struct {
	// Project narrows the inflow-by-project summary. Empty or AllProjects
	// leaves it unfiltered. The reconciliation inflow row is never filtered.
	Project string
	// Categories overrides the expense allow-list.
	Categories *domain.CategoryList
}

// Service renders period dashboards from validated ledger tables. Every
// call is an independent pass over its inputs; the service holds no state
// between calls, so concurrent renders need no locking.
type Service interface {
	Render(ctx context.Context, expense, inflow *store.Table, today time.Time, opts Options) (*domain.Dashboard, error)
	InflowReport(ctx context.Context, inflow *store.Table, today time.Time, project string) (*domain.InflowReport, error)
	Projects(ctx context.Context, inflow *store.Table) ([]string, error)
}

type service struct {
	calendar fiscal.Calendar
}

func NewService(calendar fiscal.Calendar) Service {
	return &service{calendar: calendar}
}

func (s *service) Render(
	ctx context.Context,
	expense, inflow *store.Table,
	today time.Time,
	opts Options,
) (*domain.Dashboard, error) {
	logger := zerolog.Ctx(ctx)

	expenses, err := ingest.DecodeExpenses(expense)
	if err != nil {
		return nil, fmt.Errorf("expense ledger: %w", err)
	}
	inflows, err := ingest.DecodeInflows(inflow)
	if err != nil {
		return nil, fmt.Errorf("inflow ledger: %w", err)
	}

	windows := s.calendar.WindowsFor(today)

	categories := domain.DefaultCategories()
	if opts.Categories != nil {
		categories = *opts.Categories
	}

	result := reshape.NewReshaper(categories).Reshape(expenses)
	if len(result.Excluded) > 0 {
		logger.Warn().
			Strs("categories", result.Excluded).
			Str("allow_list", categories.Version).
			Msg("categories excluded from expense totals")
	}

	grouped := aggregate.GroupInflows(inflows)
	projects := distinctProjects(grouped)
	summary, chart := inflowDistribution(grouped, windows, opts.Project)

	engine := reconcile.NewEngine(result.Rows, result.Included, inflows, windows)

	return &domain.Dashboard{
		Reference:          today,
		Windows:            windows,
		Caption:            windowCaption,
		Inflow:             summary,
		InflowChart:        chart,
		Reconciliation:     engine.Table(),
		Projects:           projects,
		ExcludedCategories: result.Excluded,
	}, nil
}

func (s *service) InflowReport(
	ctx context.Context,
	inflow *store.Table,
	today time.Time,
	project string,
) (*domain.InflowReport, error) {
	inflows, err := ingest.DecodeInflows(inflow)
	if err != nil {
		return nil, fmt.Errorf("inflow ledger: %w", err)
	}

	windows := s.calendar.WindowsFor(today)
	grouped := aggregate.GroupInflows(inflows)
	summary, chart := inflowDistribution(grouped, windows, project)

	return &domain.InflowReport{
		Reference: today,
		Windows:   windows,
		Caption:   windowCaption,
		Summary:   summary,
		Chart:     chart,
		Projects:  distinctProjects(grouped),
	}, nil
}

func (s *service) Projects(_ context.Context, inflow *store.Table) ([]string, error) {
	inflows, err := ingest.DecodeInflows(inflow)
	if err != nil {
		return nil, fmt.Errorf("inflow ledger: %w", err)
	}
	return distinctProjects(aggregate.GroupInflows(inflows)), nil
}

// inflowDistribution builds the by-project summary and its chart series.
// Projects with no inflow in any window are omitted from the table; the
// totals row sums the rows shown.
func inflowDistribution(
	grouped []domain.GroupedInflowRow,
	windows domain.Windows,
	project string,
) (domain.InflowSummary, []domain.ChartSeries) {
	rows := grouped
	if project != "" && project != domain.AllProjects {
		rows = make([]domain.GroupedInflowRow, 0, len(grouped))
		for _, row := range grouped {
			if row.Project == project {
				rows = append(rows, row)
			}
		}
	}

	rowMonth := func(r domain.GroupedInflowRow) time.Time { return r.Month }
	rowValue := func(r domain.GroupedInflowRow) decimal.Decimal { return r.Inflow }
	rowGroup := func(r domain.GroupedInflowRow) string { return r.Project }

	byPeriod := map[domain.Period]map[string]decimal.Decimal{}
	for _, period := range domain.Periods() {
		byPeriod[period] = aggregate.SumByGroupInWindow(rows, rowGroup, rowMonth, rowValue, windows.Get(period))
	}

	names := make(map[string]struct{})
	for _, sums := range byPeriod {
		for name := range sums {
			names[name] = struct{}{}
		}
	}
	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)

	summary := domain.InflowSummary{Total: domain.InflowProjectRow{Project: "Total"}}
	for _, name := range ordered {
		row := domain.InflowProjectRow{
			Project: name,
			MTD:     byPeriod[domain.PeriodMTD][name],
			QTD:     byPeriod[domain.PeriodQTD][name],
			YTD:     byPeriod[domain.PeriodYTD][name],
		}
		summary.Rows = append(summary.Rows, row)
		summary.Total.MTD = summary.Total.MTD.Add(row.MTD)
		summary.Total.QTD = summary.Total.QTD.Add(row.QTD)
		summary.Total.YTD = summary.Total.YTD.Add(row.YTD)
	}

	chart := make([]domain.ChartSeries, 0, 3)
	for _, period := range domain.Periods() {
		series := domain.ChartSeries{Period: period}
		for _, row := range summary.Rows {
			series.Points = append(series.Points, domain.ChartPoint{
				Project: row.Project,
				Value:   row.Figure(period),
			})
		}
		chart = append(chart, series)
	}

	return summary, chart
}

func distinctProjects(grouped []domain.GroupedInflowRow) []string {
	seen := make(map[string]struct{})
	var projects []string
	for _, row := range grouped {
		if _, ok := seen[row.Project]; ok {
			continue
		}
		seen[row.Project] = struct{}{}
		projects = append(projects, row.Project)
	}
	sort.Strings(projects)
	return projects
}
