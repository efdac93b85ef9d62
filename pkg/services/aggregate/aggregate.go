package aggregate

import (
	"sort"
	"time"

	"github.com/de-tools/cash-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// SumInWindow adds up value(row) over rows whose month marker falls inside
// the window, both ends inclusive. An empty window sums to zero.
func SumInWindow[R any](
	rows []R,
	month func(R) time.Time,
	value func(R) decimal.Decimal,
	w domain.FiscalWindow,
) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		if w.Contains(month(row)) {
			total = total.Add(value(row))
		}
	}
	return total
}

// SumByGroupInWindow is SumInWindow keyed by group(row). Groups with no
// rows in the window are absent from the result.
func SumByGroupInWindow[R any](
	rows []R,
	group func(R) string,
	month func(R) time.Time,
	value func(R) decimal.Decimal,
	w domain.FiscalWindow,
) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, row := range rows {
		if !w.Contains(month(row)) {
			continue
		}
		key := group(row)
		totals[key] = totals[key].Add(value(row))
	}
	return totals
}

// GroupInflows sums actual inflow into one row per project and month,
// ordered by project then month.
func GroupInflows(records []domain.InflowRecord) []domain.GroupedInflowRow {
	type key struct {
		project string
		month   time.Time
	}

	sums := make(map[key]decimal.Decimal)
	for _, rec := range records {
		k := key{project: rec.Project, month: rec.Month}
		sums[k] = sums[k].Add(rec.Actual)
	}

	rows := make([]domain.GroupedInflowRow, 0, len(sums))
	for k, inflow := range sums {
		rows = append(rows, domain.GroupedInflowRow{
			Project: k.project,
			Month:   k.month,
			Inflow:  inflow,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Project != rows[j].Project {
			return rows[i].Project < rows[j].Project
		}
		return rows[i].Month.Before(rows[j].Month)
	})
	return rows
}
