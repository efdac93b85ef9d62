package reshape

import (
	"sort"
	"time"

	"github.com/de-tools/cash-atlas/pkg/models/domain"
	"github.com/de-tools/cash-atlas/pkg/services/ingest"
	"github.com/shopspring/decimal"
)

// Reshaper pivots long-format expense records into per-month wide rows.
// The injected category list decides which heads count into totals.
type Reshaper struct {
	categories domain.CategoryList
}

func NewReshaper(categories domain.CategoryList) *Reshaper {
	return &Reshaper{categories: categories}
}

// Result carries the wide rows plus the category keys seen in the data,
// split by allow-list membership. Excluded keys never enter totals but are
// surfaced so callers can warn instead of dropping them silently.
type Result struct {
	Rows     []domain.WideExpenseRow
	Included []string
	Excluded []string
}

// CategoryKey derives the pivot key for a raw category name.
func CategoryKey(raw string) string {
	return ingest.NormalizeName(raw)
}

// Reshape groups records by month and category key. Duplicate records for
// the same month and category are summed; categories absent from a month
// contribute zero.
func (r *Reshaper) Reshape(records []domain.ExpenseRecord) Result {
	byMonth := make(map[time.Time]map[string]domain.CategoryAmounts)
	matched := make(map[string]bool)

	for _, rec := range records {
		key := CategoryKey(rec.Category)
		if key == "" {
			continue
		}

		amounts := byMonth[rec.Month]
		if amounts == nil {
			amounts = make(map[string]domain.CategoryAmounts)
			byMonth[rec.Month] = amounts
		}

		pair := amounts[key]
		pair.Actual = pair.Actual.Add(rec.Actual)
		pair.Target = pair.Target.Add(rec.Target)
		amounts[key] = pair

		if _, seen := matched[key]; !seen {
			matched[key] = r.categories.Matches(key)
		}
	}

	rows := make([]domain.WideExpenseRow, 0, len(byMonth))
	for month, amounts := range byMonth {
		total := decimal.Zero
		for key, pair := range amounts {
			if matched[key] {
				total = total.Add(pair.Actual)
			}
		}
		rows = append(rows, domain.WideExpenseRow{
			Month:              month,
			Categories:         amounts,
			TotalActualExpense: total,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month.Before(rows[j].Month) })

	var included, excluded []string
	for key, ok := range matched {
		if ok {
			included = append(included, key)
		} else {
			excluded = append(excluded, key)
		}
	}
	sort.Strings(included)
	sort.Strings(excluded)

	return Result{Rows: rows, Included: included, Excluded: excluded}
}
