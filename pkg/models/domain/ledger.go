package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseRecord is one long-format expense row: one category for one month.
// Month is a validated first-of-month marker.
type ExpenseRecord struct {
	Category string
	Month    time.Time
	Actual   decimal.Decimal
	Target   decimal.Decimal
}

// InflowRecord is one cash-inflow row. Several rows may share the same
// project and month; aggregation sums them.
type InflowRecord struct {
	Project string
	Month   time.Time
	Actual  decimal.Decimal
	Target  decimal.Decimal
}

// GroupedInflowRow is the summed actual inflow for one project and month.
type GroupedInflowRow struct {
	Project string
	Month   time.Time
	Inflow  decimal.Decimal
}

// CategoryAmounts is the actual/target pair for one category within a month.
type CategoryAmounts struct {
	Actual decimal.Decimal
	Target decimal.Decimal
}

// WideExpenseRow is one month of expenses pivoted to one amount pair per
// category key. Categories missing from a month are simply absent; lookups
// yield zero amounts. TotalActualExpense covers allow-listed categories only.
type WideExpenseRow struct {
	Month              time.Time
	Categories         map[string]CategoryAmounts
	TotalActualExpense decimal.Decimal
}

// Amounts returns the pair for a category key, zero-valued when absent.
func (r WideExpenseRow) Amounts(key string) CategoryAmounts {
	return r.Categories[key]
}
