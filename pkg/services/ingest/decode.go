package ingest

import (
	"strings"

	"github.com/de-tools/cash-atlas/pkg/models/domain"
	"github.com/de-tools/cash-atlas/pkg/models/store"
	"github.com/shopspring/decimal"
)

var (
	expenseColumns = []string{"category", "month", "year", "actual", "target"}
	inflowColumns  = []string{"project", "month", "year", "dm inflow actual", "dm inflow target"}
)

// DecodeExpenses normalizes, validates and converts an expense table into
// records with resolved month markers.
func DecodeExpenses(t *store.Table) ([]domain.ExpenseRecord, error) {
	t = NormalizeColumns(t)
	if err := ValidateRequiredColumns(t, expenseColumns); err != nil {
		return nil, err
	}
	markers, err := NormalizeMonthYear(t)
	if err != nil {
		return nil, err
	}

	categoryIdx := t.ColumnIndex("category")
	actualIdx := t.ColumnIndex("actual")
	targetIdx := t.ColumnIndex("target")

	records := make([]domain.ExpenseRecord, 0, len(t.Rows))
	for i := range t.Rows {
		records = append(records, domain.ExpenseRecord{
			Category: t.Cell(i, categoryIdx),
			Month:    markers[i],
			Actual:   parseAmount(t.Cell(i, actualIdx)),
			Target:   parseAmount(t.Cell(i, targetIdx)),
		})
	}
	return records, nil
}

// DecodeInflows normalizes, validates and converts an inflow table.
func DecodeInflows(t *store.Table) ([]domain.InflowRecord, error) {
	t = NormalizeColumns(t)
	if err := ValidateRequiredColumns(t, inflowColumns); err != nil {
		return nil, err
	}
	markers, err := NormalizeMonthYear(t)
	if err != nil {
		return nil, err
	}

	projectIdx := t.ColumnIndex("project")
	actualIdx := t.ColumnIndex("dm inflow actual")
	targetIdx := t.ColumnIndex("dm inflow target")

	records := make([]domain.InflowRecord, 0, len(t.Rows))
	for i := range t.Rows {
		records = append(records, domain.InflowRecord{
			Project: t.Cell(i, projectIdx),
			Month:   markers[i],
			Actual:  parseAmount(t.Cell(i, actualIdx)),
			Target:  parseAmount(t.Cell(i, targetIdx)),
		})
	}
	return records, nil
}

// parseAmount reads a numeric cell. Date keys are strict; amounts are not:
// unparseable values count as zero so sparse ledgers still total up.
func parseAmount(cell string) decimal.Decimal {
	cell = strings.ReplaceAll(cell, ",", "")
	if cell == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Zero
	}
	return d
}
