package ingest

import (
	"testing"
	"time"

	"github.com/de-tools/cash-atlas/pkg/models/domain"
	"github.com/de-tools/cash-atlas/pkg/models/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeExpenses(t *testing.T) {
	t.Run("success - raw headers are matched after normalization", func(t *testing.T) {
		table := store.NewTable("expense",
			[]string{" Category ", "Month", "YEAR", "Actual", "Target"},
			[][]string{
				{"Rent", "June", "2025", "100", "150"},
				{"Salary", "Jun", "2025", "900.50", "1000"},
			})

		records, err := DecodeExpenses(table)

		require.NoError(t, err)
		require.Len(t, records, 2)
		june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "Rent", records[0].Category)
		assert.Equal(t, june, records[0].Month)
		assert.True(t, records[0].Actual.Equal(decimal.NewFromInt(100)))
		assert.True(t, records[1].Actual.Equal(decimal.RequireFromString("900.50")))
	})

	t.Run("success - unparseable amounts degrade to zero", func(t *testing.T) {
		table := store.NewTable("expense",
			[]string{"category", "month", "year", "actual", "target"},
			[][]string{
				{"Rent", "June", "2025", "n/a", ""},
				{"Rent", "July", "2025", "1,250", "1,000"},
			})

		records, err := DecodeExpenses(table)

		require.NoError(t, err)
		assert.True(t, records[0].Actual.IsZero())
		assert.True(t, records[0].Target.IsZero())
		assert.True(t, records[1].Actual.Equal(decimal.NewFromInt(1250)))
		assert.True(t, records[1].Target.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("error - missing columns surface before decoding", func(t *testing.T) {
		table := store.NewTable("expense",
			[]string{"category", "month"},
			[][]string{{"Rent", "June"}})

		_, err := DecodeExpenses(table)

		var missing *domain.MissingColumnsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{"year", "actual", "target"}, missing.Columns)
	})
}

func TestDecodeInflows(t *testing.T) {
	t.Run("success - duplicate project months stay separate rows", func(t *testing.T) {
		table := store.NewTable("inflow",
			[]string{"Project", "Month", "Year", "DM Inflow Actual", "DM Inflow Target"},
			[][]string{
				{"Alpha", "June", "2025", "100", "120"},
				{"Alpha", "June", "2025", "50", "30"},
			})

		records, err := DecodeInflows(table)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Alpha", records[0].Project)
		assert.True(t, records[1].Actual.Equal(decimal.NewFromInt(50)))
	})

	t.Run("error - invalid month values collected across rows", func(t *testing.T) {
		table := store.NewTable("inflow",
			[]string{"project", "month", "year", "dm inflow actual", "dm inflow target"},
			[][]string{
				{"Alpha", "Juny", "2025", "100", "120"},
				{"Beta", "Juny", "2025", "10", "20"},
			})

		_, err := DecodeInflows(table)

		var invalid *domain.InvalidMonthError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, []string{"Juny"}, invalid.Values)
	})
}
