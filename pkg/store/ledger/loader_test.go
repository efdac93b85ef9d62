package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.xlsx")

	f := excelize.NewFile()
	defer func() { require.NoError(t, f.Close()) }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("success - csv with ragged rows", func(t *testing.T) {
		path := writeCSV(t, "Category,Month,Year,Actual,Target\nRent,July,2025,200,150\nSalary,July\n")

		table, err := Load("expense", path)

		require.NoError(t, err)
		assert.Equal(t, "expense", table.Name)
		assert.Equal(t, []string{"Category", "Month", "Year", "Actual", "Target"}, table.Columns)
		require.Len(t, table.Rows, 2)
		assert.Equal(t, "200", table.Cell(0, 3))
		assert.Equal(t, "", table.Cell(1, 3))
	})

	t.Run("success - xlsx first sheet", func(t *testing.T) {
		path := writeXLSX(t, [][]interface{}{
			{"Project", "Month", "Year", "DM Inflow Actual", "DM Inflow Target"},
			{"Alpha", "July", 2025, 1800, 1500},
		})

		table, err := Load("inflow", path)

		require.NoError(t, err)
		assert.Equal(t, []string{"Project", "Month", "Year", "DM Inflow Actual", "DM Inflow Target"}, table.Columns)
		require.Len(t, table.Rows, 1)
		assert.Equal(t, "Alpha", table.Cell(0, 0))
		assert.Equal(t, "1800", table.Cell(0, 3))
	})

	t.Run("error - unsupported extension", func(t *testing.T) {
		_, err := Load("expense", "ledger.parquet")

		assert.ErrorContains(t, err, `unsupported ledger format ".parquet"`)
	})

	t.Run("error - missing file", func(t *testing.T) {
		_, err := Load("expense", filepath.Join(t.TempDir(), "absent.csv"))

		assert.ErrorContains(t, err, "open expense ledger")
	})

	t.Run("error - empty file has no header", func(t *testing.T) {
		path := writeCSV(t, "")

		_, err := Load("expense", path)

		assert.ErrorContains(t, err, "expense ledger has no header row")
	})
}
