package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/de-tools/cash-atlas/pkg/models/store"
	"github.com/xuri/excelize/v2"
)

// Load reads a CSV or XLSX ledger file into a Table. The first row is the
// header; the table name labels validation errors downstream.
func Load(name, path string) (*store.Table, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return loadCSV(name, path)
	case ".xlsx":
		return loadXLSX(name, path)
	default:
		return nil, fmt.Errorf("unsupported ledger format %q", ext)
	}
}

func loadCSV(name, path string) (*store.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s ledger: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Ragged rows are tolerated; short rows read as empty cells.
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s ledger: %w", name, err)
	}
	return tableFrom(name, rows)
}

func loadXLSX(name, path string) (*store.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s workbook: %w", name, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return tableFrom(name, rows)
}

func tableFrom(name string, rows [][]string) (*store.Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s ledger has no header row", name)
	}
	return store.NewTable(name, rows[0], rows[1:]), nil
}
