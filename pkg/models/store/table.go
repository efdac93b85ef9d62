package store

import "strings"

// Table is a loaded tabular file: a named header row plus string cells.
// It carries no typing; the ingest layer validates and decodes it.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

func NewTable(name string, columns []string, rows [][]string) *Table {
	return &Table{
		Name:    name,
		Columns: columns,
		Rows:    rows,
	}
}

// ColumnIndex returns the position of a column name, or -1 when absent.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed cell at a row and column index. Short rows and
// out-of-range lookups yield an empty string.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	cells := t.Rows[row]
	if col >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col])
}
