package ingest

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/cash-atlas/pkg/models/domain"
	"github.com/de-tools/cash-atlas/pkg/models/store"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// monthsByName maps accepted month spellings, title-cased, to their
// calendar month. Full names and three-letter abbreviations are canonical.
var monthsByName = map[string]time.Month{
	"January": time.January, "Jan": time.January,
	"February": time.February, "Feb": time.February,
	"March": time.March, "Mar": time.March,
	"April": time.April, "Apr": time.April,
	"May": time.May,
	"June": time.June, "Jun": time.June,
	"July": time.July, "Jul": time.July,
	"August": time.August, "Aug": time.August,
	"September": time.September, "Sep": time.September,
	"October": time.October, "Oct": time.October,
	"November": time.November, "Nov": time.November,
	"December": time.December, "Dec": time.December,
}

// NormalizeName trims, lowercases and collapses inner whitespace runs.
func NormalizeName(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), " ")
}

// NormalizeColumns returns a table with every column name normalized.
// Rows are shared with the input; the transform is idempotent.
func NormalizeColumns(t *store.Table) *store.Table {
	columns := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		columns[i] = NormalizeName(col)
	}
	return store.NewTable(t.Name, columns, t.Rows)
}

// ValidateRequiredColumns reports every required column missing from the
// table, not just the first.
func ValidateRequiredColumns(t *store.Table, required []string) error {
	var missing []string
	for _, col := range required {
		if t.ColumnIndex(col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &domain.MissingColumnsError{Table: t.Name, Columns: missing}
	}
	return nil
}

// CanonicalMonthName title-cases a raw month value for comparison against
// the canonical set.
func CanonicalMonthName(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return value
	}
	return strings.ToUpper(value[:1]) + value[1:]
}

// FindInvalidMonths returns the distinct title-cased month values that are
// not recognized month names, in first-seen order.
func FindInvalidMonths(values []string) []string {
	var invalid []string
	seen := make(map[string]struct{})
	for _, v := range values {
		name := CanonicalMonthName(v)
		if _, ok := monthsByName[name]; ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		invalid = append(invalid, name)
	}
	return invalid
}

// NormalizeMonthYear resolves the month and year columns into one marker per
// row. Every invalid month value is collected before failing; rows whose
// year does not parse fail together as an InvalidDateError. Row numbers
// count from the header, matching the source file.
func NormalizeMonthYear(t *store.Table) ([]time.Time, error) {
	if err := ValidateRequiredColumns(t, []string{"month", "year"}); err != nil {
		return nil, err
	}
	monthIdx := t.ColumnIndex("month")
	yearIdx := t.ColumnIndex("year")

	markers := make([]time.Time, len(t.Rows))
	var invalidMonths []string
	seen := make(map[string]struct{})
	var invalidRows []int

	for i := range t.Rows {
		name := CanonicalMonthName(t.Cell(i, monthIdx))
		month, ok := monthsByName[name]
		if !ok {
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				invalidMonths = append(invalidMonths, name)
			}
			continue
		}

		year, err := strconv.Atoi(t.Cell(i, yearIdx))
		if err != nil || year <= 0 {
			invalidRows = append(invalidRows, i+2)
			continue
		}
		markers[i] = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	}

	if len(invalidMonths) > 0 {
		return nil, &domain.InvalidMonthError{Values: invalidMonths}
	}
	if len(invalidRows) > 0 {
		return nil, &domain.InvalidDateError{Rows: invalidRows}
	}
	return markers, nil
}
