package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MissingColumnsError reports every required column absent from an input
// table, not just the first.
type MissingColumnsError struct {
	Table   string
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s table is missing columns: %s", e.Table, strings.Join(e.Columns, ", "))
}

// InvalidMonthError reports every distinct month value that is not a
// recognized month name, in first-seen order.
type InvalidMonthError struct {
	Values []string
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("invalid month values: %s", strings.Join(e.Values, ", "))
}

// InvalidDateError reports rows whose month/year pair does not form a
// calendar date. Rows are 1-based source positions, header included.
type InvalidDateError struct {
	Rows []int
}

func (e *InvalidDateError) Error() string {
	rows := make([]string, 0, len(e.Rows))
	for _, r := range e.Rows {
		rows = append(rows, strconv.Itoa(r))
	}
	return fmt.Sprintf("invalid month/year combinations at rows: %s", strings.Join(rows, ", "))
}
