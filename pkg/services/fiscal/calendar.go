package fiscal

import (
	"time"

	"github.com/de-tools/cash-atlas/pkg/models/domain"
)

// Calendar derives reporting windows for a fiscal year anchored at
// StartMonth. All functions are pure; month markers are UTC first-of-month
// dates.
type Calendar struct {
	StartMonth time.Month
}

// NewCalendar returns the company calendar: fiscal year runs April to March.
func NewCalendar() Calendar {
	return Calendar{StartMonth: time.April}
}

// MonthStart truncates a date to the first day of its month.
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// LastCompletedMonth returns the marker of the month immediately preceding
// today's month, rolling the year back at January.
func (c Calendar) LastCompletedMonth(today time.Time) time.Time {
	return MonthStart(today).AddDate(0, -1, 0)
}

// FiscalYearStart returns the start marker of the fiscal year containing
// date. Months before StartMonth belong to the fiscal year that began the
// previous calendar year.
func (c Calendar) FiscalYearStart(date time.Time) time.Time {
	year := date.Year()
	if date.Month() < c.StartMonth {
		year--
	}
	return time.Date(year, c.StartMonth, 1, 0, 0, 0, 0, time.UTC)
}

// QuarterStart returns the start marker of the fiscal quarter containing
// date. Quarters begin every three months from the fiscal year start.
func (c Calendar) QuarterStart(date time.Time) time.Time {
	fyStart := c.FiscalYearStart(date)
	months := monthsBetween(fyStart, MonthStart(date))
	return fyStart.AddDate(0, months-months%3, 0)
}

// WindowsFor derives the MTD, QTD and YTD windows for a reference date.
// All three end at the last completed month.
func (c Calendar) WindowsFor(today time.Time) domain.Windows {
	end := c.LastCompletedMonth(today)
	return domain.Windows{
		MTD: domain.FiscalWindow{Start: end, End: end},
		QTD: domain.FiscalWindow{Start: c.QuarterStart(end), End: end},
		YTD: domain.FiscalWindow{Start: c.FiscalYearStart(end), End: end},
	}
}

func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
