package domain

import "time"

// Period identifies one of the three reporting windows.
type Period string

const (
	PeriodMTD Period = "MTD"
	PeriodQTD Period = "QTD"
	PeriodYTD Period = "YTD"
)

// Periods returns the window kinds in display order.
func Periods() []Period {
	return []Period{PeriodMTD, PeriodQTD, PeriodYTD}
}

// FiscalWindow is an inclusive range of month markers. Both ends are
// first-of-month dates; End is always the last completed month.
type FiscalWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether a month marker falls inside the window.
func (w FiscalWindow) Contains(month time.Time) bool {
	return !month.Before(w.Start) && !month.After(w.End)
}

// Windows holds the three rolling windows derived from one reference date.
type Windows struct {
	MTD FiscalWindow
	QTD FiscalWindow
	YTD FiscalWindow
}

// Get returns the window for a period kind.
func (ws Windows) Get(p Period) FiscalWindow {
	switch p {
	case PeriodQTD:
		return ws.QTD
	case PeriodYTD:
		return ws.YTD
	default:
		return ws.MTD
	}
}
