package domain

import "github.com/shopspring/decimal"

// PeriodFigure is a target/achieved pair with its delta for one window.
type PeriodFigure struct {
	Target   decimal.Decimal
	Achieved decimal.Decimal
	Delta    decimal.Decimal
}

// NewPeriodFigure builds a figure with Delta = Achieved - Target.
func NewPeriodFigure(target, achieved decimal.Decimal) PeriodFigure {
	return PeriodFigure{
		Target:   target,
		Achieved: achieved,
		Delta:    achieved.Sub(target),
	}
}

// Add sums two figures field by field. Summing figures preserves the
// delta identity because delta is linear in target and achieved.
func (f PeriodFigure) Add(other PeriodFigure) PeriodFigure {
	return PeriodFigure{
		Target:   f.Target.Add(other.Target),
		Achieved: f.Achieved.Add(other.Achieved),
		Delta:    f.Delta.Add(other.Delta),
	}
}

// FigureKey addresses one figure in a reconciliation set.
type FigureKey struct {
	Period   Period
	Category string
}
