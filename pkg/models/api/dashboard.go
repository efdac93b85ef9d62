package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type Source struct {
	Name string `json:"name"`
}

type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type Windows struct {
	MTD Window `json:"mtd"`
	QTD Window `json:"qtd"`
	YTD Window `json:"ytd"`
}

type PeriodFigure struct {
	Target   decimal.Decimal `json:"target"`
	Achieved decimal.Decimal `json:"achieved"`
	Delta    decimal.Decimal `json:"delta"`
}

type InflowRow struct {
	Project string          `json:"project"`
	MTD     decimal.Decimal `json:"mtd_inflow"`
	QTD     decimal.Decimal `json:"qtd_inflow"`
	YTD     decimal.Decimal `json:"ytd_inflow"`
}

type ChartPoint struct {
	Project string          `json:"project"`
	Value   decimal.Decimal `json:"value"`
}

type ChartSeries struct {
	Period string       `json:"period"`
	Points []ChartPoint `json:"points"`
}

type ReconciliationRow struct {
	Kind  string       `json:"kind"`
	Label string       `json:"label"`
	MTD   PeriodFigure `json:"mtd"`
	QTD   PeriodFigure `json:"qtd"`
	YTD   PeriodFigure `json:"ytd"`
}

type Dashboard struct {
	Reference          time.Time           `json:"reference"`
	Caption            string              `json:"caption"`
	Windows            Windows             `json:"windows"`
	Inflow             []InflowRow         `json:"inflow"`
	InflowTotal        InflowRow           `json:"inflow_total"`
	InflowChart        []ChartSeries       `json:"inflow_chart"`
	Reconciliation     []ReconciliationRow `json:"reconciliation"`
	Projects           []string            `json:"projects"`
	ExcludedCategories []string            `json:"excluded_categories,omitempty"`
}

type Error struct {
	Error string `json:"error"`
}
