package adapters

import (
	"github.com/de-tools/cash-atlas/pkg/models/api"
	"github.com/de-tools/cash-atlas/pkg/models/domain"
)

func MapSourceDomainToApi(s domain.Source) api.Source {
	return api.Source{Name: s.Name}
}

func MapWindowsDomainToApi(w domain.Windows) api.Windows {
	return api.Windows{
		MTD: api.Window{Start: w.MTD.Start, End: w.MTD.End},
		QTD: api.Window{Start: w.QTD.Start, End: w.QTD.End},
		YTD: api.Window{Start: w.YTD.Start, End: w.YTD.End},
	}
}

func MapPeriodFigureDomainToApi(f domain.PeriodFigure) api.PeriodFigure {
	return api.PeriodFigure{
		Target:   f.Target,
		Achieved: f.Achieved,
		Delta:    f.Delta,
	}
}

func MapInflowRowDomainToApi(r domain.InflowProjectRow) api.InflowRow {
	return api.InflowRow{
		Project: r.Project,
		MTD:     r.MTD,
		QTD:     r.QTD,
		YTD:     r.YTD,
	}
}

func MapChartSeriesDomainToApi(s domain.ChartSeries) api.ChartSeries {
	res := api.ChartSeries{
		Period: string(s.Period),
		Points: make([]api.ChartPoint, 0, len(s.Points)),
	}
	for _, p := range s.Points {
		res.Points = append(res.Points, api.ChartPoint{Project: p.Project, Value: p.Value})
	}
	return res
}

func MapReconciliationRowDomainToApi(r domain.ReconRow) api.ReconciliationRow {
	return api.ReconciliationRow{
		Kind:  string(r.Kind),
		Label: r.Label,
		MTD:   MapPeriodFigureDomainToApi(r.MTD),
		QTD:   MapPeriodFigureDomainToApi(r.QTD),
		YTD:   MapPeriodFigureDomainToApi(r.YTD),
	}
}

func MapDashboardDomainToApi(d *domain.Dashboard) api.Dashboard {
	res := api.Dashboard{
		Reference:          d.Reference,
		Caption:            d.Caption,
		Windows:            MapWindowsDomainToApi(d.Windows),
		Inflow:             make([]api.InflowRow, 0, len(d.Inflow.Rows)),
		InflowTotal:        MapInflowRowDomainToApi(d.Inflow.Total),
		InflowChart:        make([]api.ChartSeries, 0, len(d.InflowChart)),
		Reconciliation:     make([]api.ReconciliationRow, 0, len(d.Reconciliation.Rows)),
		Projects:           d.Projects,
		ExcludedCategories: d.ExcludedCategories,
	}
	for _, s := range d.InflowChart {
		res.InflowChart = append(res.InflowChart, MapChartSeriesDomainToApi(s))
	}
	for _, r := range d.Reconciliation.Rows {
		res.Reconciliation = append(res.Reconciliation, MapReconciliationRowDomainToApi(r))
	}
	for _, r := range d.Inflow.Rows {
		res.Inflow = append(res.Inflow, MapInflowRowDomainToApi(r))
	}
	return res
}
