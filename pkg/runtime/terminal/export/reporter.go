package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/cash-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

type TableConfig struct {
	LabelWidth int
	CellWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		LabelWidth: 26,
		CellWidth:  13,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// line is one rendered table row: a left-aligned label plus right-aligned
// value cells.
type line struct {
	Label string
	Cells []string
}

type grid struct {
	Header line
	Rows   []line
}

type reconView struct {
	Reference string
	Windows   []string
	Inflow    grid
	Recon     grid
	Excluded  string
	Caption   string
}

type inflowView struct {
	Reference string
	Windows   []string
	Inflow    grid
	Caption   string
}

// HandleReconciliation renders the full dashboard as text tables. Without
// details the reconciliation collapses to its inflow, outflow and net rows.
func (c *Reporter) HandleReconciliation(dash *domain.Dashboard, details bool) error {
	view := reconView{
		Reference: dash.Reference.Format("2006-01-02"),
		Windows:   windowLines(dash.Windows),
		Inflow:    inflowGrid(dash.Inflow),
		Recon:     reconGrid(dash.Reconciliation, details),
		Excluded:  strings.Join(dash.ExcludedCategories, ", "),
		Caption:   dash.Caption,
	}

	tmpl := `
Cash Flow Reconciliation as of {{.Reference}}

{{range .Windows}}{{.}}
{{end}}
Inflow by Project
{{template "grid" .Inflow}}

Reconciliation
{{template "grid" .Recon}}
{{if .Excluded}}
Categories outside the allow-list: {{.Excluded}}
{{end}}
{{.Caption}}
`

	t, err := template.New("recon").Funcs(c.funcMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if _, err := t.New("grid").Parse(gridTemplate); err != nil {
		return fmt.Errorf("failed to parse grid template: %w", err)
	}

	return t.Execute(c.writer, view)
}

// HandleInflow renders the inflow-by-project breakdown on its own.
func (c *Reporter) HandleInflow(report *domain.InflowReport) error {
	view := inflowView{
		Reference: report.Reference.Format("2006-01-02"),
		Windows:   windowLines(report.Windows),
		Inflow:    inflowGrid(report.Summary),
		Caption:   report.Caption,
	}

	tmpl := `
DM Inflow by Project as of {{.Reference}}

{{range .Windows}}{{.}}
{{end}}
{{template "grid" .Inflow}}

{{.Caption}}
`

	t, err := template.New("inflow").Funcs(c.funcMap()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if _, err := t.New("grid").Parse(gridTemplate); err != nil {
		return fmt.Errorf("failed to parse grid template: %w", err)
	}

	return t.Execute(c.writer, view)
}

const gridTemplate = `{{separator (len .Header.Cells)}}
{{formatRow .Header.Label .Header.Cells}}
{{separator (len .Header.Cells)}}
{{range .Rows}}{{formatRow .Label .Cells}}
{{end}}{{separator (len .Header.Cells)}}`

func (c *Reporter) funcMap() template.FuncMap {
	return template.FuncMap{
		"formatRow": func(label string, cells []string) string {
			var b strings.Builder
			fmt.Fprintf(&b, "| %-*s ", c.config.LabelWidth, label)
			for _, cell := range cells {
				fmt.Fprintf(&b, "| %*s ", c.config.CellWidth, cell)
			}
			b.WriteString("|")
			return b.String()
		},
		"separator": func(cells int) string {
			var b strings.Builder
			b.WriteString("+" + strings.Repeat("-", c.config.LabelWidth+2))
			for i := 0; i < cells; i++ {
				b.WriteString("+" + strings.Repeat("-", c.config.CellWidth+2))
			}
			b.WriteString("+")
			return b.String()
		},
	}
}

func windowLines(w domain.Windows) []string {
	format := func(win domain.FiscalWindow) string {
		if win.Start.Equal(win.End) {
			return win.End.Format("Jan 2006")
		}
		return fmt.Sprintf("%s to %s", win.Start.Format("Jan 2006"), win.End.Format("Jan 2006"))
	}
	return []string{
		fmt.Sprintf("MTD: %s", format(w.MTD)),
		fmt.Sprintf("QTD: %s", format(w.QTD)),
		fmt.Sprintf("YTD: %s", format(w.YTD)),
	}
}

func inflowGrid(summary domain.InflowSummary) grid {
	g := grid{
		Header: line{Label: "Project", Cells: []string{"MTD Inflow", "QTD Inflow", "YTD Inflow"}},
	}
	for _, row := range summary.Rows {
		g.Rows = append(g.Rows, line{
			Label: row.Project,
			Cells: []string{formatMoney(row.MTD), formatMoney(row.QTD), formatMoney(row.YTD)},
		})
	}
	g.Rows = append(g.Rows, line{
		Label: summary.Total.Project,
		Cells: []string{
			formatMoney(summary.Total.MTD),
			formatMoney(summary.Total.QTD),
			formatMoney(summary.Total.YTD),
		},
	})
	return g
}

func reconGrid(table domain.ReconTable, details bool) grid {
	g := grid{Header: line{Cells: []string{
		"MTD Target", "MTD Achieved", "MTD Delta",
		"QTD Target", "QTD Achieved", "QTD Delta",
		"YTD Target", "YTD Achieved", "YTD Delta",
	}}}

	for _, row := range table.Rows {
		if !details && row.Kind == domain.RowCategory {
			continue
		}
		cells := make([]string, 0, 9)
		for _, period := range domain.Periods() {
			fig := row.Figure(period)
			cells = append(cells,
				formatMoney(fig.Target),
				formatMoney(fig.Achieved),
				formatDelta(fig.Delta))
		}
		g.Rows = append(g.Rows, line{Label: row.Label, Cells: cells})
	}
	return g
}

func formatMoney(d decimal.Decimal) string {
	return groupDigits(d.StringFixed(0))
}

// formatDelta keeps the sign visible so over- and under-shoot read at a
// glance.
func formatDelta(d decimal.Decimal) string {
	if d.IsZero() {
		return "0"
	}
	if d.IsNegative() {
		return "-" + groupDigits(d.Abs().StringFixed(0))
	}
	return "+" + groupDigits(d.StringFixed(0))
}

func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
