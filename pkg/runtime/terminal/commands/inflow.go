package commands

import (
	"fmt"

	"github.com/de-tools/cash-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/cash-atlas/pkg/services/dashboard"
	"github.com/de-tools/cash-atlas/pkg/store/ledger"

	"github.com/spf13/cobra"
)

type InflowCmd struct {
	inflowPath string
	date       string
	project    string
	service    dashboard.Service
	reporter   *export.Reporter
}

func NewInflowCmd(service dashboard.Service, reporter *export.Reporter) *cobra.Command {
	ic := &InflowCmd{service: service, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "inflow",
		Short: "Break down inflows by project per period",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.inflowPath, "inflow", "", "Path to the inflow ledger (csv or xlsx)")
	cmd.Flags().StringVar(&ic.date, "date", "", "Reference date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&ic.project, "project", "", "Limit the breakdown to one project")

	_ = cmd.MarkFlagRequired("inflow")

	return cmd
}

func (ic *InflowCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	today, err := resolveDate(ic.date)
	if err != nil {
		return err
	}

	inflow, err := ledger.Load("inflow", ic.inflowPath)
	if err != nil {
		return fmt.Errorf("failed to load inflow ledger: %w", err)
	}

	report, err := ic.service.InflowReport(ctx, inflow, today, ic.project)
	if err != nil {
		return err
	}

	return ic.reporter.HandleInflow(report)
}
