package commands

import (
	"fmt"
	"time"

	"github.com/de-tools/cash-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/cash-atlas/pkg/services/dashboard"
	"github.com/de-tools/cash-atlas/pkg/store/ledger"

	"github.com/spf13/cobra"
)

type ReconCmd struct {
	expensePath string
	inflowPath  string
	date        string
	details     bool
	service     dashboard.Service
	reporter    *export.Reporter
}

func NewReconCmd(service dashboard.Service, reporter *export.Reporter) *cobra.Command {
	rc := &ReconCmd{service: service, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "recon",
		Short: "Reconcile inflows against expenses per period",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.expensePath, "expense", "", "Path to the expense ledger (csv or xlsx)")
	cmd.Flags().StringVar(&rc.inflowPath, "inflow", "", "Path to the inflow ledger (csv or xlsx)")
	cmd.Flags().StringVar(&rc.date, "date", "", "Reference date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().BoolVar(&rc.details, "details", false, "Include per-category expense rows")

	_ = cmd.MarkFlagRequired("expense")
	_ = cmd.MarkFlagRequired("inflow")

	return cmd
}

func (rc *ReconCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	today, err := resolveDate(rc.date)
	if err != nil {
		return err
	}

	expense, err := ledger.Load("expense", rc.expensePath)
	if err != nil {
		return fmt.Errorf("failed to load expense ledger: %w", err)
	}
	inflow, err := ledger.Load("inflow", rc.inflowPath)
	if err != nil {
		return fmt.Errorf("failed to load inflow ledger: %w", err)
	}

	dash, err := rc.service.Render(ctx, expense, inflow, today, dashboard.Options{})
	if err != nil {
		return err
	}

	return rc.reporter.HandleReconciliation(dash, rc.details)
}

func resolveDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Now().UTC(), nil
	}
	parsed, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid 'date' format. Expected format: YYYY-MM-DD")
	}
	return parsed, nil
}
