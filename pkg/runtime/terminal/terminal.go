package terminal

import (
	"io"
	"os"

	"github.com/de-tools/cash-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/cash-atlas/pkg/runtime/terminal/export"

	"github.com/de-tools/cash-atlas/pkg/services/dashboard"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	service  dashboard.Service
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Service dashboard.Service
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		service:  opts.Service,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cash-atlas",
		Short: "Cash flow reporting tool",
	}

	report := &cobra.Command{
		Use:   "report",
		Short: "Render period reports from ledger files",
	}
	report.AddCommand(commands.NewReconCmd(cli.service, cli.reporter))
	report.AddCommand(commands.NewInflowCmd(cli.service, cli.reporter))

	cmd.AddCommand(report)
	cmd.AddCommand(commands.NewSourcesCmd())

	return cmd
}
