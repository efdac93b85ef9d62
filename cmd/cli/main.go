package main

import (
	"fmt"
	"os"

	"github.com/de-tools/cash-atlas/pkg/runtime/terminal"
	"github.com/de-tools/cash-atlas/pkg/services/dashboard"
	"github.com/de-tools/cash-atlas/pkg/services/fiscal"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Service: dashboard.NewService(fiscal.NewCalendar()),
		Output:  os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
