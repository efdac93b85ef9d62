package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/de-tools/cash-atlas/pkg/services/config"

	"github.com/spf13/cobra"
)

type SourcesCmd struct {
	profilesPath string
}

func NewSourcesCmd() *cobra.Command {
	sc := &SourcesCmd{}
	cmd := &cobra.Command{
		Use:   "sources",
		Short: "Manage ledger source profiles",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List sources from the profiles file",
		RunE:  sc.run,
	}
	list.Flags().StringVar(&sc.profilesPath, "profiles", "",
		"Path to the profiles file (defaults to ~/.cashatlas/profiles.ini)")

	cmd.AddCommand(list)

	return cmd
}

func (sc *SourcesCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	path := sc.profilesPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".cashatlas", "profiles.ini")
	}

	registry, err := config.NewRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load profiles from %s: %w", path, err)
	}

	profiles, err := registry.GetProfiles(ctx)
	if err != nil {
		return err
	}

	if len(profiles) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No sources configured in %s\n", path)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configured sources:\n%s\n", strings.Join(profiles, "\n"))

	return nil
}
