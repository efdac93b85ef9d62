package main

import (
	"fmt"
	"net"
	"os"
	"os/user"
	"time"

	"github.com/de-tools/cash-atlas/pkg/server"
	"github.com/de-tools/cash-atlas/pkg/services/config"
	"github.com/de-tools/cash-atlas/pkg/services/dashboard"
	"github.com/de-tools/cash-atlas/pkg/services/fiscal"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	profilesPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Cash Atlas",
		RunE:  runServer,
	}

	usr, _ := user.Current()
	defaultProfiles := fmt.Sprintf("%s/.cashatlas/profiles.ini", usr.HomeDir)

	rootCmd.Flags().StringVarP(&profilesPath, "profiles", "p", defaultProfiles,
		"Path to the profiles file (default is $HOME/.cashatlas/profiles.ini)")
	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to an optional server config file (yaml)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if cfgPath != "" {
		webCfg, err := config.LoadWebConfig(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load web config: %w", err)
		}
		if webCfg.Host != "" {
			host = webCfg.Host
		}
		if webCfg.Port != "" {
			port = webCfg.Port
		}
		if webCfg.Profiles != "" {
			profilesPath = webCfg.Profiles
		}
		logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	}

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration, set SERVER_HOST and SERVER_PORT or pass --config")
		os.Exit(1)
	}

	registry, err := config.NewRegistry(profilesPath)
	if err != nil {
		return fmt.Errorf("failed to create profiles registry: %w", err)
	}

	logger.Info().Msgf("Found the following sources:")
	profiles, _ := registry.GetProfiles(ctx)
	for _, profile := range profiles {
		logger.Info().Msgf("Name: `%s`", profile)
	}

	renderer := dashboard.NewService(fiscal.NewCalendar())
	sources := dashboard.NewSourceService(registry, renderer)

	webAPI := server.NewWebAPI(server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Dashboard: sources,
			Logger:    logger,
		},
	})

	return webAPI.Start()
}
