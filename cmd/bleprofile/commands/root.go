package commands

import (
	"context"

	"github.com/spf13/cobra"

	"bleprofile/internal/app"
	"bleprofile/internal/logger"
)

var (
	configPath   string
	profilesPath string
	logLevel     string
	appCtx       *app.Wire
)

// Execute runs the CLI with ctx as the root context.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bleprofile",
		Short:         "Build BLE device profiles from nearby advertisers",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = app.DefaultConfigFile
			}
			cfg, err := app.LoadConfig(path, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("profiles") {
				cfg.ProfilesPath = profilesPath
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level = logLevel
			}

			if err := logger.Init(cfg.Logging); err != nil {
				return err
			}
			cliLog := logger.WithComponent("cli")
			cliLog.Debug().
				Str("profiles", cfg.ProfilesPath).
				Dur("scan_duration", cfg.ScanDuration).
				Msg("Configuration loaded")

			appCtx, err = app.NewWire(cfg, logger.GetLogger())
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./bleprofile.yaml if present)")
	root.PersistentFlags().StringVar(&profilesPath, "profiles", "", "profile collection file (default profiles.json)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(scanCmd(), listCmd())
	return root
}
