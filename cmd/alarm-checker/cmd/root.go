package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clockd/internal/config"
	"github.com/oshokin/alarm-clockd/internal/service/checker"
	"github.com/oshokin/alarm-clockd/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string

	// rootCmd represents the base command for polling due instances.
	rootCmd = &cobra.Command{
		Use:   "alarm-checker [server-address]",
		Short: "Trigger reconciliation when an alarm comes due.",
		Long: `Background agent that watches scheduled alarm instances and nudges the
event daemon when one of them reaches its alarm time.

Continuously polls the daemon at fixed 5-second intervals. When an instance
is due, publishes a reconciliation trigger so the daemon fires it.
Uses timeout and server settings from configuration file, polling interval is fixed.
Server address can be provided as argument or loaded from configuration file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			// Use server address argument if provided, otherwise rely on config.
			var serverAddress string
			if len(args) > 0 {
				serverAddress = args[0]
			}

			checkerOptions := &checker.Options{
				ConfigPath:    configPath,
				ServerAddress: serverAddress,
			}

			return checker.Run(ctx, checkerOptions)
		},
	}
)

// Execute runs the alarm-checker CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
}
