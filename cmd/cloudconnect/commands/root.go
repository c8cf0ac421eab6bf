package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
	jsonOutput bool
)

// Execute runs the root command
func Execute(ctx context.Context, version, commit, buildDate string) error {
	app := &App{}
	rootCmd := newRootCommand(app, version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(app *App, version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cloudconnect",
		Short: "CloudConnect - Cloud Resource Lifecycle Manager",
		Long: `CloudConnect manages the lifecycle of named, typed cloud resources
through a controlled state machine.

Features:
  - Resource lifecycle: Created -> Started -> Stopped -> Deleted
  - Built-in resource types: AppService, StorageAccount, CacheDB
  - Dynamic type registry with a uniform creation factory
  - Audit trail for every operation (console, per-type files, SQLite)
  - Prometheus metrics and OpenTelemetry tracing`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.shutdown(cmd.Context())
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")

	// Add subcommands
	rootCmd.AddCommand(newTypesCommand(app))
	rootCmd.AddCommand(newCreateCommand(app))
	rootCmd.AddCommand(newStartCommand(app))
	rootCmd.AddCommand(newStopCommand(app))
	rootCmd.AddCommand(newDeleteCommand(app))
	rootCmd.AddCommand(newListCommand(app))
	rootCmd.AddCommand(newGetCommand(app))
	rootCmd.AddCommand(newRemoveCommand(app))
	rootCmd.AddCommand(newLogsCommand(app))
	rootCmd.AddCommand(newInteractiveCommand(app))

	return rootCmd
}
