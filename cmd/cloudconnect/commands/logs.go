package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cloudconnect/cloudconnect/pkg/telemetry"
)

func newLogsCommand(app *App) *cobra.Command {
	var tail int

	cmd := &cobra.Command{
		Use:   "logs [TYPE]",
		Short: "Show the audit trail",
		Long: `Show audit records of resource operations.

When the SQLite audit trail is configured, records are read from the
database (optionally filtered by resource type). Otherwise records come
from the per-type audit files, in which case TYPE is required.`,
		Example: `  # Last 20 audit records across all types
  cloudconnect logs --tail 20

  # AppService records only
  cloudconnect logs AppService`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resourceType := ""
			if len(args) == 1 {
				resourceType = args[0]
			}

			if app.Store != nil {
				return showStoreLogs(app, cmd, resourceType, tail)
			}
			return showFileLogs(app, cmd, resourceType, tail)
		},
	}

	cmd.Flags().IntVarP(&tail, "tail", "n", 0, "show only the last N records")

	return cmd
}

func showStoreLogs(app *App, cmd *cobra.Command, resourceType string, tail int) error {
	records, err := app.Store.ListAudit(cmd.Context(), resourceType, tail)
	if err != nil {
		return err
	}

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), records)
	}

	// The store returns newest first; display chronologically.
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		var config map[string]any
		_ = json.Unmarshal([]byte(rec.Config), &config)
		line := telemetry.FormatAuditLine(telemetry.AuditEvent{
			Timestamp:    rec.CreatedAt,
			ResourceType: rec.ResourceType,
			Message:      rec.Message,
			Config:       config,
		})
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No audit records found.")
	}
	return nil
}

func showFileLogs(app *App, cmd *cobra.Command, resourceType string, tail int) error {
	sink := app.Telemetry.FileSink()
	if sink == nil {
		return fmt.Errorf("no audit sink configured (set audit.dir or audit.database)")
	}
	if resourceType == "" {
		return fmt.Errorf("resource type is required when reading per-type audit files")
	}

	lines, err := sink.Tail(resourceType, tail)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No audit records found.")
		return nil
	}
	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}
