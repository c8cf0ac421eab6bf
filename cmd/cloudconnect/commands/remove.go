package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a resource from the repository",
		Long: `Remove a resource from the repository entirely.

Unlike delete, remove is a hard removal and works in any lifecycle
state. The audit trail of the resource is kept.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := app.Manager.Remove(name); err != nil {
				app.recordErrorMetric(err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", name)
			return nil
		},
	}
}
