package commands

import (
	"github.com/spf13/cobra"
)

func newGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get NAME",
		Short: "Show resource details",
		Long: `Show the full details of one resource: id, type, lifecycle state,
creation time, and configuration. Secret configuration fields are masked.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Manager.Get(args[0])
			if err != nil {
				app.recordErrorMetric(err)
				return err
			}
			return printResourceDetails(cmd.OutOrStdout(), res)
		},
	}
}
