package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(app *App) *cobra.Command {
	var includeDeleted bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List managed resources",
		Long: `List resources in the repository, sorted by name.

Deleted resources are hidden unless --all is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resources := app.Manager.List(includeDeleted)

			if jsonOutput {
				views := make([]resourceView, 0, len(resources))
				for _, r := range resources {
					views = append(views, viewOf(r))
				}
				return printJSON(cmd.OutOrStdout(), views)
			}

			if len(resources) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No resources found.")
				return nil
			}
			for _, r := range resources {
				fmt.Fprintln(cmd.OutOrStdout(), r.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeDeleted, "all", false, "include deleted resources")

	return cmd
}
