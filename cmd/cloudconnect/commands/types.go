package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTypesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List registered resource types",
		Long: `List the resource types available to the create command.

Built-in types:
  - AppService: managed application runtime (python, nodejs, dotnet)
  - StorageAccount: durable storage with encryption and access keys
  - CacheDB: in-memory cache with TTL and eviction policy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			types := app.Factory.Types()
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), types)
			}
			for _, t := range types {
				fmt.Fprintln(cmd.OutOrStdout(), t)
			}
			return nil
		},
	}
}
