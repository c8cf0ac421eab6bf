package commands

import (
	"github.com/spf13/cobra"
)

func newCreateCommand(app *App) *cobra.Command {
	var setValues []string

	cmd := &cobra.Command{
		Use:   "create TYPE NAME",
		Short: "Create a resource",
		Long: `Create a resource of a registered type.

Configuration fields are passed with repeated --set flags. Each type has
its own required fields:

  AppService:     runtime, region, replica_count
  StorageAccount: encryption_enabled, access_key, max_size_gb
  CacheDB:        ttl_seconds, capacity_mb, eviction_policy`,
		Example: `  # Create an application service
  cloudconnect create AppService svc1 \
    --set runtime=python --set region=WestEurope --set replica_count=2

  # Create a storage account
  cloudconnect create StorageAccount store1 \
    --set encryption_enabled=true --set access_key=supersecret123 --set max_size_gb=500

  # Create a cache
  cloudconnect create CacheDB cache1 \
    --set ttl_seconds=300 --set capacity_mb=512 --set eviction_policy=LRU`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typeName, resourceName := args[0], args[1]

			config, err := parseSetValues(setValues)
			if err != nil {
				return err
			}

			op := app.startOp(cmd.Context(), "create", resourceName, typeName)
			res, err := app.Factory.Create(typeName, resourceName, config)
			if err == nil {
				err = app.Manager.Add(res)
			}
			op.End(err)

			if err != nil {
				app.recordErrorMetric(err)
				return err
			}
			app.Telemetry.Metrics.RecordResourceCreated(typeName)

			return printResource(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringArrayVar(&setValues, "set", nil, "configuration field (key=value, repeatable)")

	return cmd
}
