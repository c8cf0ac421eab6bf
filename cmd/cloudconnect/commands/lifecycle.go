package commands

import (
	"github.com/spf13/cobra"

	"github.com/cloudconnect/cloudconnect/pkg/resource"
)

func newStartCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "start NAME",
		Short: "Start a resource",
		Long: `Start a resource that is Created or Stopped.

Starting an already running resource is rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLifecycle(app, cmd, args[0], resource.OpStart)
		},
	}
}

func newStopCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop NAME",
		Short: "Stop a running resource",
		Long: `Stop a Started resource.

Stopping a resource that was never started, or is already stopped, is
rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLifecycle(app, cmd, args[0], resource.OpStop)
		},
	}
}

func newDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a resource",
		Long: `Mark a resource as Deleted.

A running resource must be stopped first. Deletion is terminal: no
further lifecycle operations are accepted. The resource stays in the
repository (hidden from list) until removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLifecycle(app, cmd, args[0], resource.OpDelete)
		},
	}
}

// runLifecycle applies one lifecycle operation to a managed resource,
// with tracing and metrics around the core call.
func runLifecycle(app *App, cmd *cobra.Command, name string, op resource.Op) error {
	res, err := app.Manager.Get(name)
	if err != nil {
		app.recordErrorMetric(err)
		return err
	}

	iop := app.startOp(cmd.Context(), string(op), res.Name(), res.Type())
	switch op {
	case resource.OpStart:
		err = res.Start()
	case resource.OpStop:
		err = res.Stop()
	case resource.OpDelete:
		err = res.Delete()
	}
	iop.End(err)

	app.Telemetry.Metrics.RecordTransition(res.Type(), string(op), err)
	if err != nil {
		app.recordErrorMetric(err)
		return err
	}

	return printResource(cmd.OutOrStdout(), res)
}
