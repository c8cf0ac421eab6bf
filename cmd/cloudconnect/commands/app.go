package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudconnect/cloudconnect/pkg/config"
	"github.com/cloudconnect/cloudconnect/pkg/manager"
	"github.com/cloudconnect/cloudconnect/pkg/registry"
	"github.com/cloudconnect/cloudconnect/pkg/resource"
	"github.com/cloudconnect/cloudconnect/pkg/stores"
	"github.com/cloudconnect/cloudconnect/pkg/telemetry"
)

// App holds the wired application: configuration, telemetry, the type
// registry, the factory, and the in-memory resource repository. Resources
// live only for the lifetime of the process; the audit trail persists.
type App struct {
	Config    *config.AppConfig
	Telemetry *telemetry.Telemetry
	Registry  *registry.Registry
	Factory   *registry.Factory
	Manager   *manager.Manager
	Store     *stores.SQLiteStore
}

// init wires the application from the global flags. Called once by the
// root command before any subcommand runs.
func (a *App) init(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Telemetry.Logging.Level = "debug"
	}
	a.Config = cfg

	var opts []telemetry.Option
	if cfg.Telemetry.Audit.Database != "" {
		store, err := stores.NewSQLiteStore(stores.Config{Path: cfg.Telemetry.Audit.Database})
		if err != nil {
			return err
		}
		if err := store.Init(ctx); err != nil {
			return err
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return fmt.Errorf("failed to prepare audit trail: %w", err)
		}
		a.Store = store
		opts = append(opts,
			telemetry.WithSink(telemetry.NewStoreSink(store)),
			telemetry.WithStore(store),
		)
	}

	tel, err := telemetry.NewTelemetry(cfg.Telemetry, opts...)
	if err != nil {
		if a.Store != nil {
			_ = a.Store.Close()
		}
		return err
	}
	a.Telemetry = tel

	if err := tel.StartMetricsServer(); err != nil {
		return err
	}

	a.Registry = registry.NewWithBuilders(resource.Builtins(tel.Recorder))
	a.Factory = registry.NewFactory(a.Registry)
	a.Manager = manager.New()

	return nil
}

// startOp opens an instrumented span for one resource lifecycle operation.
func (a *App) startOp(ctx context.Context, operation, resourceName, resourceType string) *telemetry.InstrumentedOperation {
	return telemetry.StartResourceOperation(a.Telemetry.WithContext(ctx), operation, resourceName, resourceType)
}

// recordErrorMetric counts a classified error by its code.
func (a *App) recordErrorMetric(err error) {
	var rerr *resource.Error
	if errors.As(err, &rerr) {
		a.Telemetry.Metrics.RecordError(string(rerr.Code))
	}
}

// shutdown flushes and closes telemetry, including the audit store.
func (a *App) shutdown(ctx context.Context) error {
	if a.Telemetry == nil {
		return nil
	}
	return a.Telemetry.Shutdown(ctx)
}
