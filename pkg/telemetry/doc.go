// Package telemetry provides observability instrumentation for CloudConnect.
//
// The package integrates structured logging (zerolog), the audit recorder,
// distributed tracing (OpenTelemetry), and metrics (Prometheus) into a
// unified system for monitoring resource lifecycle operations.
//
// # Usage
//
// Initialize telemetry at application startup:
//
//	cfg := telemetry.DefaultConfig()
//	cfg.ServiceVersion = "1.0.0"
//
//	tel, err := telemetry.NewTelemetry(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tel.Shutdown(context.Background())
//
//	if err := tel.StartMetricsServer(); err != nil {
//	    log.Fatal(err)
//	}
//
// Add telemetry to context:
//
//	ctx = tel.WithContext(ctx)
//
// # Audit Recorder
//
// The recorder is the audit collaborator resources report their lifecycle
// operations to. It fans each event out to the configured sinks:
//
//   - ConsoleSink mirrors events to the structured logger
//   - FileSink appends one human-readable line per event to a per-type file
//   - StoreSink persists events to the SQLite audit trail
//
// A Log call is synchronous and never fails the operation being recorded;
// sink errors are logged and swallowed.
//
//	tel.Recorder.Log("AppService", "started in WestEurope", res.Config())
//
// # Structured Logging
//
// The logger provides component-specific logging with context propagation:
//
//	logger := tel.Logger.NewComponentLogger("manager")
//	logger = logger.WithResource("svc1", "AppService")
//	logger.Info("resource added")
//	logger.WithError(err).Error("operation rejected")
//
// Log levels: trace, debug, info, warn, error, fatal
//
// # Tracing
//
// Lifecycle operations are traced as "resource.<operation>" spans:
//
//	op := telemetry.StartResourceOperation(ctx, "start", name, typ)
//	err := res.Start()
//	op.End(err)
//
// Supported exporters: OTLP/gRPC (production), stdout (development),
// none (testing).
//
// # Metrics
//
// Prometheus metrics track resource counts, transition outcomes, and
// errors by classification code, exposed via HTTP at /metrics
// (default :9090):
//
//	tel.Metrics.RecordResourceCreated("AppService")
//	tel.Metrics.RecordTransition("AppService", "start", err)
//	tel.Metrics.RecordError("INVALID_TRANSITION")
package telemetry
