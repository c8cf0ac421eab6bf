package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Telemetry provides a unified telemetry interface combining logging,
// tracing, metrics, and the audit recorder.
type Telemetry struct {
	Logger   *Logger
	Tracer   *Tracer
	Metrics  *Metrics
	Recorder *Recorder
	Config   *Config

	fileSink *FileSink
	store    auditStore
}

// auditStore is the slice of the audit trail store the telemetry layer
// owns: it opens the store at startup and closes it on shutdown.
type auditStore interface {
	Close() error
}

// telemetryContextKey is the context key for telemetry instances.
type telemetryContextKey struct{}

// Option customizes telemetry construction.
type Option func(*options)

type options struct {
	extraSinks []Sink
	store      auditStore
}

// WithSink adds an extra audit sink to the recorder.
func WithSink(sink Sink) Option {
	return func(o *options) {
		o.extraSinks = append(o.extraSinks, sink)
	}
}

// WithStore hands ownership of an audit trail store to the telemetry
// instance; Shutdown will close it. The caller is still responsible for
// adding the matching sink via WithSink.
func WithStore(store auditStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// NewTelemetry creates a new telemetry instance from configuration.
func NewTelemetry(cfg *Config, opts ...Option) (*Telemetry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger, err := NewLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	tracer, err := NewTracer(cfg.Tracing, cfg.ServiceName, cfg.ServiceVersion, cfg.Environment)
	if err != nil {
		return nil, err
	}

	metrics, err := NewMetrics(cfg.Metrics)
	if err != nil {
		return nil, err
	}

	var sinks []Sink
	if cfg.Audit.Console {
		sinks = append(sinks, NewConsoleSink(logger))
	}
	var fileSink *FileSink
	if cfg.Audit.Dir != "" {
		fileSink, err = NewFileSink(cfg.Audit.Dir)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, fileSink)
	}
	sinks = append(sinks, o.extraSinks...)

	return &Telemetry{
		Logger:   logger,
		Tracer:   tracer,
		Metrics:  metrics,
		Recorder: NewRecorder(logger, sinks...),
		Config:   cfg,
		fileSink: fileSink,
		store:    o.store,
	}, nil
}

// FileSink returns the per-type audit file sink, or nil when the file
// sink is disabled.
func (t *Telemetry) FileSink() *FileSink {
	return t.fileSink
}

// WithContext adds the telemetry instance to the context.
func (t *Telemetry) WithContext(ctx context.Context) context.Context {
	ctx = context.WithValue(ctx, telemetryContextKey{}, t)
	ctx = t.Logger.WithContext(ctx)
	return ctx
}

// FromTelemetryContext retrieves the telemetry instance from the context.
// If no telemetry is found, it returns nil.
func FromTelemetryContext(ctx context.Context) *Telemetry {
	if t, ok := ctx.Value(telemetryContextKey{}).(*Telemetry); ok {
		return t
	}
	return nil
}

// Shutdown gracefully shuts down all telemetry components.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	// Shutdown in reverse order of initialization
	if err := t.Tracer.Shutdown(ctx); err != nil {
		return err
	}

	if t.store != nil {
		if err := t.store.Close(); err != nil {
			return err
		}
	}

	// Metrics server is not explicitly shut down here as it may need to
	// continue serving metrics until the very end of the application
	// lifecycle
	return nil
}

// Flush forces all pending telemetry data to be exported.
func (t *Telemetry) Flush(ctx context.Context) error {
	return t.Tracer.ForceFlush(ctx)
}

// StartMetricsServer starts the metrics HTTP server if metrics are enabled.
func (t *Telemetry) StartMetricsServer() error {
	return t.Metrics.StartMetricsServer()
}

// InstrumentedOperation carries the span and logger for one resource
// lifecycle operation.
type InstrumentedOperation struct {
	Ctx    context.Context
	Span   trace.Span
	Logger *Logger
}

// StartResourceOperation begins an instrumented lifecycle operation. When
// no telemetry is present in the context the returned operation is inert.
func StartResourceOperation(ctx context.Context, operation, resourceName, resourceType string) *InstrumentedOperation {
	tel := FromTelemetryContext(ctx)
	if tel == nil {
		return &InstrumentedOperation{
			Ctx:    ctx,
			Logger: FromContext(ctx),
		}
	}

	spanCtx, span := tel.Tracer.StartResourceSpan(ctx, operation, resourceName, resourceType)

	logger := tel.Logger.
		WithResource(resourceName, resourceType).
		WithField("operation", operation)
	if span.SpanContext().IsValid() {
		logger = logger.WithFields(map[string]interface{}{
			"trace_id": span.SpanContext().TraceID().String(),
			"span_id":  span.SpanContext().SpanID().String(),
		})
	}

	return &InstrumentedOperation{
		Ctx:    spanCtx,
		Span:   span,
		Logger: logger,
	}
}

// End finishes the instrumented operation, recording success or failure.
func (op *InstrumentedOperation) End(err error) {
	if op.Span == nil {
		return
	}
	if err != nil {
		RecordError(op.Span, err)
	} else {
		RecordSuccess(op.Span)
	}
	op.Span.End()
}
