package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides Prometheus metrics for CloudConnect.
type Metrics struct {
	config MetricsConfig

	// Resource metrics
	resourcesCreated *prometheus.CounterVec
	resourcesManaged *prometheus.GaugeVec

	// Lifecycle metrics
	transitions *prometheus.CounterVec

	// Error metrics
	errorsByCode *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMetrics creates a new metrics collector with the given configuration.
func NewMetrics(cfg MetricsConfig) (*Metrics, error) {
	if !cfg.Enabled {
		// Return a no-op metrics instance
		return &Metrics{config: cfg}, nil
	}

	namespace := cfg.Namespace
	registry := prometheus.NewRegistry()

	m := &Metrics{
		config:   cfg,
		registry: registry,

		resourcesCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resources_created_total",
				Help:      "Total number of resources created",
			},
			[]string{"type"},
		),
		resourcesManaged: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "resources_managed",
				Help:      "Current number of managed resources",
			},
			[]string{"type", "state"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lifecycle_transitions_total",
				Help:      "Total number of lifecycle transition attempts",
			},
			[]string{"type", "operation", "outcome"},
		),
		errorsByCode: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "errors_by_code_total",
				Help:      "Total number of errors by error code",
			},
			[]string{"code"},
		),
	}

	registry.MustRegister(
		m.resourcesCreated,
		m.resourcesManaged,
		m.transitions,
		m.errorsByCode,
	)

	return m, nil
}

// RecordResourceCreated increments the counter for created resources.
func (m *Metrics) RecordResourceCreated(resourceType string) {
	if m.resourcesCreated == nil {
		return
	}
	m.resourcesCreated.WithLabelValues(resourceType).Inc()
}

// RecordTransition records a lifecycle transition attempt and its outcome.
func (m *Metrics) RecordTransition(resourceType, operation string, err error) {
	if m.transitions == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "rejected"
	}
	m.transitions.WithLabelValues(resourceType, operation, outcome).Inc()
}

// RecordError records an error by its classification code.
func (m *Metrics) RecordError(code string) {
	if m.errorsByCode == nil || code == "" {
		return
	}
	m.errorsByCode.WithLabelValues(code).Inc()
}

// SetResourceCount sets the current count of managed resources for one
// type and lifecycle state.
func (m *Metrics) SetResourceCount(resourceType, state string, count float64) {
	if m.resourcesManaged == nil {
		return
	}
	m.resourcesManaged.WithLabelValues(resourceType, state).Set(count)
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m.registry == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// StartMetricsServer starts an HTTP server to expose metrics.
func (m *Metrics) StartMetricsServer() error {
	if !m.config.Enabled {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(m.config.Path, m.Handler())

	server := &http.Server{
		Addr:              m.config.ListenAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("metrics server error: %v\n", err)
		}
	}()

	return nil
}
