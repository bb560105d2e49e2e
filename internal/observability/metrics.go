// Package observability provides Prometheus metrics for monitoring.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	// Decision engine metrics
	CycleRuns         prometheus.Counter
	CycleDuration     prometheus.Histogram
	SKUOutcomes       *prometheus.CounterVec
	Decisions         *prometheus.CounterVec
	ModeTransitions   *prometheus.CounterVec
	InvariantFailures prometheus.Counter
	RunwayPauses      prometheus.Counter

	// Middleware metrics
	SourceAttempts   *prometheus.CounterVec
	SourcesExhausted *prometheus.CounterVec
	VendorLatency    *prometheus.HistogramVec
	VendorRetries    *prometheus.CounterVec

	// Sink metrics
	ArchiveErrors prometheus.Counter
	PublishErrors prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewMetrics creates a Metrics instance registered with reg. A nil reg uses
// a fresh registry.
func NewMetrics(namespace string, reg *prometheus.Registry) *Metrics {
	if namespace == "" {
		namespace = "adpilot"
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Metrics{
		CycleRuns: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "cycles_total",
			Help:      "Total number of decision cycles run",
		}),
		CycleDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "cycle_duration_seconds",
			Help:      "Decision cycle duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		}),
		SKUOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "sku_outcomes_total",
			Help:      "Per-SKU cycle outcomes by status",
		}, []string{"status"}),
		Decisions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "decisions_total",
			Help:      "Recorded decisions by action and mode",
		}, []string{"action", "mode"}),
		ModeTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "mode_transitions_total",
			Help:      "Mode changes by origin and destination",
		}, []string{"from", "to"}),
		InvariantFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "allocation_invariant_failures_total",
			Help:      "Allocations rejected for breaking an invariant",
		}),
		RunwayPauses: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "runway_pauses_total",
			Help:      "SKUs paused for insufficient budget runway",
		}),

		SourceAttempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "middleware",
			Name:      "source_attempts_total",
			Help:      "Fallback walk attempts by source, operation and outcome",
		}, []string{"source", "operation", "outcome"}),
		SourcesExhausted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "middleware",
			Name:      "sources_exhausted_total",
			Help:      "Operations for which every source failed",
		}, []string{"operation", "platform"}),
		VendorLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "vendor",
			Name:      "request_duration_seconds",
			Help:      "Vendor API request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source", "operation"}),
		VendorRetries: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "vendor",
			Name:      "retries_total",
			Help:      "Vendor API retries by source and error kind",
		}, []string{"source", "kind"}),

		ArchiveErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sink",
			Name:      "archive_errors_total",
			Help:      "Raw payloads that could not be archived",
		}),
		PublishErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sink",
			Name:      "publish_errors_total",
			Help:      "Decisions that could not be published",
		}),

		gatherer: reg,
	}
}

// Handler serves the registered metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// ObserveCycle records one finished cycle.
func (m *Metrics) ObserveCycle(d time.Duration) {
	if m == nil {
		return
	}
	m.CycleRuns.Inc()
	m.CycleDuration.Observe(d.Seconds())
}

func (m *Metrics) ObserveOutcome(status string) {
	if m == nil {
		return
	}
	m.SKUOutcomes.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveDecision(action, mode string) {
	if m == nil {
		return
	}
	m.Decisions.WithLabelValues(action, mode).Inc()
}

func (m *Metrics) ObserveTransition(from, to string) {
	if m == nil {
		return
	}
	m.ModeTransitions.WithLabelValues(from, to).Inc()
}

func (m *Metrics) ObserveInvariantFailure() {
	if m == nil {
		return
	}
	m.InvariantFailures.Inc()
}

func (m *Metrics) ObserveRunwayPause() {
	if m == nil {
		return
	}
	m.RunwayPauses.Inc()
}

// ObserveAttempt records one step of a fallback walk.
func (m *Metrics) ObserveAttempt(source, op, outcome string) {
	if m == nil {
		return
	}
	m.SourceAttempts.WithLabelValues(source, op, outcome).Inc()
}

func (m *Metrics) ObserveExhausted(op, platform string) {
	if m == nil {
		return
	}
	m.SourcesExhausted.WithLabelValues(op, platform).Inc()
}

// ObserveVendorCall records the latency of one vendor HTTP request.
func (m *Metrics) ObserveVendorCall(source, op string, d time.Duration) {
	if m == nil {
		return
	}
	m.VendorLatency.WithLabelValues(source, op).Observe(d.Seconds())
}

func (m *Metrics) ObserveRetry(source, kind string) {
	if m == nil {
		return
	}
	m.VendorRetries.WithLabelValues(source, kind).Inc()
}

func (m *Metrics) ObserveArchiveError() {
	if m == nil {
		return
	}
	m.ArchiveErrors.Inc()
}

func (m *Metrics) ObservePublishError() {
	if m == nil {
		return
	}
	m.PublishErrors.Inc()
}
