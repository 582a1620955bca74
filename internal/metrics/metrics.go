package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Query pipeline metrics
	QueriesTotal         *prometheus.CounterVec
	QueryDurationSeconds *prometheus.HistogramVec

	// Entity matching metrics
	EntityMatchesTotal *prometheus.CounterVec

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		QueriesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "qabot_queries_total",
				Help: "Total number of processed queries by intent and outcome",
			},
			[]string{"intent", "status"}, // status: answered, not_found, empty
		),

		QueryDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "qabot_query_duration_seconds",
				Help:    "Query pipeline duration in seconds by intent",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05}, // in-memory pipeline, sub-ms expected
			},
			[]string{"intent"},
		),

		EntityMatchesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "qabot_entity_matches_total",
				Help: "Total number of entity match attempts by entity type and result",
			},
			[]string{"entity_type", "result"}, // entity_type: course, staff; result: hit, miss
		),

		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "qabot_http_errors_total",
				Help: "Total HTTP errors by type",
			},
			[]string{"error_type"}, // error_type: bad_request, unauthorized, etc.
		),
	}

	return m
}

// RecordQuery records a processed query with its outcome
func (m *Metrics) RecordQuery(intent, status string, duration float64) {
	m.QueriesTotal.WithLabelValues(intent, status).Inc()
	m.QueryDurationSeconds.WithLabelValues(intent).Observe(duration)
}

// RecordEntityMatch records an entity match attempt
func (m *Metrics) RecordEntityMatch(entityType, result string) {
	m.EntityMatchesTotal.WithLabelValues(entityType, result).Inc()
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType).Inc()
}
