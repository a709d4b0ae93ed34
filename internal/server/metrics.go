package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Analysis outcomes recorded by Metrics.
const (
	outcomeOK                = "ok"
	outcomeInvalidRequest    = "invalid_request"
	outcomeReadFailure       = "read_failure"
	outcomeSourceUnavailable = "source_unavailable"
	outcomeMissingColumn     = "missing_column"
	outcomeError             = "error"
)

// Metrics holds the service's Prometheus collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry
	analyses *prometheus.CounterVec
	duration prometheus.Histogram
	rows     prometheus.Histogram
}

// NewMetrics registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "assignstat",
			Name:      "analyses_total",
			Help:      "Uploaded workbooks analysed, by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "assignstat",
			Name:      "analysis_duration_seconds",
			Help:      "Time spent decoding and analysing one workbook.",
			Buckets:   prometheus.DefBuckets,
		}),
		rows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "assignstat",
			Name:      "analysis_rows",
			Help:      "Data rows per successfully analysed workbook.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
	}
	m.registry.MustRegister(
		m.analyses,
		m.duration,
		m.rows,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// observe records one analysis attempt.
func (m *Metrics) observe(outcome string, elapsed time.Duration) {
	m.analyses.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// observeRows records the size of a successful analysis.
func (m *Metrics) observeRows(n int) {
	m.rows.Observe(float64(n))
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
