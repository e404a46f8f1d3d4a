package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records per-request shipping quote outcomes.
type QuoteMetrics struct {
	duration *prometheus.HistogramVec
	options  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewQuoteMetrics registers the quote metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shipping_quote_duration_seconds",
		Help:    "Duration of per-store shipping quote pipelines in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})
	options := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_quote_options_total",
		Help: "Priced options served, labeled by the fallback tier that produced them.",
	}, []string{"source"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_quote_store_failures_total",
		Help: "Per-store pipeline failures isolated from the rest of the request.",
	}, []string{"reason"})
	reg.MustRegister(duration, options, failures)
	return &QuoteMetrics{
		duration: duration,
		options:  options,
		failures: failures,
	}
}

// ObserveDuration records the pipeline duration for the winning source.
func (q *QuoteMetrics) ObserveDuration(source string, duration time.Duration) {
	if q == nil || q.duration == nil {
		return
	}
	q.duration.WithLabelValues(normalizeLabel(source)).Observe(duration.Seconds())
}

// AddOptions counts options served by the named source.
func (q *QuoteMetrics) AddOptions(source string, count int) {
	if q == nil || q.options == nil || count <= 0 {
		return
	}
	q.options.WithLabelValues(normalizeLabel(source)).Add(float64(count))
}

// IncFailure counts an isolated per-store failure.
func (q *QuoteMetrics) IncFailure(reason string) {
	if q == nil || q.failures == nil {
		return
	}
	q.failures.WithLabelValues(normalizeLabel(reason)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
