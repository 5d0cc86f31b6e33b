package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ItemsClientMetrics tracks calls from the dashboard to the item backend.
type ItemsClientMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	fallback *prometheus.CounterVec
}

// NewItemsClientMetrics registers the facade metrics on the provided registerer.
func NewItemsClientMetrics(reg prometheus.Registerer) *ItemsClientMetrics {
	if reg == nil {
		return &ItemsClientMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_client_requests_total",
		Help:      "Requests sent to the item backend by operation and outcome.",
	}, []string{"operation", "outcome"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "items_client_request_seconds",
		Help:      "Latency of item backend requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
	fallback := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "items_client_fallback_total",
		Help:      "Times the dashboard served demo data or masked a failed write.",
	}, []string{"operation"})
	reg.MustRegister(requests, latency, fallback)
	return &ItemsClientMetrics{requests: requests, latency: latency, fallback: fallback}
}

// ObserveRequest records one round trip and its outcome (ok, error, not_found).
func (m *ItemsClientMetrics) ObserveRequest(operation, outcome string, duration time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	m.requests.WithLabelValues(normalizeLabel(operation), normalizeLabel(outcome)).Inc()
	m.latency.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncFallback counts a demo fallback for the operation.
func (m *ItemsClientMetrics) IncFallback(operation string) {
	if m == nil || m.fallback == nil {
		return
	}
	m.fallback.WithLabelValues(normalizeLabel(operation)).Inc()
}
