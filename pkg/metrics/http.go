package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics records served requests per route pattern.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers request metrics for the named service.
func NewHTTPMetrics(reg prometheus.Registerer, service string) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	labels := prometheus.Labels{"service": normalizeLabel(service)}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace:   namespace,
		Name:        "http_requests_total",
		Help:        "HTTP requests by route, method and status.",
		ConstLabels: labels,
	}, []string{"route", "method", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   namespace,
		Name:        "http_request_duration_seconds",
		Help:        "HTTP request latency by route.",
		ConstLabels: labels,
		Buckets:     prometheus.DefBuckets,
	}, []string{"route", "method"})
	reg.MustRegister(requests, duration)
	return &HTTPMetrics{requests: requests, duration: duration}
}

// Observe records a completed request.
func (m *HTTPMetrics) Observe(route, method string, status int, duration time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	route = normalizeLabel(route)
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route, method).Observe(duration.Seconds())
}
