package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "quizwizard"

// CronJobMetrics records metadata for scheduled jobs.
type CronJobMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
	skipped  prometheus.Counter
}

// NewCronJobMetrics registers the cron job metrics on the provided registerer.
func NewCronJobMetrics(reg prometheus.Registerer) *CronJobMetrics {
	if reg == nil {
		return &CronJobMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "job_duration_seconds",
		Help:      "Duration of cron jobs in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"job"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_success_total",
		Help:      "Successful cron job executions.",
	}, []string{"job"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_failure_total",
		Help:      "Failed cron job executions.",
	}, []string{"job"})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cron_cycle_skipped_total",
		Help:      "Cycles skipped because another instance held the lock.",
	})
	reg.MustRegister(duration, success, failure, skipped)
	return &CronJobMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
		skipped:  skipped,
	}
}

// ObserveDuration records the duration for the named job.
func (c *CronJobMetrics) ObserveDuration(job string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	c.duration.WithLabelValues(normalizeLabel(job)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named job.
func (c *CronJobMetrics) IncSuccess(job string) {
	if c == nil || c.success == nil {
		return
	}
	c.success.WithLabelValues(normalizeLabel(job)).Inc()
}

// IncFailure increments the failure counter for the named job.
func (c *CronJobMetrics) IncFailure(job string) {
	if c == nil || c.failure == nil {
		return
	}
	c.failure.WithLabelValues(normalizeLabel(job)).Inc()
}

// IncSkipped counts a cycle that lost the lock race.
func (c *CronJobMetrics) IncSkipped() {
	if c == nil || c.skipped == nil {
		return
	}
	c.skipped.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
