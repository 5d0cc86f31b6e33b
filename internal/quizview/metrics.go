package quizview

import "github.com/angelmondragon/quizwizard-backend/pkg/types"

const (
	maxFabricatedResponses  = 200
	maxFabricatedConversion = 300 // tenths of a percent
)

// Metrics is the engagement block shown per quiz. Available=false means no data source exists.
type Metrics struct {
	Available      bool    `json:"available"`
	Responses      int     `json:"responses"`
	ConversionRate float64 `json:"conversion_rate"`
}

// MetricsSource supplies engagement metrics for an item.
type MetricsSource interface {
	MetricsFor(item types.Item) Metrics
}

// UnavailableMetrics reports the "metrics unavailable" sentinel for every item.
type UnavailableMetrics struct{}

func (UnavailableMetrics) MetricsFor(types.Item) Metrics {
	return Metrics{}
}

// RandomMetrics fabricates placeholder numbers. Only wired when explicitly enabled.
type RandomMetrics struct {
	sampler Sampler
}

func NewRandomMetrics(sampler Sampler) *RandomMetrics {
	if sampler == nil {
		sampler = NewRandomSampler()
	}
	return &RandomMetrics{sampler: sampler}
}

func (r *RandomMetrics) MetricsFor(types.Item) Metrics {
	return Metrics{
		Available:      true,
		Responses:      r.sampler.IntN(maxFabricatedResponses),
		ConversionRate: float64(r.sampler.IntN(maxFabricatedConversion)) / 10,
	}
}

// NewMetricsSource picks the sentinel unless fabrication was switched on.
func NewMetricsSource(fabricate bool, sampler Sampler) MetricsSource {
	if fabricate {
		return NewRandomMetrics(sampler)
	}
	return UnavailableMetrics{}
}
