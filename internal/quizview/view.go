// Package quizview decorates raw items with the derived fields shown on the dashboard.
package quizview

import (
	"math"
	"time"

	"github.com/angelmondragon/quizwizard-backend/internal/lifecycle"
	"github.com/angelmondragon/quizwizard-backend/internal/pricing"
	"github.com/angelmondragon/quizwizard-backend/pkg/enums"
	"github.com/angelmondragon/quizwizard-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// ViewItem is an item plus display-only fields. It is never persisted.
type ViewItem struct {
	types.Item
	Status           enums.QuizStatus `json:"status"`
	SelectedDiscount int              `json:"selected_discount"`
	DiscountedPrice  float64          `json:"discounted_price"`
	PriceRange       PriceRange       `json:"price_range"`
	Metrics          Metrics          `json:"metrics"`
}

type PriceRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Summary backs the stats cards above the quiz table.
type Summary struct {
	Total            int     `json:"total"`
	Active           int     `json:"active"`
	Completed        int     `json:"completed"`
	Paused           int     `json:"paused"`
	TotalResponses   int     `json:"total_responses"`
	AvgConversion    float64 `json:"avg_conversion"`
	MetricsAvailable bool    `json:"metrics_available"`
}

type Decorator struct {
	sampler Sampler
	metrics MetricsSource
	now     func() time.Time
}

type Option func(*Decorator)

func WithSampler(s Sampler) Option {
	return func(d *Decorator) {
		if s != nil {
			d.sampler = s
		}
	}
}

func WithMetricsSource(m MetricsSource) Option {
	return func(d *Decorator) {
		if m != nil {
			d.metrics = m
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(d *Decorator) {
		if now != nil {
			d.now = now
		}
	}
}

func NewDecorator(opts ...Option) *Decorator {
	d := &Decorator{
		sampler: NewRandomSampler(),
		metrics: UnavailableMetrics{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decorate derives view items. The selected discount is re-sampled on every call.
func (d *Decorator) Decorate(items []types.Item) []ViewItem {
	now := d.now()
	out := make([]ViewItem, 0, len(items))
	for _, item := range items {
		out = append(out, d.decorate(item, now))
	}
	return out
}

func (d *Decorator) decorate(item types.Item, now time.Time) ViewItem {
	status := lifecycle.WithOverride(item.Status, lifecycle.Resolve(item.CreatedAt, lifecycle.OptionalDuration(item.Duration), now))
	selected := d.sampler.IntBetween(clampPercent(item.MinDiscount), clampPercent(item.MaxDiscount))

	price := decimal.NewFromFloat(item.Price)
	view := ViewItem{
		Item:             item,
		Status:           status,
		SelectedDiscount: selected,
		DiscountedPrice:  pricing.DiscountedPrice(price, decimal.NewFromInt(int64(selected))).InexactFloat64(),
		Metrics:          d.metrics.MetricsFor(item),
	}
	if r, err := pricing.Range(price, decimal.NewFromInt(int64(item.MinDiscount)), decimal.NewFromInt(int64(item.MaxDiscount))); err == nil {
		view.PriceRange = PriceRange{Low: r.Low.InexactFloat64(), High: r.High.InexactFloat64()}
	}
	return view
}

// clampPercent keeps externally supplied discount bounds within [0, 100].
func clampPercent(v int) int {
	return min(max(v, 0), 100)
}

// Summarize computes the dashboard stats. Conversion is averaged over items with metrics.
func Summarize(views []ViewItem) Summary {
	summary := Summary{Total: len(views)}
	var conversionSum float64
	var withMetrics int
	for _, v := range views {
		switch v.Status {
		case enums.QuizStatusActive:
			summary.Active++
		case enums.QuizStatusCompleted:
			summary.Completed++
		case enums.QuizStatusPaused:
			summary.Paused++
		}
		if !v.Metrics.Available {
			continue
		}
		withMetrics++
		summary.TotalResponses += v.Metrics.Responses
		conversionSum += v.Metrics.ConversionRate
	}
	if withMetrics > 0 {
		summary.MetricsAvailable = true
		summary.AvgConversion = math.Round(conversionSum/float64(withMetrics)*10) / 10
	}
	return summary
}
