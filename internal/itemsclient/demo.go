package itemsclient

import (
	"time"

	"github.com/angelmondragon/quizwizard-backend/pkg/types"
)

// demoItems is served whenever the item backend cannot be read.
var demoItems = []types.Item{
	{
		ID:          1,
		Product:     "Premium Dog Toy Set",
		Category:    "Pet Supplies",
		Price:       29.99,
		MinDiscount: 10,
		MaxDiscount: 20,
		Coupon:      "PUPPYLOVE",
		Duration:    30,
		ProductURL:  "https://images.unsplash.com/photo-1601758228041-f3b2795255f1?w=100&h=100&fit=crop",
		CreatedAt:   demoTime("2024-01-15T10:30:00Z"),
	},
	{
		ID:          2,
		Product:     "Interactive Puzzle Feeder",
		Category:    "Pet Supplies",
		Price:       39.99,
		MinDiscount: 15,
		MaxDiscount: 25,
		Coupon:      "PUZZLEPAW",
		Duration:    30,
		ProductURL:  "https://images.unsplash.com/photo-1583337130417-3346a1be7dee?w=100&h=100&fit=crop",
		CreatedAt:   demoTime("2024-01-14T14:22:00Z"),
	},
	{
		ID:          3,
		Product:     "Cozy Cat Bed",
		Category:    "Pet Supplies",
		Price:       49.99,
		MinDiscount: 5,
		MaxDiscount: 15,
		Coupon:      "CATNAP",
		Duration:    14,
		ProductURL:  "https://images.unsplash.com/photo-1574144611937-0df059b5ef3e?w=100&h=100&fit=crop",
		CreatedAt:   demoTime("2024-01-13T09:15:00Z"),
		Status:      "paused",
	},
	{
		ID:          4,
		Product:     "Natural Chicken Treats",
		Category:    "Pet Food",
		Price:       19.99,
		MinDiscount: 20,
		MaxDiscount: 30,
		Coupon:      "TREATTIME",
		Duration:    7,
		ProductURL:  "https://images.unsplash.com/photo-1605568427561-40dd23c2acea?w=100&h=100&fit=crop",
		CreatedAt:   demoTime("2024-01-12T16:45:00Z"),
	},
}

// DemoItems returns a copy of the built-in demo dataset.
func DemoItems() []types.Item {
	out := make([]types.Item, len(demoItems))
	copy(out, demoItems)
	return out
}

func demoTime(value string) *time.Time {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return &ts
}
