package items

import (
	"math"
	"strings"

	"github.com/angelmondragon/quizwizard-backend/pkg/db/models"
	"github.com/angelmondragon/quizwizard-backend/pkg/types"
	"github.com/shopspring/decimal"
)

func toWire(m models.Item) types.Item {
	created := m.CreatedAt
	item := types.Item{
		ID:          m.ID,
		Product:     m.Product,
		Category:    m.Category,
		Price:       m.Price.Round(2).InexactFloat64(),
		MinDiscount: m.MinDiscount,
		MaxDiscount: m.MaxDiscount,
		Coupon:      m.Coupon,
		Duration:    m.Duration,
		ProductURL:  m.ProductURL,
	}
	if !created.IsZero() {
		item.CreatedAt = &created
	}
	if m.Status != nil {
		item.Status = *m.Status
	}
	return item
}

func toWireList(rows []models.Item) []types.Item {
	out := make([]types.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, toWire(row))
	}
	return out
}

// normalizeRequest trims text, upper-cases the coupon and rounds the price to cents
// so validation sees exactly what will be stored. Non-finite prices become 0.
func normalizeRequest(req types.CreateItemRequest) types.CreateItemRequest {
	price := 0.0
	if !math.IsNaN(req.Price) && !math.IsInf(req.Price, 0) {
		price = decimal.NewFromFloat(req.Price).Round(2).InexactFloat64()
	}
	return types.CreateItemRequest{
		Product:     strings.TrimSpace(req.Product),
		Category:    strings.TrimSpace(req.Category),
		Price:       price,
		MinDiscount: req.MinDiscount,
		MaxDiscount: req.MaxDiscount,
		Coupon:      strings.ToUpper(strings.TrimSpace(req.Coupon)),
		Duration:    req.Duration,
		ProductURL:  strings.TrimSpace(req.ProductURL),
	}
}

func fromRequest(req types.CreateItemRequest) *models.Item {
	return &models.Item{
		Product:     strings.TrimSpace(req.Product),
		Category:    strings.TrimSpace(req.Category),
		Price:       decimal.NewFromFloat(req.Price).Round(2),
		MinDiscount: req.MinDiscount,
		MaxDiscount: req.MaxDiscount,
		Coupon:      strings.ToUpper(strings.TrimSpace(req.Coupon)),
		Duration:    req.Duration,
		ProductURL:  strings.TrimSpace(req.ProductURL),
	}
}
