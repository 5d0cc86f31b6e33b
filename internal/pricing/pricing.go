// Package pricing computes discounted prices shown on quiz cards and the create form.
package pricing

import (
	"strings"

	pkgerrors "github.com/angelmondragon/quizwizard-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// PriceRange holds the cheapest (max discount) and dearest (min discount) price.
type PriceRange struct {
	Low  decimal.Decimal
	High decimal.Decimal
}

// DiscountedPrice returns price*(1-discount/100) rounded half away from zero to cents.
func DiscountedPrice(price, discount decimal.Decimal) decimal.Decimal {
	factor := one.Sub(discount.Div(hundred))
	return price.Mul(factor).Round(2)
}

// DiscountedPriceFloat is DiscountedPrice for callers holding wire floats.
func DiscountedPriceFloat(price, discount float64) float64 {
	return DiscountedPrice(decimal.NewFromFloat(price), decimal.NewFromFloat(discount)).InexactFloat64()
}

// Range prices the discount window. It requires 0 <= min <= max <= 100.
func Range(price, minDiscount, maxDiscount decimal.Decimal) (PriceRange, error) {
	if minDiscount.IsNegative() || maxDiscount.GreaterThan(hundred) || minDiscount.GreaterThan(maxDiscount) {
		return PriceRange{}, pkgerrors.New(pkgerrors.CodeValidation, "discount range must satisfy 0 <= min <= max <= 100").
			WithDetails(map[string]string{
				"min_discount": minDiscount.String(),
				"max_discount": maxDiscount.String(),
			})
	}
	return PriceRange{
		Low:  DiscountedPrice(price, maxDiscount),
		High: DiscountedPrice(price, minDiscount),
	}, nil
}

// PreviewFromText prices form input. ok is false when either field is not a number
// or the discount falls outside [0,100]; callers show no preview in that case.
func PreviewFromText(priceText, discountText string) (decimal.Decimal, bool) {
	price, ok := parseNumber(priceText)
	if !ok {
		return decimal.Decimal{}, false
	}
	discount, ok := parseNumber(discountText)
	if !ok || discount.IsNegative() || discount.GreaterThan(hundred) {
		return decimal.Decimal{}, false
	}
	return DiscountedPrice(price, discount), true
}

// RangeFromText prices the min/max discount fields of the create form.
func RangeFromText(priceText, minText, maxText string) (PriceRange, bool) {
	price, ok := parseNumber(priceText)
	if !ok {
		return PriceRange{}, false
	}
	minDiscount, ok := parseNumber(minText)
	if !ok {
		return PriceRange{}, false
	}
	maxDiscount, ok := parseNumber(maxText)
	if !ok {
		return PriceRange{}, false
	}
	r, err := Range(price, minDiscount, maxDiscount)
	if err != nil {
		return PriceRange{}, false
	}
	return r, true
}

func parseNumber(text string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return decimal.Decimal{}, false
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return value, true
}
