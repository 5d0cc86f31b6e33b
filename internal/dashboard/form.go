package dashboard

import (
	"math"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/quizwizard-backend/pkg/errors"
	"github.com/angelmondragon/quizwizard-backend/pkg/types"
)

// DefaultDurationDays applies when the duration field is left blank.
const DefaultDurationDays = 7

// Field names a create-form input.
type Field string

const (
	FieldProduct     Field = "product"
	FieldCategory    Field = "category"
	FieldPrice       Field = "price"
	FieldMinDiscount Field = "min_discount"
	FieldMaxDiscount Field = "max_discount"
	FieldCoupon      Field = "coupon"
	FieldDuration    Field = "duration"
	FieldProductURL  Field = "product_url"
)

// FormState holds the raw text of the create-quiz form.
type FormState struct {
	Product     string `json:"product"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	MinDiscount string `json:"min_discount"`
	MaxDiscount string `json:"max_discount"`
	Coupon      string `json:"coupon"`
	Duration    string `json:"duration"`
	ProductURL  string `json:"product_url"`
}

// CanSubmit mirrors the submit button: product, price and both discounts must be filled.
func (f FormState) CanSubmit() bool {
	return strings.TrimSpace(f.Product) != "" &&
		strings.TrimSpace(f.Price) != "" &&
		strings.TrimSpace(f.MinDiscount) != "" &&
		strings.TrimSpace(f.MaxDiscount) != ""
}

// IsEmpty reports whether every field is blank.
func (f FormState) IsEmpty() bool {
	return f == FormState{}
}

// With returns a copy of the form with one field replaced.
func (f FormState) With(field Field, value string) (FormState, bool) {
	switch field {
	case FieldProduct:
		f.Product = value
	case FieldCategory:
		f.Category = value
	case FieldPrice:
		f.Price = value
	case FieldMinDiscount:
		f.MinDiscount = value
	case FieldMaxDiscount:
		f.MaxDiscount = value
	case FieldCoupon:
		f.Coupon = value
	case FieldDuration:
		f.Duration = value
	case FieldProductURL:
		f.ProductURL = value
	default:
		return f, false
	}
	return f, true
}

// ToCreateRequest parses the numeric fields and normalizes the coupon.
// Parse failures produce a CodeValidation error listing each bad field.
func (f FormState) ToCreateRequest() (types.CreateItemRequest, error) {
	details := map[string]string{}
	if strings.TrimSpace(f.Product) == "" {
		details[string(FieldProduct)] = "is required"
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		details[string(FieldPrice)] = "must be a number"
	}
	minDiscount, err := strconv.Atoi(strings.TrimSpace(f.MinDiscount))
	if err != nil {
		details[string(FieldMinDiscount)] = "must be a whole number"
	}
	maxDiscount, err := strconv.Atoi(strings.TrimSpace(f.MaxDiscount))
	if err != nil {
		details[string(FieldMaxDiscount)] = "must be a whole number"
	}
	duration := DefaultDurationDays
	if trimmed := strings.TrimSpace(f.Duration); trimmed != "" {
		duration, err = strconv.Atoi(trimmed)
		if err != nil {
			details[string(FieldDuration)] = "must be a whole number"
		}
	}

	if len(details) > 0 {
		return types.CreateItemRequest{}, pkgerrors.New(pkgerrors.CodeValidation, "quiz form is invalid").WithDetails(details)
	}

	return types.CreateItemRequest{
		Product:     strings.TrimSpace(f.Product),
		Category:    strings.TrimSpace(f.Category),
		Price:       price,
		MinDiscount: minDiscount,
		MaxDiscount: maxDiscount,
		Coupon:      strings.ToUpper(strings.TrimSpace(f.Coupon)),
		Duration:    duration,
		ProductURL:  strings.TrimSpace(f.ProductURL),
	}, nil
}
