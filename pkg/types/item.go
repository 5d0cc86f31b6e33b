package types

import "time"

// Item is the wire representation exchanged with the item backend.
type Item struct {
	ID          int64      `json:"id"`
	Product     string     `json:"product"`
	Category    string     `json:"category"`
	Price       float64    `json:"price"`
	MinDiscount int        `json:"min_discount"`
	MaxDiscount int        `json:"max_discount"`
	Coupon      string     `json:"coupon"`
	Duration    int        `json:"duration"`
	ProductURL  string     `json:"product_url"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	// Status is only present when the store pinned one explicitly (e.g. paused).
	Status string `json:"status,omitempty"`
}

// CreateItemRequest is the body of POST /items/.
type CreateItemRequest struct {
	Product     string  `json:"product" validate:"required"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" validate:"gt=0"`
	MinDiscount int     `json:"min_discount" validate:"min=1,max=90"`
	MaxDiscount int     `json:"max_discount" validate:"min=1,max=90,gtefield=MinDiscount"`
	Coupon      string  `json:"coupon"`
	Duration    int     `json:"duration" validate:"min=1"`
	ProductURL  string  `json:"product_url" validate:"omitempty,url"`
}

// DeleteItemRequest is the body of DELETE /items/.
type DeleteItemRequest struct {
	ID int64 `json:"id" validate:"required"`
}
