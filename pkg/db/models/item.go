package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is a discount quiz entry stored in the discounts table.
type Item struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	Product     string          `gorm:"column:product;not null"`
	Category    string          `gorm:"column:category;not null;default:''"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	MinDiscount int             `gorm:"column:min_discount;not null"`
	MaxDiscount int             `gorm:"column:max_discount;not null"`
	Coupon      string          `gorm:"column:coupon;not null;default:''"`
	Duration    int             `gorm:"column:duration;not null"`
	ProductURL  string          `gorm:"column:product_url;not null;default:''"`
	Status      *string         `gorm:"column:status"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Item) TableName() string { return "discounts" }
