package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID             uint            `gorm:"primaryKey"`
	UserID         uint            `gorm:"index;not null"`
	Total          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountCodeID *uint           `gorm:"index"`
	Items          []OrderItem
	CreatedAt      time.Time
}

// OrderItem.Price is the catalog price at purchase time, before any
// discount. The discounted sum lives on Order.Total.
type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"index;not null"`
	ProductID uint `gorm:"index;not null"`
	Product   Product
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time
}
