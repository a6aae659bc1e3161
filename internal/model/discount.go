package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeAmount  DiscountType = "amount"
)

type DiscountCode struct {
	ID           uint            `gorm:"primaryKey"`
	Code         string          `gorm:"size:50;uniqueIndex;not null"`
	DiscountType DiscountType    `gorm:"size:10;not null"` // percent, amount
	Value        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	IsActive     bool            `gorm:"not null;default:true"`

	StartDate *time.Time
	EndDate   *time.Time

	MaxUsage  *int
	UsedCount int `gorm:"not null;default:0"`

	// Optional scoping: restricts applicability, never widens it.
	UserID    *uint `gorm:"index"`
	ProductID *uint `gorm:"index"`
}
