package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type PaymentHistory struct {
	ID            uint            `gorm:"primaryKey"`
	OrderID       uint            `gorm:"index;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status        PaymentStatus   `gorm:"size:10;not null;default:pending"`
	PaymentMethod string          `gorm:"size:50"`
	TransactionID string          `gorm:"size:100;uniqueIndex"`
	PaidAt        *time.Time
	CreatedAt     time.Time
}
