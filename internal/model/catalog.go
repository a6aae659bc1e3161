package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type CourseType string

const (
	CourseTypeOnline  CourseType = "online"
	CourseTypeOffline CourseType = "offline"
)

type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;uniqueIndex;not null"`
	Description string
}

type Product struct {
	ID          uint            `gorm:"primaryKey"`
	CategoryID  uint            `gorm:"index;not null"`
	Title       string          `gorm:"size:200;not null"`
	Description string          `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Instructor  string          `gorm:"size:100"`
	Duration    string          `gorm:"size:50"`
	CourseType  CourseType      `gorm:"size:10;index;not null"` // online, offline

	StartDate *time.Time
	EndDate   *time.Time
	// Online courses close for purchase after this date (date-only semantics).
	RegistrationDeadline *time.Time
	// Offline courses grant access until end of this day.
	AccessExpiration *time.Time

	CreatedAt time.Time
}
