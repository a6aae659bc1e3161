package model

import "time"

type CourseEnrollment struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"uniqueIndex:idx_user_product;not null"`
	ProductID uint `gorm:"uniqueIndex:idx_user_product;not null"`
	Product   Product
	OrderID   *uint `gorm:"index"`

	EnrolledAt time.Time `gorm:"autoCreateTime"`
	// Set for offline courses with a configured access-expiration date;
	// online courses are governed by the product's registration deadline.
	AccessExpiresAt *time.Time
	IsActive        bool `gorm:"not null;default:true"`
}
