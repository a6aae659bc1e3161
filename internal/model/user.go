package model

import "time"

type User struct {
	ID              uint   `gorm:"primaryKey"`
	Phone           string `gorm:"size:15;uniqueIndex;not null"`
	IsPhoneVerified bool   `gorm:"not null;default:false"`
	Email           string `gorm:"size:254"`
	FirstName       string `gorm:"size:30"`
	LastName        string `gorm:"size:30"`
	IsActive        bool   `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type UserProfile struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex;not null"`
	City      string `gorm:"size:100"`
	Address   string
	BirthDate *time.Time
	UpdatedAt time.Time
}

// An OTP is valid until ExpiresAt; only the latest code per phone counts.
type OTP struct {
	ID        uint   `gorm:"primaryKey"`
	Phone     string `gorm:"size:15;index;not null"`
	Code      string `gorm:"size:6;not null"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null"`
}
