package model

import "time"

type TicketCategory string

const (
	TicketCategoryFinancial   TicketCategory = "financial"
	TicketCategorySupport     TicketCategory = "support"
	TicketCategoryEducational TicketCategory = "educational"
	TicketCategoryTechnical   TicketCategory = "technical"
	TicketCategoryOther       TicketCategory = "other"
)

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusAnswered   TicketStatus = "answered"
	TicketStatusClosed     TicketStatus = "closed"
)

type Ticket struct {
	ID               uint           `gorm:"primaryKey"`
	UserID           uint           `gorm:"index;not null"`
	Title            string         `gorm:"size:200;not null"`
	Message          string
	Category         TicketCategory `gorm:"size:20;not null;default:support"`
	Status           TicketStatus   `gorm:"size:20;index;not null;default:open"`
	RelatedProductID *uint          `gorm:"index"`
	Messages         []TicketMessage
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type TicketMessage struct {
	ID           uint `gorm:"primaryKey"`
	TicketID     uint `gorm:"index;not null"`
	SenderIsUser bool `gorm:"not null;default:true"`
	SenderID     *uint
	Message      string `gorm:"not null"`
	CreatedAt    time.Time
}
