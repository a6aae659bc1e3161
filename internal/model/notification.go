package model

import "time"

type NotificationType string

const (
	NotificationTicketResponse NotificationType = "ticket_response"
	NotificationOrderConfirmed NotificationType = "order_confirmed"
	NotificationCourseStarted  NotificationType = "course_started"
	NotificationOffer          NotificationType = "offer"
	NotificationGeneral        NotificationType = "general"
)

type Notification struct {
	ID         uint             `gorm:"primaryKey"`
	UserID     uint             `gorm:"index;not null"`
	Title      string           `gorm:"size:200;not null"`
	Message    string           `gorm:"not null"`
	Type       NotificationType `gorm:"size:30;not null;default:general"`
	IsRead     bool             `gorm:"not null;default:false"`
	RelatedURL string           `gorm:"size:200"`
	CreatedAt  time.Time
}
