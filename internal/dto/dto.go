package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// -------- auth --------

type SendOTPRequest struct {
	Phone string `json:"phone"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type VerifyOTPResponse struct {
	UserID uint   `json:"user_id"`
	Phone  string `json:"phone"`
	Token  string `json:"token"`
}

// -------- account --------

type MeResponse struct {
	ID                  uint   `json:"id"`
	Phone               string `json:"phone"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Email               string `json:"email"`
	IsPhoneVerified     bool   `json:"is_phone_verified"`
	UnreadNotifications int64  `json:"unread_notifications"`
}

type ProfileResponse struct {
	City      string     `json:"city"`
	Address   string     `json:"address"`
	BirthDate *time.Time `json:"birth_date"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type UpdateProfileRequest struct {
	City      string     `json:"city"`
	Address   string     `json:"address"`
	BirthDate *time.Time `json:"birth_date"`
}

// -------- catalog --------

type CategoryView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ProductView struct {
	ID                   uint            `json:"id"`
	CategoryID           uint            `json:"category_id"`
	Title                string          `json:"title"`
	Description          string          `json:"description"`
	Price                decimal.Decimal `json:"price"`
	Instructor           string          `json:"instructor"`
	Duration             string          `json:"duration"`
	CourseType           string          `json:"course_type"`
	StartDate            *time.Time      `json:"start_date"`
	EndDate              *time.Time      `json:"end_date"`
	RegistrationDeadline *time.Time      `json:"registration_deadline"`
	AccessExpiration     *time.Time      `json:"access_expiration"`
	RegistrationOpen     bool            `json:"registration_open"`
}

// -------- cart / checkout --------

type CartItemRequest struct {
	ProductID uint `json:"product_id"`
}

type CartItemView struct {
	ID        uint            `json:"id"`
	ProductID uint            `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
}

type CartResponse struct {
	Items []*CartItemView `json:"items"`
	Total decimal.Decimal `json:"total"`
}

type CheckoutRequest struct {
	DiscountCode  string `json:"discount_code"`
	PaymentMethod string `json:"payment_method"`
}

type CheckoutResult struct {
	OrderID   uint            `json:"order_id"`
	PaymentID uint            `json:"payment_id"`
	Total     decimal.Decimal `json:"total"`
}

// -------- orders / courses --------

type OrderLineView struct {
	Product string          `json:"product"`
	Price   decimal.Decimal `json:"price"`
}

type OrderView struct {
	ID        uint             `json:"id"`
	Total     decimal.Decimal  `json:"total"`
	CreatedAt time.Time        `json:"created_at"`
	Items     []*OrderLineView `json:"items"`
}

type MyCourse struct {
	ProductID  uint      `json:"product_id"`
	Title      string    `json:"title"`
	CourseType string    `json:"course_type"`
	HasAccess  bool      `json:"has_access"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// -------- notifications --------

type NotificationView struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Type       string    `json:"notification_type"`
	IsRead     bool      `json:"is_read"`
	RelatedURL string    `json:"related_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// -------- support --------

type CreateTicketRequest struct {
	Title            string `json:"title"`
	Message          string `json:"message"`
	Category         string `json:"category"`
	RelatedProductID *uint  `json:"related_product_id"`
}

type TicketMessageView struct {
	ID           uint      `json:"id"`
	SenderIsUser bool      `json:"sender_is_user"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

type TicketView struct {
	ID        uint                 `json:"id"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Category  string               `json:"category"`
	Status    string               `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	Messages  []*TicketMessageView `json:"messages,omitempty"`
}

type TicketMessageRequest struct {
	Message string `json:"message"`
}
