package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-market-api/internal/dto"
	"course-market-api/internal/model"
	"course-market-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrProfileIncomplete = errors.New("please complete your profile before checkout")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidDiscount   = errors.New("discount code is invalid or expired")
)

// AlreadyEnrolledError names the course that blocks the purchase.
type AlreadyEnrolledError struct {
	ProductTitle string
}

func (e *AlreadyEnrolledError) Error() string {
	return fmt.Sprintf("course %q has already been purchased", e.ProductTitle)
}

type CheckoutService interface {
	Checkout(ctx context.Context, userID uint, req *dto.CheckoutRequest) (*dto.CheckoutResult, error)
}

type checkoutServiceImpl struct {
	db               *gorm.DB
	profileRepo      repository.ProfileRepository
	cartRepo         repository.CartRepository
	discountRepo     repository.DiscountRepository
	enrollmentRepo   repository.EnrollmentRepository
	orderRepo        repository.OrderRepository
	paymentRepo      repository.PaymentRepository
	notificationRepo repository.NotificationRepository
}

func NewCheckoutService(
	db *gorm.DB,
	profileRepo repository.ProfileRepository,
	cartRepo repository.CartRepository,
	discountRepo repository.DiscountRepository,
	enrollmentRepo repository.EnrollmentRepository,
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	notificationRepo repository.NotificationRepository,
) CheckoutService {
	return &checkoutServiceImpl{
		db:               db,
		profileRepo:      profileRepo,
		cartRepo:         cartRepo,
		discountRepo:     discountRepo,
		enrollmentRepo:   enrollmentRepo,
		orderRepo:        orderRepo,
		paymentRepo:      paymentRepo,
		notificationRepo: notificationRepo,
	}
}

// Checkout converts the user's cart into a finalized order. All writes
// happen in one transaction; any failure rolls the whole purchase back.
func (s *checkoutServiceImpl) Checkout(ctx context.Context, userID uint, req *dto.CheckoutRequest) (*dto.CheckoutResult, error) {
	profile, err := s.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if !ProfileComplete(profile) {
		return nil, ErrProfileIncomplete
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	items, err := s.cartRepo.Items(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("load cart items: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	productIDs := make([]uint, len(items))
	for i, item := range items {
		productIDs[i] = item.ProductID

		enrolled, err := s.enrollmentRepo.Exists(ctx, userID, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("check enrollment: %w", err)
		}
		if enrolled {
			return nil, &AlreadyEnrolledError{ProductTitle: item.Product.Title}
		}
	}

	now := time.Now()

	var discount *model.DiscountCode
	if req.DiscountCode != "" {
		discount, err = s.discountRepo.FindByCode(ctx, req.DiscountCode)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidDiscount
		}
		if err != nil {
			return nil, fmt.Errorf("load discount code: %w", err)
		}
		if !ValidDiscount(discount, now, userID, productIDs) {
			return nil, ErrInvalidDiscount
		}
	}

	// deterministic: items come back in insertion order
	total := decimal.Zero
	for _, item := range items {
		line := item.Product.Price
		if discount != nil {
			line = LineDiscount(discount, line, item.ProductID)
		}
		total = total.Add(line)
	}

	result := &dto.CheckoutResult{}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order := &model.Order{
			UserID: userID,
			Total:  total,
		}
		if discount != nil {
			order.DiscountCodeID = &discount.ID
		}
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		orderItems := make([]*model.OrderItem, len(items))
		for i, item := range items {
			// snapshot of the catalog price; the discount shows up
			// on the order total only
			orderItems[i] = &model.OrderItem{
				OrderID:   order.ID,
				ProductID: item.ProductID,
				Price:     item.Product.Price,
			}
		}
		if err := s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
			return fmt.Errorf("create order items: %w", err)
		}

		for _, item := range items {
			enrollment := &model.CourseEnrollment{
				UserID:          userID,
				ProductID:       item.ProductID,
				OrderID:         &order.ID,
				AccessExpiresAt: accessExpiry(&item.Product),
				IsActive:        true,
			}
			if err := s.enrollmentRepo.Create(ctx, tx, enrollment); err != nil {
				return fmt.Errorf("create enrollment: %w", err)
			}
		}

		if err := s.cartRepo.Clear(ctx, tx, cart.ID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		if discount != nil {
			if err := s.discountRepo.ConsumeUsage(ctx, tx, discount.ID); err != nil {
				if errors.Is(err, repository.ErrDiscountExhausted) {
					return ErrInvalidDiscount
				}
				return fmt.Errorf("consume discount usage: %w", err)
			}
		}

		payment := &model.PaymentHistory{
			OrderID:       order.ID,
			Amount:        total,
			Status:        model.PaymentStatusPending,
			PaymentMethod: req.PaymentMethod,
			TransactionID: uuid.NewString(),
		}
		if err := s.paymentRepo.Create(ctx, tx, payment); err != nil {
			return fmt.Errorf("create payment record: %w", err)
		}

		notification := &model.Notification{
			UserID:     userID,
			Title:      "Order confirmed",
			Message:    fmt.Sprintf("Order %d was placed successfully.", order.ID),
			Type:       model.NotificationOrderConfirmed,
			RelatedURL: fmt.Sprintf("/orders/%d", order.ID),
		}
		if err := s.notificationRepo.Create(ctx, tx, notification); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}

		result.OrderID = order.ID
		result.PaymentID = payment.ID
		result.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// accessExpiry derives the enrollment's expiration from the product's
// access window at purchase time. Offline courses with a configured date
// expire at that date's end of day in local time; online courses carry no
// per-enrollment expiry and defer to the registration deadline.
func accessExpiry(product *model.Product) *time.Time {
	if product.CourseType != model.CourseTypeOffline || product.AccessExpiration == nil {
		return nil
	}

	// the column is date-only, stored at UTC midnight
	y, m, d := product.AccessExpiration.UTC().Date()
	expiry := time.Date(y, m, d, 23, 59, 59, 0, time.Local)
	return &expiry
}
