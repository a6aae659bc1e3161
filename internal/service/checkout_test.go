package service

import (
	"context"
	"testing"
	"time"

	"course-market-api/internal/dto"
	"course-market-api/internal/model"
	"course-market-api/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCheckoutService(db *gorm.DB) CheckoutService {
	return NewCheckoutService(
		db,
		repository.NewProfileRepository(db),
		repository.NewCartRepository(db),
		repository.NewDiscountRepository(db),
		repository.NewEnrollmentRepository(db),
		repository.NewOrderRepository(db),
		repository.NewPaymentRepository(db),
		repository.NewNotificationRepository(db),
	)
}

func count(t *testing.T, db *gorm.DB, m interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Where(query, args...).Count(&n).Error)
	return n
}

func TestCheckoutSuccess(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "09120000001")
	createCompleteProfile(t, db, user.ID)
	category := createCategory(t, db, "programming")
	productA := createProduct(t, db, category.ID, "Go Fundamentals", "100.00", model.CourseTypeOnline)
	productB := createProduct(t, db, category.ID, "SQL Basics", "50.00", model.CourseTypeOnline)
	addToCart(t, db, user.ID, productA.ID, productB.ID)

	svc := newCheckoutService(db)
	result, err := svc.Checkout(ctx, user.ID, &dto.CheckoutRequest{PaymentMethod: "card"})
	require.NoError(t, err)
	require.NotZero(t, result.OrderID)
	require.NotZero(t, result.PaymentID)
	assert.True(t, result.Total.Equal(decimal.RequireFromString("150")), result.Total.String())

	// exactly one order, one item and one enrollment per cart item,
	// one payment, one notification, and an empty cart
	assert.EqualValues(t, 1, count(t, db, &model.Order{}, "user_id = ?", user.ID))
	assert.EqualValues(t, 2, count(t, db, &model.OrderItem{}, "order_id = ?", result.OrderID))
	assert.EqualValues(t, 2, count(t, db, &model.CourseEnrollment{}, "user_id = ?", user.ID))
	assert.EqualValues(t, 1, count(t, db, &model.PaymentHistory{}, "order_id = ?", result.OrderID))
	assert.EqualValues(t, 1, count(t, db, &model.Notification{}, "user_id = ? AND type = ?", user.ID, model.NotificationOrderConfirmed))
	assert.EqualValues(t, 0, count(t, db, &model.CartItem{}, "1 = 1"))

	var payment model.PaymentHistory
	require.NoError(t, db.First(&payment, result.PaymentID).Error)
	assert.Equal(t, model.PaymentStatusPending, payment.Status)
	assert.Equal(t, "card", payment.PaymentMethod)
	assert.NotEmpty(t, payment.TransactionID)
	assert.True(t, payment.Amount.Equal(result.Total))
}

func TestCheckoutPercentDiscount(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "09120000002")
	createCompleteProfile(t, db, user.ID)
	category := createCategory(t, db, "programming")
	productA := createProduct(t, db, category.ID, "Go Fundamentals", "100.00", model.CourseTypeOnline)
	productB := createProduct(t, db, category.ID, "SQL Basics", "50.00", model.CourseTypeOnline)
	addToCart(t, db, user.ID, productA.ID, productB.ID)

	require.NoError(t, db.Create(&model.DiscountCode{
		Code:         "SAVE10",
		DiscountType: model.DiscountTypePercent,
		Value:        decimal.NewFromInt(10),
		IsActive:     true,
	}).Error)

	svc := newCheckoutService(db)
	result, err := svc.Checkout(ctx, user.ID, &dto.CheckoutRequest{DiscountCode: "SAVE10"})
	require.NoError(t, err)

	// each line reduced 10% and summed
	assert.True(t, result.Total.Equal(decimal.RequireFromString("135")), result.Total.String())

	// order items snapshot the undiscounted catalog prices
	var items []model.OrderItem
	require.NoError(t, db.Where("order_id = ?", result.OrderID).Order("id").Find(&items).Error)
	require.Len(t, items, 2)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("100")), items[0].Price.String())
	assert.True(t, items[1].Price.Equal(decimal.RequireFromString("50")), items[1].Price.String())

	var dc model.DiscountCode
	require.NoError(t, db.Where("code = ?", "SAVE10").First(&dc).Error)
	assert.Equal(t, 1, dc.UsedCount)

	var order model.Order
	require.NoError(t, db.First(&order, result.OrderID).Error)
	require.NotNil(t, order.DiscountCodeID)
	assert.Equal(t, dc.ID, *order.DiscountCodeID)
}

func TestCheckoutProductScopedDiscount(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "09120000003")
	createCompleteProfile(t, db, user.ID)
	category := createCategory(t, db, "programming")
	productA := createProduct(t, db, category.ID, "Go Fundamentals", "100.00", model.CourseTypeOnline)
	productB := createProduct(t, db, category.ID, "SQL Basics", "50.00", model.CourseTypeOnline)
	addToCart(t, db, user.ID, productA.ID, productB.ID)

	require.NoError(t, db.Create(&model.DiscountCode{
		Code:         "GOONLY",
		DiscountType: model.DiscountTypePercent,
		Value:        decimal.NewFromInt(10),
		IsActive:     true,
		ProductID:    &productA.ID,
	}).Error)

	svc := newCheckoutService(db)
	result, err := svc.Checkout(ctx, user.ID, &dto.CheckoutRequest{DiscountCode: "GOONLY"})
	require.NoError(t, err)

	// only product A's line is reduced: 90 + 50
	assert.True(t, result.Total.Equal(decimal.RequireFromString("140")), result.Total.String())
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "09120000004")
	createCompleteProfile(t, db, user.ID)

	svc := newCheckoutService(db)
	_, err := svc.Checkout(ctx, user.ID, &dto.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutProfileIncomplete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "09120000005")
	category := createCategory(t, db, "programming")
	product := createProduct(t, db, category.ID, "Go Fundamentals", "100.00", model.CourseTypeOnline)
	addToCart(t, db, user.ID, product.ID)

	svc := newCheckoutService(db)
	_, err := svc.Checkout(ctx, user.ID, &dto.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrProfileIncomplete)

	// nothing was written
	assert.EqualValues(t, 0, count(t, db, &model.Order{}, "user_id = ?", user.ID))
	assert.EqualValues(t, 1, count(t, db, &model.CartItem{}, "1 = 1"))
}

func TestCheckoutUnknownDiscount(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "09120000006")
	createCompleteProfile(t, db, user.ID)
	category := createCategory(t, db, "programming")
	product := createProduct(t, db, category.ID, "Go Fundamentals", "100.00", model.CourseTypeOnline)
	addToCart(t, db, user.ID, product.ID)

	svc := newCheckoutService(db)
	_, err := svc.Checkout(ctx, user.ID, &dto.CheckoutRequest{DiscountCode: "NOPE"})
	assert.ErrorIs(t, err, ErrInvalidDiscount)
}

func TestCheckoutAlreadyEnrolled(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "09120000007")
	createCompleteProfile(t, db, user.ID)
	category := createCategory(t, db, "programming")
	product := createProduct(t, db, category.ID, "Go Fundamentals", "100.00", model.CourseTypeOnline)
	require.NoError(t, db.Create(&model.CourseEnrollment{
		UserID:    user.ID,
		ProductID: product.ID,
		IsActive:  true,
	}).Error)
	addToCart(t, db, user.ID, product.ID)

	svc := newCheckoutService(db)
	_, err := svc.Checkout(ctx, user.ID, &dto.CheckoutRequest{})

	var enrolled *AlreadyEnrolledError
	require.ErrorAs(t, err, &enrolled)
	assert.Equal(t, "Go Fundamentals", enrolled.ProductTitle)

	// failed checkout leaves cart and enrollments untouched
	assert.EqualValues(t, 0, count(t, db, &model.Order{}, "user_id = ?", user.ID))
	assert.EqualValues(t, 1, count(t, db, &model.CartItem{}, "1 = 1"))
	assert.EqualValues(t, 1, count(t, db, &model.CourseEnrollment{}, "user_id = ?", user.ID))
}

func TestCheckoutDiscountCapExhausted(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	category := createCategory(t, db, "programming")
	product := createProduct(t, db, category.ID, "Go Fundamentals", "100.00", model.CourseTypeOnline)

	require.NoError(t, db.Create(&model.DiscountCode{
		Code:         "ONCE",
		DiscountType: model.DiscountTypeAmount,
		Value:        decimal.NewFromInt(20),
		IsActive:     true,
		MaxUsage:     intPtr(1),
	}).Error)

	svc := newCheckoutService(db)

	first := createUser(t, db, "09120000008")
	createCompleteProfile(t, db, first.ID)
	addToCart(t, db, first.ID, product.ID)
	_, err := svc.Checkout(ctx, first.ID, &dto.CheckoutRequest{DiscountCode: "ONCE"})
	require.NoError(t, err)

	second := createUser(t, db, "09120000009")
	createCompleteProfile(t, db, second.ID)
	addToCart(t, db, second.ID, product.ID)
	_, err = svc.Checkout(ctx, second.ID, &dto.CheckoutRequest{DiscountCode: "ONCE"})
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	// exactly one use recorded, and the losing cart survives
	var dc model.DiscountCode
	require.NoError(t, db.Where("code = ?", "ONCE").First(&dc).Error)
	assert.Equal(t, 1, dc.UsedCount)
	assert.EqualValues(t, 0, count(t, db, &model.Order{}, "user_id = ?", second.ID))
	assert.EqualValues(t, 1, count(t, db, &model.CartItem{}, "1 = 1"))
}

func TestCheckoutTwiceSecondSeesEmptyCart(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "09120000010")
	createCompleteProfile(t, db, user.ID)
	category := createCategory(t, db, "programming")
	product := createProduct(t, db, category.ID, "Go Fundamentals", "100.00", model.CourseTypeOnline)
	addToCart(t, db, user.ID, product.ID)

	svc := newCheckoutService(db)
	_, err := svc.Checkout(ctx, user.ID, &dto.CheckoutRequest{})
	require.NoError(t, err)

	_, err = svc.Checkout(ctx, user.ID, &dto.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutOfflineAccessExpiry(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "09120000011")
	createCompleteProfile(t, db, user.ID)
	category := createCategory(t, db, "programming")

	product := createProduct(t, db, category.ID, "Recorded Go Course", "100.00", model.CourseTypeOffline)
	expiration := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(product).Update("access_expiration", expiration).Error)

	addToCart(t, db, user.ID, product.ID)

	svc := newCheckoutService(db)
	_, err := svc.Checkout(ctx, user.ID, &dto.CheckoutRequest{})
	require.NoError(t, err)

	var enrollment model.CourseEnrollment
	require.NoError(t, db.Preload("Product").Where("user_id = ?", user.ID).First(&enrollment).Error)
	require.NotNil(t, enrollment.AccessExpiresAt)

	wantExpiry := time.Date(2025, 1, 10, 23, 59, 59, 0, time.Local)
	assert.True(t, enrollment.AccessExpiresAt.Equal(wantExpiry), enrollment.AccessExpiresAt.String())

	assert.True(t, HasAccess(&enrollment, wantExpiry.Add(-time.Second)))
	assert.False(t, HasAccess(&enrollment, wantExpiry))
	assert.False(t, HasAccess(&enrollment, wantExpiry.Add(time.Hour)))
}

func TestCheckoutOnlineCourseNoEnrollmentExpiry(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "09120000012")
	createCompleteProfile(t, db, user.ID)
	category := createCategory(t, db, "programming")
	product := createProduct(t, db, category.ID, "Live Go Course", "100.00", model.CourseTypeOnline)
	deadline := time.Date(2030, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(product).Update("registration_deadline", deadline).Error)

	addToCart(t, db, user.ID, product.ID)

	svc := newCheckoutService(db)
	_, err := svc.Checkout(ctx, user.ID, &dto.CheckoutRequest{})
	require.NoError(t, err)

	var enrollment model.CourseEnrollment
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&enrollment).Error)
	assert.Nil(t, enrollment.AccessExpiresAt)
}
