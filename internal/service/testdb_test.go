package service

import (
	"fmt"
	"testing"
	"time"

	"course-market-api/internal/client"
	"course-market-api/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, client.AutoMigrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, phone string) *model.User {
	t.Helper()
	user := &model.User{Phone: phone, IsActive: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCompleteProfile(t *testing.T, db *gorm.DB, userID uint) {
	t.Helper()
	birth := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	profile := &model.UserProfile{
		UserID:    userID,
		City:      "Tehran",
		Address:   "Valiasr St. 12",
		BirthDate: &birth,
	}
	require.NoError(t, db.Create(profile).Error)
}

func createCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()
	category := &model.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createProduct(t *testing.T, db *gorm.DB, categoryID uint, title string, price string, courseType model.CourseType) *model.Product {
	t.Helper()
	product := &model.Product{
		CategoryID:  categoryID,
		Title:       title,
		Description: title + " description",
		Price:       decimal.RequireFromString(price),
		CourseType:  courseType,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func addToCart(t *testing.T, db *gorm.DB, userID uint, productIDs ...uint) *model.Cart {
	t.Helper()
	cart := &model.Cart{UserID: userID}
	require.NoError(t, db.Where(model.Cart{UserID: userID}).FirstOrCreate(cart).Error)
	for _, pid := range productIDs {
		require.NoError(t, db.Create(&model.CartItem{CartID: cart.ID, ProductID: pid}).Error)
	}
	return cart
}

func intPtr(v int) *int { return &v }

func uintPtr(v uint) *uint { return &v }

func timePtr(v time.Time) *time.Time { return &v }
