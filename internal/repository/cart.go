package repository

import (
	"context"

	"course-market-api/internal/model"

	"gorm.io/gorm"
)

type CartRepository interface {
	GetOrCreate(ctx context.Context, userID uint) (*model.Cart, error)
	Items(ctx context.Context, cartID uint) ([]*model.CartItem, error)
	HasItem(ctx context.Context, cartID, productID uint) (bool, error)
	AddItem(ctx context.Context, item *model.CartItem) error
	RemoveItem(ctx context.Context, cartID, productID uint) error
	Clear(ctx context.Context, tx *gorm.DB, cartID uint) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{
		db: db,
	}
}

func (r *cartRepoImpl) GetOrCreate(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Where(model.Cart{UserID: userID}).
		FirstOrCreate(&cart).Error

	if err != nil {
		return nil, err
	}

	return &cart, nil
}

// Items returns cart items in insertion order so totals are reproducible.
func (r *cartRepoImpl) Items(ctx context.Context, cartID uint) ([]*model.CartItem, error) {
	var items []*model.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("id").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepoImpl) HasItem(ctx context.Context, cartID, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("cart_id = ?", cartID).
		Where("product_id = ?", productID).
		Count(&count).Error

	return count > 0, err
}

func (r *cartRepoImpl) AddItem(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepoImpl) RemoveItem(ctx context.Context, cartID, productID uint) error {
	return r.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Where("product_id = ?", productID).
		Delete(&model.CartItem{}).Error
}

func (r *cartRepoImpl) Clear(ctx context.Context, tx *gorm.DB, cartID uint) error {
	return tx.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&model.CartItem{}).Error
}
