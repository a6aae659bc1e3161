package repository

import (
	"context"

	"course-market-api/internal/model"

	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, payment *model.PaymentHistory) error
	ListByOrder(ctx context.Context, orderID uint) ([]*model.PaymentHistory, error)
}

type paymentRepoImpl struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{
		db: db,
	}
}

func (r *paymentRepoImpl) Create(ctx context.Context, tx *gorm.DB, payment *model.PaymentHistory) error {
	return tx.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepoImpl) ListByOrder(ctx context.Context, orderID uint) ([]*model.PaymentHistory, error) {
	var payments []*model.PaymentHistory
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&payments).Error

	if err != nil {
		return nil, err
	}

	return payments, nil
}
