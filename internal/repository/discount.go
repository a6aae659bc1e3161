package repository

import (
	"context"
	"errors"

	"course-market-api/internal/model"

	"gorm.io/gorm"
)

// ErrDiscountExhausted means the guarded increment found the usage cap
// already reached (or the code deactivated) at commit time.
var ErrDiscountExhausted = errors.New("discount code usage limit reached")

type DiscountRepository interface {
	FindByCode(ctx context.Context, code string) (*model.DiscountCode, error)
	ConsumeUsage(ctx context.Context, tx *gorm.DB, discountID uint) error
}

type discountRepoImpl struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) DiscountRepository {
	return &discountRepoImpl{
		db: db,
	}
}

func (r *discountRepoImpl) FindByCode(ctx context.Context, code string) (*model.DiscountCode, error) {
	var discount model.DiscountCode
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&discount).Error

	if err != nil {
		return nil, err
	}

	return &discount, nil
}

// ConsumeUsage increments used_count by one, atomically at the storage
// layer. The cap predicate makes concurrent checkouts racing on the same
// capped code serialize on the row update instead of read-modify-write.
func (r *discountRepoImpl) ConsumeUsage(ctx context.Context, tx *gorm.DB, discountID uint) error {
	result := tx.WithContext(ctx).Model(&model.DiscountCode{}).
		Where("id = ?", discountID).
		Where("is_active = ?", true).
		Where("max_usage IS NULL OR used_count < max_usage").
		Update("used_count", gorm.Expr("used_count + 1"))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDiscountExhausted
	}

	return nil
}
