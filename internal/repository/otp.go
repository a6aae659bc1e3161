package repository

import (
	"context"
	"errors"

	"course-market-api/internal/model"

	"gorm.io/gorm"
)

type OTPRepository interface {
	Latest(ctx context.Context, phone string) (*model.OTP, error)
	Replace(ctx context.Context, otp *model.OTP) error
}

type otpRepoImpl struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepoImpl{
		db: db,
	}
}

func (r *otpRepoImpl) Latest(ctx context.Context, phone string) (*model.OTP, error) {
	var otp model.OTP
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		Order("created_at DESC").
		First(&otp).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &otp, nil
}

// Replace drops any earlier codes for the phone and stores the new one.
func (r *otpRepoImpl) Replace(ctx context.Context, otp *model.OTP) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("phone = ?", otp.Phone).Delete(&model.OTP{}).Error; err != nil {
			return err
		}
		return tx.Create(otp).Error
	})
}
