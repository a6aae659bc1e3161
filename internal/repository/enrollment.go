package repository

import (
	"context"

	"course-market-api/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	Exists(ctx context.Context, userID, productID uint) (bool, error)
	Create(ctx context.Context, tx *gorm.DB, enrollment *model.CourseEnrollment) error
	ListActiveByUser(ctx context.Context, userID uint) ([]*model.CourseEnrollment, error)
}

type enrollmentRepoImpl struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepoImpl{
		db: db,
	}
}

func (r *enrollmentRepoImpl) Exists(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CourseEnrollment{}).
		Where("user_id = ?", userID).
		Where("product_id = ?", productID).
		Count(&count).Error

	return count > 0, err
}

func (r *enrollmentRepoImpl) Create(ctx context.Context, tx *gorm.DB, enrollment *model.CourseEnrollment) error {
	return tx.WithContext(ctx).Create(enrollment).Error
}

func (r *enrollmentRepoImpl) ListActiveByUser(ctx context.Context, userID uint) ([]*model.CourseEnrollment, error) {
	var enrollments []*model.CourseEnrollment
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Where("is_active = ?", true).
		Order("enrolled_at DESC").
		Find(&enrollments).Error

	if err != nil {
		return nil, err
	}

	return enrollments, nil
}
