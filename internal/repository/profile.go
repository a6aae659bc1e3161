package repository

import (
	"context"

	"course-market-api/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository interface {
	GetOrCreate(ctx context.Context, userID uint) (*model.UserProfile, error)
	Update(ctx context.Context, profile *model.UserProfile) error
}

type profileRepoImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepoImpl{
		db: db,
	}
}

func (r *profileRepoImpl) GetOrCreate(ctx context.Context, userID uint) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.db.WithContext(ctx).
		Where(model.UserProfile{UserID: userID}).
		FirstOrCreate(&profile).Error

	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepoImpl) Update(ctx context.Context, profile *model.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
