package service

import (
	"context"
	"fmt"

	"course-market-api/internal/dto"
	"course-market-api/internal/model"
	"course-market-api/internal/repository"
)

// ProfileComplete is the checkout gate: city, address and birth date must
// all be present.
func ProfileComplete(profile *model.UserProfile) bool {
	return profile.City != "" && profile.Address != "" && profile.BirthDate != nil
}

type AccountService interface {
	Me(ctx context.Context, userID uint) (*dto.MeResponse, error)
	Profile(ctx context.Context, userID uint) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type accountServiceImpl struct {
	userRepo         repository.UserRepository
	profileRepo      repository.ProfileRepository
	notificationRepo repository.NotificationRepository
}

func NewAccountService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	notificationRepo repository.NotificationRepository,
) AccountService {
	return &accountServiceImpl{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *accountServiceImpl) Me(ctx context.Context, userID uint) (*dto.MeResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count unread notifications: %w", err)
	}

	return &dto.MeResponse{
		ID:                  user.ID,
		Phone:               user.Phone,
		FirstName:           user.FirstName,
		LastName:            user.LastName,
		Email:               user.Email,
		IsPhoneVerified:     user.IsPhoneVerified,
		UnreadNotifications: unread,
	}, nil
}

func (s *accountServiceImpl) Profile(ctx context.Context, userID uint) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	return profileView(profile), nil
}

func (s *accountServiceImpl) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	profile.City = req.City
	profile.Address = req.Address
	profile.BirthDate = req.BirthDate
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return profileView(profile), nil
}

func profileView(profile *model.UserProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		City:      profile.City,
		Address:   profile.Address,
		BirthDate: profile.BirthDate,
		UpdatedAt: profile.UpdatedAt,
	}
}
