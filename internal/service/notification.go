package service

import (
	"context"

	"course-market-api/internal/dto"
	"course-market-api/internal/repository"
)

type NotificationService interface {
	List(ctx context.Context, userID uint) ([]*dto.NotificationView, error)
	MarkRead(ctx context.Context, userID, notificationID uint) error
}

type notificationServiceImpl struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
	}
}

func (s *notificationServiceImpl) List(ctx context.Context, userID uint) ([]*dto.NotificationView, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*dto.NotificationView, len(notifications))
	for i, n := range notifications {
		views[i] = &dto.NotificationView{
			ID:         n.ID,
			Title:      n.Title,
			Message:    n.Message,
			Type:       string(n.Type),
			IsRead:     n.IsRead,
			RelatedURL: n.RelatedURL,
			CreatedAt:  n.CreatedAt,
		}
	}

	return views, nil
}

func (s *notificationServiceImpl) MarkRead(ctx context.Context, userID, notificationID uint) error {
	return s.notificationRepo.MarkRead(ctx, userID, notificationID)
}
