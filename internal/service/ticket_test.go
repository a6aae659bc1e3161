package service

import (
	"context"
	"testing"

	"course-market-api/internal/dto"
	"course-market-api/internal/model"
	"course-market-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTicketService(db *gorm.DB) TicketService {
	return NewTicketService(
		db,
		repository.NewTicketRepository(db),
		repository.NewNotificationRepository(db),
	)
}

func TestTicketLifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "09127778888")
	svc := newTicketService(db)

	ticket, err := svc.Create(ctx, user.ID, &dto.CreateTicketRequest{
		Title:    "Video won't play",
		Message:  "Chapter 3 video errors out.",
		Category: "technical",
	})
	require.NoError(t, err)
	assert.Equal(t, "open", ticket.Status)
	assert.Equal(t, "technical", ticket.Category)

	// a user message moves an open ticket to in_progress
	_, err = svc.AddUserMessage(ctx, user.ID, ticket.ID, "Any update on this?")
	require.NoError(t, err)

	got, err := svc.Get(ctx, user.ID, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, "in_progress", got.Status)
	require.Len(t, got.Messages, 1)
	assert.True(t, got.Messages[0].SenderIsUser)
}

func TestTicketOwnership(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	owner := createUser(t, db, "09127778889")
	stranger := createUser(t, db, "09127778890")
	svc := newTicketService(db)

	ticket, err := svc.Create(ctx, owner.ID, &dto.CreateTicketRequest{Title: "Billing question"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, stranger.ID, ticket.ID)
	assert.ErrorIs(t, err, ErrTicketNotFound)

	_, err = svc.AddUserMessage(ctx, stranger.ID, ticket.ID, "let me in")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestTicketUnknownCategoryFallsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "09127778891")
	svc := newTicketService(db)

	ticket, err := svc.Create(ctx, user.ID, &dto.CreateTicketRequest{
		Title:    "Hello",
		Category: "nonsense",
	})
	require.NoError(t, err)
	assert.Equal(t, "support", ticket.Category)
}

func TestTicketReplyNotifiesOwner(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "09127778892")
	svc := newTicketService(db)

	ticket, err := svc.Create(ctx, user.ID, &dto.CreateTicketRequest{Title: "Refund request", Category: "financial"})
	require.NoError(t, err)

	require.NoError(t, svc.Reply(ctx, ticket.ID, nil, "We have issued the refund."))

	got, err := svc.Get(ctx, user.ID, ticket.ID)
	require.NoError(t, err)
	assert.Equal(t, "answered", got.Status)
	require.Len(t, got.Messages, 1)
	assert.False(t, got.Messages[0].SenderIsUser)

	var notification model.Notification
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&notification).Error)
	assert.Equal(t, model.NotificationTicketResponse, notification.Type)
	assert.Contains(t, notification.Title, "Refund request")
	assert.Equal(t, "We have issued the refund.", notification.Message)
}
