package service

import (
	"context"
	"testing"
	"time"

	"course-market-api/internal/dto"
	"course-market-api/internal/model"
	"course-market-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAccountService(db *gorm.DB) AccountService {
	return NewAccountService(
		repository.NewUserRepository(db),
		repository.NewProfileRepository(db),
		repository.NewNotificationRepository(db),
	)
}

func TestProfileComplete(t *testing.T) {
	birth := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, ProfileComplete(&model.UserProfile{}))
	assert.False(t, ProfileComplete(&model.UserProfile{City: "Tehran", Address: "Valiasr St."}))
	assert.False(t, ProfileComplete(&model.UserProfile{City: "Tehran", BirthDate: &birth}))
	assert.True(t, ProfileComplete(&model.UserProfile{City: "Tehran", Address: "Valiasr St.", BirthDate: &birth}))
}

func TestUpdateAndReadProfile(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "09129990000")
	svc := newAccountService(db)

	// auto-created empty on first read
	profile, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, profile.City)

	birth := time.Date(1988, 2, 20, 0, 0, 0, 0, time.UTC)
	updated, err := svc.UpdateProfile(ctx, user.ID, &dto.UpdateProfileRequest{
		City:      "Shiraz",
		Address:   "Zand Blvd. 5",
		BirthDate: &birth,
	})
	require.NoError(t, err)
	assert.Equal(t, "Shiraz", updated.City)

	again, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Zand Blvd. 5", again.Address)
	require.NotNil(t, again.BirthDate)
}

func TestMeCountsUnreadNotifications(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	user := createUser(t, db, "09129990001")
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&model.Notification{
			UserID:  user.ID,
			Title:   "hi",
			Message: "hello",
			Type:    model.NotificationGeneral,
		}).Error)
	}
	require.NoError(t, db.Create(&model.Notification{
		UserID:  user.ID,
		Title:   "old",
		Message: "seen already",
		Type:    model.NotificationGeneral,
		IsRead:  true,
	}).Error)

	svc := newAccountService(db)
	me, err := svc.Me(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Phone, me.Phone)
	assert.EqualValues(t, 3, me.UnreadNotifications)
}
