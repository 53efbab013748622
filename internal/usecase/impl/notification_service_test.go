package impl

import (
	"context"
	"testing"

	"drivesafe/internal/domain/entity"
	domainerrors "drivesafe/internal/domain/errors"
	"drivesafe/internal/domain/repository"
	"drivesafe/internal/domain/service"
	mockRepo "drivesafe/internal/mocks/repository"
	mockSvc "drivesafe/internal/mocks/service"
	"drivesafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	push             *mockSvc.MockPushService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	push := mockSvc.NewMockPushService(t)

	return notificationServiceFixtures{
		service:          NewNotificationService(notificationRepo, deviceRepo, push, newTestConfig(), newDiscardLogger()),
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		push:             push,
	}
}

func TestNotificationService_ListNotifications(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	page := []*entity.Notification{{ID: uuid.New(), UserID: userID}, {ID: uuid.New(), UserID: userID}}

	fx.notificationRepo.EXPECT().
		ListNotifications(ctx, entity.NotificationFilter{UserID: userID, Limit: 2, Skip: 0}).
		Return(page, nil).
		Once()
	fx.notificationRepo.EXPECT().
		CountNotifications(ctx, userID, (*bool)(nil)).
		Return(int64(5), nil).
		Once()
	fx.notificationRepo.EXPECT().
		CountNotifications(ctx, userID, mock.MatchedBy(func(isRead *bool) bool { return isRead != nil && !*isRead })).
		Return(int64(3), nil).
		Once()

	result, err := fx.service.ListNotifications(ctx, entity.NotificationFilter{UserID: userID, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, result.Notifications, 2)
	assert.Equal(t, int64(5), result.TotalCount)
	assert.Equal(t, int64(3), result.UnreadCount)
	assert.True(t, result.HasMore)
}

func TestNotificationService_ListNotifications_NormalizesPaging(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		ListNotifications(ctx, entity.NotificationFilter{UserID: userID, Limit: maxNotificationLimit, Skip: 0}).
		Return(nil, nil).
		Once()
	fx.notificationRepo.EXPECT().
		CountNotifications(ctx, userID, mock.Anything).
		Return(int64(0), nil).
		Twice()

	result, err := fx.service.ListNotifications(ctx, entity.NotificationFilter{UserID: userID, Limit: 1000, Skip: -4})
	require.NoError(t, err)
	assert.NotNil(t, result.Notifications)
	assert.Empty(t, result.Notifications)
	assert.False(t, result.HasMore)
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "marked", repoErr: nil, wantErr: nil},
		{name: "not found", repoErr: repository.ErrNotificationNotFound, wantErr: domainerrors.ErrNotificationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotificationService(t)
			fx.notificationRepo.EXPECT().MarkAsRead(ctx, userID, notificationID).Return(tt.repoErr).Once()

			err := fx.service.MarkAsRead(ctx, userID, notificationID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNotificationService_MarkAllAsRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().MarkAllAsRead(ctx, userID).Return(int64(7), nil).Once()

	count, err := fx.service.MarkAllAsRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		CountNotifications(ctx, userID, mock.MatchedBy(func(isRead *bool) bool { return isRead != nil && !*isRead })).
		Return(int64(4), nil).
		Once()

	count, err := fx.service.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestNotificationService_DeleteAllNotifications(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().DeleteAllNotifications(ctx, userID).Return(int64(9), nil).Once()

	count, err := fx.service.DeleteAllNotifications(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(9), count)

	fx.notificationRepo.EXPECT().DeleteAllNotifications(ctx, userID).Return(int64(0), errors.New("db down")).Once()

	_, err = fx.service.DeleteAllNotifications(ctx, userID)
	assert.ErrorContains(t, err, "db down")
}

func TestNotificationService_DeleteNotification_NotFound(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().
		DeleteNotification(ctx, userID, notificationID).
		Return(repository.ErrNotificationNotFound).
		Once()

	err := fx.service.DeleteNotification(ctx, userID, notificationID)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_SendGeneralNotification(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == userID && n.Type == entity.NotificationTypeGeneral && !n.IsRead
		})).
		Return(nil).
		Once()
	fx.deviceRepo.EXPECT().
		FindActiveDevicesByUser(ctx, userID).
		Return([]*entity.UserDevice{
			{ID: uuid.New(), UserID: userID, FCMToken: "token-a", IsActive: true},
			{ID: uuid.New(), UserID: userID, FCMToken: "token-b", IsActive: true},
		}, nil).
		Once()
	fx.push.EXPECT().
		SendMulticast(mock.Anything, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return len(msg.Tokens) == 2 &&
				msg.Hints.Android.ChannelID == "general" &&
				msg.Data["inviteeId"] == "abc"
		})).
		Return(&service.MulticastResult{SuccessCount: 1, FailureCount: 1}, nil).
		Once()

	result, err := fx.service.SendGeneralNotification(ctx, userID, &usecase.GeneralNotification{
		Title: "Invitation accepted",
		Body:  "Bob is now your emergency contact",
		Data:  map[string]any{"inviteeId": "abc"},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.InAppSent)
	assert.True(t, result.FCMSent)
	assert.Equal(t, 2, result.Tokens)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestNotificationService_SendGeneralNotification_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil).Once()
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(nil, nil).Once()

	result, err := fx.service.SendGeneralNotification(ctx, userID, &usecase.GeneralNotification{Title: "Hi"})
	require.NoError(t, err)
	assert.True(t, result.InAppSent)
	assert.False(t, result.FCMSent)
	assert.Zero(t, result.Tokens)
}

func TestNotificationService_SendGeneralNotification_RecordFailure(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(errors.New("insert failed")).Once()

	result, err := fx.service.SendGeneralNotification(ctx, userID, &usecase.GeneralNotification{Title: "Hi"})
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestNotificationService_SendGeneralNotification_RequiresTitle(t *testing.T) {
	fx := createTestNotificationService(t)

	_, err := fx.service.SendGeneralNotification(context.Background(), uuid.New(), &usecase.GeneralNotification{})
	assert.Error(t, err)
}
