package impl

import (
	"context"
	"log/slog"
	"time"

	"drivesafe/config"
	deliverycontext "drivesafe/internal/delivery/context"
	"drivesafe/internal/domain/entity"
	domainerrors "drivesafe/internal/domain/errors"
	"drivesafe/internal/domain/repository"
	"drivesafe/internal/domain/service"
	"drivesafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	dispatcher       *batchDispatcher
	logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
	pushSvc service.PushService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	alertCfg := cfg.Alert
	if alertCfg == nil {
		alertCfg = &config.AlertConfig{}
	}

	return &notificationService{
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		dispatcher:       newBatchDispatcher(pushSvc, alertCfg, logger),
		logger:           logger,
	}
}

func (s *notificationService) getLogger(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListNotifications returns a page of the user's inbox, newest first
func (s *notificationService) ListNotifications(ctx context.Context, filter entity.NotificationFilter) (*entity.NotificationPage, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultNotificationLimit
	}
	filter.Limit = min(filter.Limit, maxNotificationLimit)
	filter.Skip = max(filter.Skip, 0)

	notifications, err := s.notificationRepo.ListNotifications(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	total, err := s.notificationRepo.CountNotifications(ctx, filter.UserID, filter.IsRead)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count notifications")
	}

	unread := false
	unreadCount, err := s.notificationRepo.CountNotifications(ctx, filter.UserID, &unread)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread notifications")
	}

	if notifications == nil {
		notifications = []*entity.Notification{}
	}

	return &entity.NotificationPage{
		Notifications: notifications,
		TotalCount:    total,
		UnreadCount:   unreadCount,
		HasMore:       total > int64(filter.Skip+len(notifications)),
	}, nil
}

// MarkAsRead flags one of the user's notifications as read
func (s *notificationService) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.MarkAsRead(ctx, userID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification as read")
	}

	return nil
}

// MarkAllAsRead flags every unread notification of the user as read
func (s *notificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.MarkAllAsRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications as read")
	}

	s.getLogger(ctx).Debug("Marked notifications as read", slog.Int64("count", count))

	return count, nil
}

// DeleteNotification removes one of the user's notifications
func (s *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.DeleteNotification(ctx, userID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

// UnreadCount counts the user's unread notifications
func (s *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	unread := false
	count, err := s.notificationRepo.CountNotifications(ctx, userID, &unread)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// DeleteAllNotifications clears the user's inbox
func (s *notificationService) DeleteAllNotifications(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := s.notificationRepo.DeleteAllNotifications(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete notifications")
	}

	s.getLogger(ctx).Debug("Cleared notifications", slog.Int64("count", count))

	return count, nil
}

// SendGeneralNotification records the notification in the user's inbox, then pushes it to the
// user's active devices. Push failures are reported in the result, not as an error.
func (s *notificationService) SendGeneralNotification(ctx context.Context, userID uuid.UUID, notification *usecase.GeneralNotification) (*entity.DeliveryResult, error) {
	if notification == nil || notification.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("notification title is required")
	}

	logger := s.getLogger(ctx).With(slog.String("user_id", userID.String()))

	notificationType := notification.Type
	if notificationType == "" {
		notificationType = entity.NotificationTypeGeneral
	}

	record := &entity.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     notification.Title,
		Body:      notification.Body,
		Type:      notificationType,
		Data:      notification.Data,
		CreatedAt: time.Now(),
	}
	if record.Data == nil {
		record.Data = map[string]any{}
	}

	if err := s.notificationRepo.CreateNotification(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	devices, err := s.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		logger.Warn("Failed to load devices for notification push", slog.Any("error", err))

		return synthesizeResult([]uuid.UUID{userID}, 0, nil), nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.FCMToken != "" {
			tokens = append(tokens, device.FCMToken)
		}
	}
	if len(tokens) == 0 {
		return synthesizeResult([]uuid.UUID{userID}, 0, nil), nil
	}

	outcomes := s.dispatcher.dispatch(ctx, tokens, &service.PushMessage{
		Title: notification.Title,
		Body:  notification.Body,
		Data:  stringifyData(record.Data),
		Hints: entity.GeneralPushHints(),
	})

	result := synthesizeResult([]uuid.UUID{userID}, len(tokens), outcomes)
	logger.Info("General notification sent",
		slog.Int("tokens", result.Tokens),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}
