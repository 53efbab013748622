package usecase

import (
	"context"

	"drivesafe/internal/domain/entity"

	"github.com/google/uuid"
)

// GeneralNotification is a non-emergency message for a single user.
type GeneralNotification struct {
	Title string
	Body  string
	Type  entity.NotificationType // defaults to general
	Data  map[string]any
}

// NotificationUsecase defines the interface for in-app notification use cases
type NotificationUsecase interface {
	// ListNotifications returns a page of the user's inbox with total and unread counts
	ListNotifications(ctx context.Context, filter entity.NotificationFilter) (*entity.NotificationPage, error)

	// MarkAsRead flags one of the user's notifications as read
	MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllAsRead flags all of the user's notifications as read and returns how many changed
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteNotification removes one of the user's notifications
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error

	// UnreadCount counts the user's unread notifications
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteAllNotifications clears the user's inbox and returns how many were removed
	DeleteAllNotifications(ctx context.Context, userID uuid.UUID) (int64, error)

	// SendGeneralNotification records an in-app notification and pushes it to the user's devices
	SendGeneralNotification(ctx context.Context, userID uuid.UUID, notification *GeneralNotification) (*entity.DeliveryResult, error)
}
