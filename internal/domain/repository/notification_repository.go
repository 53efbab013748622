// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"drivesafe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found for its owner.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for in-app notification persistence.
// Every lookup is scoped to the owning user.
type NotificationRepository interface {
	// CreateNotification persists a new in-app notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// ListNotifications returns a page of the user's notifications, newest first.
	ListNotifications(ctx context.Context, filter entity.NotificationFilter) ([]*entity.Notification, error)

	// CountNotifications counts the user's notifications, optionally by read state.
	CountNotifications(ctx context.Context, userID uuid.UUID, isRead *bool) (int64, error)

	// MarkAsRead flags one notification as read.
	MarkAsRead(ctx context.Context, userID, id uuid.UUID) error

	// MarkAllAsRead flags every unread notification as read and returns how many changed.
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteNotification removes one notification.
	DeleteNotification(ctx context.Context, userID, id uuid.UUID) error

	// DeleteAllNotifications clears the user's inbox and returns how many were removed.
	DeleteAllNotifications(ctx context.Context, userID uuid.UUID) (int64, error)
}
