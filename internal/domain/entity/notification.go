// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is the category tag of an in-app notification.
type NotificationType string

const (
	NotificationTypeAccidentAlert NotificationType = "accident_alert"
	NotificationTypeSystem        NotificationType = "system"
	NotificationTypeGeneral       NotificationType = "general"
)

// Notification is an in-app notification kept in a user's inbox.
type Notification struct {
	ID        uuid.UUID        `json:"id"`        // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID        `json:"userId"`    // The recipient who owns this notification.
	Title     string           `json:"title"`     // Short headline.
	Body      string           `json:"body"`      // Human-readable message.
	Type      NotificationType `json:"type"`      // Category tag.
	IsRead    bool             `json:"isRead"`    // False until the recipient opens it.
	Data      map[string]any   `json:"data"`      // Machine-readable payload for the client.
	CreatedAt time.Time        `json:"createdAt"` // Timestamp of when the notification was recorded.
}

// NotificationFilter selects a page of a user's notifications, newest first.
type NotificationFilter struct {
	UserID uuid.UUID
	Limit  int
	Skip   int
	IsRead *bool // nil matches both read and unread
}

// NotificationPage is one page of a user's inbox.
type NotificationPage struct {
	Notifications []*Notification `json:"notifications"`
	TotalCount    int64           `json:"totalCount"`
	UnreadCount   int64           `json:"unreadCount"`
	HasMore       bool            `json:"hasMore"`
}
