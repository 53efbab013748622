package entity

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// EventKind identifies what triggered an emergency alert.
type EventKind string

const (
	EventKindAccident EventKind = "accident_alert"
)

// Valid reports whether the kind is one the alert pipeline knows how to present.
func (k EventKind) Valid() bool {
	return k == EventKindAccident
}

// NotificationType is the in-app category tag used for alerts of this kind.
func (k EventKind) NotificationType() NotificationType {
	return NotificationType(k)
}

// PushHints returns the platform delivery hints for alerts of this kind.
func (k EventKind) PushHints() PushHints {
	switch k {
	case EventKindAccident:
		return PushHints{
			Android: AndroidHints{
				Priority:             "high",
				ChannelID:            "accidents",
				NotificationPriority: "max",
				Sound:                "alarm",
				Icon:                 "@drawable/notification_icon",
			},
			APNS: APNSHints{
				Sound:            "default",
				Category:         "ACCIDENT",
				ContentAvailable: true,
				Headers:          map[string]string{"apns-priority": "10"},
			},
		}
	default:
		return GeneralPushHints()
	}
}

// GeneralPushHints returns the delivery hints for non-emergency notifications.
func GeneralPushHints() PushHints {
	return PushHints{
		Android: AndroidHints{
			Priority:  "high",
			ChannelID: "general",
		},
		APNS: APNSHints{
			Sound: "default",
		},
	}
}

// PushHints carries per-platform presentation settings for a push message.
type PushHints struct {
	Android AndroidHints
	APNS    APNSHints
}

// AndroidHints maps onto the Android section of a push message.
type AndroidHints struct {
	Priority             string // "high" or "normal"
	ChannelID            string
	NotificationPriority string // "min" through "max"
	Sound                string
	Icon                 string
}

// APNSHints maps onto the APNs section of a push message.
type APNSHints struct {
	Sound            string
	Category         string
	ContentAvailable bool
	Headers          map[string]string
}

// EmergencyEvent is a safety event that fans out to the user's emergency contacts.
type EmergencyEvent struct {
	Kind       EventKind  `json:"kind"`
	UserID     uuid.UUID  `json:"userId"`
	OccurredAt time.Time  `json:"occurredAt"`
	Location   string     `json:"location,omitempty"`
	SourceID   *uuid.UUID `json:"sourceId,omitempty"` // Record that produced the event, e.g. the accident.
	RequestID  string     `json:"requestId,omitempty"`
}

// LogValue implements slog.LogValuer.
func (e *EmergencyEvent) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", string(e.Kind)),
		slog.String("user_id", e.UserID.String()),
		slog.Time("occurred_at", e.OccurredAt),
	}
	if e.SourceID != nil {
		attrs = append(attrs, slog.String("source_id", e.SourceID.String()))
	}
	if e.RequestID != "" {
		attrs = append(attrs, slog.String("request_id", e.RequestID))
	}

	return slog.GroupValue(attrs...)
}

// DeliveryBatch is a contiguous slice of tokens sent in one multicast call.
type DeliveryBatch struct {
	Index  int
	Tokens []string
}

// BatchOutcome is the provider's verdict on one batch. Err is set when the call itself failed,
// in which case FailureCount equals Size.
type BatchOutcome struct {
	Index         int
	Size          int
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
	Err           error
}

// DeliveryResult summarises one alert run across the in-app and push channels.
type DeliveryResult struct {
	Success          bool        `json:"success"`
	Error            string      `json:"error,omitempty"`
	InAppSent        bool        `json:"inAppSent"`
	FCMSent          bool        `json:"fcmSent"`
	Tokens           int         `json:"tokens"`
	Sent             int         `json:"sent"`
	Failed           int         `json:"failed"`
	Batches          int         `json:"batches"`
	NotifiedContacts []uuid.UUID `json:"notifiedContacts,omitempty"`
	Errors           []string    `json:"errors,omitempty"`
}

// LogValue implements slog.LogValuer.
func (r *DeliveryResult) LogValue() slog.Value {
	if !r.Success {
		return slog.GroupValue(
			slog.Bool("success", false),
			slog.String("error", r.Error),
		)
	}

	return slog.GroupValue(
		slog.Bool("success", true),
		slog.Bool("in_app_sent", r.InAppSent),
		slog.Bool("fcm_sent", r.FCMSent),
		slog.Int("contacts", len(r.NotifiedContacts)),
		slog.Int("tokens", r.Tokens),
		slog.Int("sent", r.Sent),
		slog.Int("failed", r.Failed),
		slog.Int("batches", r.Batches),
		slog.Any("errors", r.Errors),
	)
}
