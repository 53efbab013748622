package service

import (
	"context"
	"fmt"
	"time"

	"drivesafe/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertEvent is the wire form of an emergency event handed to the alert worker.
type AlertEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	Kind       string `json:"kind"`
	UserID     string `json:"user_id"`
	OccurredAt string `json:"occurred_at"` // RFC 3339
	Location   string `json:"location,omitempty"`
	SourceID   string `json:"source_id,omitempty"`
}

// NewAlertEvent converts an emergency event to its wire form.
func NewAlertEvent(event *entity.EmergencyEvent) *AlertEvent {
	alert := &AlertEvent{
		RequestID:  event.RequestID,
		Kind:       string(event.Kind),
		UserID:     event.UserID.String(),
		OccurredAt: event.OccurredAt.UTC().Format(time.RFC3339Nano),
		Location:   event.Location,
	}
	if event.SourceID != nil {
		alert.SourceID = event.SourceID.String()
	}

	return alert
}

// ToEmergencyEvent parses the wire form back into an emergency event.
func (a *AlertEvent) ToEmergencyEvent() (*entity.EmergencyEvent, error) {
	kind := entity.EventKind(a.Kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("unknown event kind %q", a.Kind)
	}

	userID, err := uuid.Parse(a.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	occurredAt, err := time.Parse(time.RFC3339Nano, a.OccurredAt)
	if err != nil {
		return nil, fmt.Errorf("invalid occurred_at: %w", err)
	}

	event := &entity.EmergencyEvent{
		Kind:       kind,
		UserID:     userID,
		OccurredAt: occurredAt,
		Location:   a.Location,
		RequestID:  a.RequestID,
	}

	if a.SourceID != "" {
		sourceID, err := uuid.Parse(a.SourceID)
		if err != nil {
			return nil, fmt.Errorf("invalid source id: %w", err)
		}
		event.SourceID = &sourceID
	}

	return event, nil
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertEvent publishes an emergency event for async fan-out
	PublishAlertEvent(ctx context.Context, event *AlertEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
