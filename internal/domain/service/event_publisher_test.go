package service

import (
	"testing"
	"time"

	"drivesafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertEvent_RoundTrip(t *testing.T) {
	sourceID := uuid.New()
	event := &entity.EmergencyEvent{
		Kind:       entity.EventKindAccident,
		UserID:     uuid.New(),
		OccurredAt: time.Date(2026, 10, 17, 15, 4, 5, 0, time.UTC),
		Location:   "Main St & 5th Ave",
		SourceID:   &sourceID,
		RequestID:  "req-1",
	}

	got, err := NewAlertEvent(event).ToEmergencyEvent()
	require.NoError(t, err)
	assert.Equal(t, event, got)
}

func TestAlertEvent_ToEmergencyEvent_Invalid(t *testing.T) {
	valid := AlertEvent{
		Kind:       string(entity.EventKindAccident),
		UserID:     uuid.NewString(),
		OccurredAt: time.Now().UTC().Format(time.RFC3339Nano),
	}

	tests := []struct {
		name   string
		mutate func(a *AlertEvent)
	}{
		{name: "unknown kind", mutate: func(a *AlertEvent) { a.Kind = "fire" }},
		{name: "bad user id", mutate: func(a *AlertEvent) { a.UserID = "nope" }},
		{name: "bad time", mutate: func(a *AlertEvent) { a.OccurredAt = "yesterday" }},
		{name: "bad source id", mutate: func(a *AlertEvent) { a.SourceID = "123" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := valid
			tt.mutate(&alert)

			_, err := alert.ToEmergencyEvent()
			assert.Error(t, err)
		})
	}
}
