package entity

import (
	"time"

	"github.com/google/uuid"
)

// Accident is a crash detected on a user's phone. Creating one triggers an emergency alert.
type Accident struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	DeviceID     string    `json:"deviceId,omitempty"`
	DetectedTime time.Time `json:"detectedTime"`
	Location     string    `json:"location"`
	ContactNum   string    `json:"contactNum"`  // Number dialled by the app, if any.
	ContactTime  string    `json:"contactTime"` // When the app reached out, as reported by the client.
	CreatedAt    time.Time `json:"createdAt"`
}

// AccidentFilter narrows a user's accident history by detection time.
type AccidentFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}
