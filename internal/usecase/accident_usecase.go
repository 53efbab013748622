package usecase

import (
	"context"
	"time"

	"drivesafe/internal/domain/entity"

	"github.com/google/uuid"
)

// AccidentInput carries a detected accident reported by the app
type AccidentInput struct {
	DetectedTime *time.Time // defaults to now
	Location     string
	ContactNum   string
	ContactTime  string
	DeviceID     string
}

// AccidentUsecase defines the interface for accident use cases
type AccidentUsecase interface {
	// CreateAccident stores the accident and triggers an emergency alert without waiting for delivery
	CreateAccident(ctx context.Context, userID uuid.UUID, input *AccidentInput) (*entity.Accident, error)

	// ListAccidents returns the user's accidents, newest first
	ListAccidents(ctx context.Context, filter entity.AccidentFilter) ([]*entity.Accident, error)

	// GetAccident returns one of the user's accidents
	GetAccident(ctx context.Context, userID, accidentID uuid.UUID) (*entity.Accident, error)

	// DeleteAccident removes one of the user's accidents
	DeleteAccident(ctx context.Context, userID, accidentID uuid.UUID) error
}
