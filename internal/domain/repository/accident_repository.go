package repository

import (
	"context"
	"errors"

	"drivesafe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccidentNotFound is returned when an accident is not found for its owner.
var ErrAccidentNotFound = errors.New("accident not found")

// AccidentRepository defines the interface for accident persistence.
type AccidentRepository interface {
	CreateAccident(ctx context.Context, accident *entity.Accident) error
	FindAccidentByID(ctx context.Context, userID, id uuid.UUID) (*entity.Accident, error)
	// ListAccidents returns the user's accidents ordered by detection time, newest first.
	ListAccidents(ctx context.Context, filter entity.AccidentFilter) ([]*entity.Accident, error)
	DeleteAccident(ctx context.Context, userID, id uuid.UUID) error
}
