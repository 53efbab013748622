// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"drivesafe/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the user lookups this service needs.
// Accounts themselves are owned by the authentication service.
type UserRepository interface {
	// FindByID retrieves a user with their emergency contact ids.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByInviteCode retrieves the user holding the given invitation code.
	FindByInviteCode(ctx context.Context, code string) (*entity.User, error)

	// SetInviteCode replaces the user's pending invitation code.
	SetInviteCode(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error

	// ClearInviteCode removes the user's pending invitation code.
	ClearInviteCode(ctx context.Context, userID uuid.UUID) error
}
