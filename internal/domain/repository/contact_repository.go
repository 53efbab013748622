package repository

import (
	"context"
	"errors"

	"drivesafe/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrContactNotFound is returned when the contact relation does not exist.
	ErrContactNotFound = errors.New("emergency contact not found")
	// ErrDuplicateContact is returned when the contact relation already exists.
	ErrDuplicateContact = errors.New("emergency contact already exists")
)

// ContactRepository manages the emergency contact relation between users.
type ContactRepository interface {
	// ExpandContacts resolves contact ids to contacts carrying their active push tokens.
	// Results follow the order of ids; ids with no matching user are skipped.
	ExpandContacts(ctx context.Context, ids []uuid.UUID) ([]*entity.Contact, error)

	// AddContact makes contactID an emergency contact of userID.
	AddContact(ctx context.Context, userID, contactID uuid.UUID) error

	// RemoveContact deletes contactID from userID's emergency contacts.
	RemoveContact(ctx context.Context, userID, contactID uuid.UUID) error
}
