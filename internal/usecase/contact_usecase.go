package usecase

import (
	"context"
	"time"

	"drivesafe/internal/domain/entity"

	"github.com/google/uuid"
)

// InviteCode is an emergency contact invitation ready to be shared
type InviteCode struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
	QRCodePNG []byte    `json:"qrCode"` // base64 in JSON
}

// EmergencyContactUsecase defines the interface for managing emergency contacts
type EmergencyContactUsecase interface {
	// GenerateInviteCode issues a fresh invitation code, replacing any pending one
	GenerateInviteCode(ctx context.Context, userID uuid.UUID) (*InviteCode, error)

	// AcceptInvitation adds userID as an emergency contact of the code's owner and returns that owner
	AcceptInvitation(ctx context.Context, userID uuid.UUID, codeOrLink string) (*entity.Contact, error)

	// ListContacts returns the user's emergency contacts
	ListContacts(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error)

	// RemoveContact removes contactID from the user's emergency contacts
	RemoveContact(ctx context.Context, userID, contactID uuid.UUID) error
}
