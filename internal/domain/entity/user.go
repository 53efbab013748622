// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultContactName is shown when a user has no name on record.
const DefaultContactName = "Your contact"

// User is the account that owns devices, accidents and an emergency contact list.
// Accounts are created by the authentication service; this service only reads them
// and maintains the emergency contact relation.
type User struct {
	ID                  uuid.UUID   // The Global Unique Identifier (GUID) for the user.
	Email               string      // The user's primary contact email.
	FirstName           string      // Given name, may be empty.
	LastName            string      // Family name, may be empty.
	EmergencyContactIDs []uuid.UUID // Users to alert when this user is in an accident, in the order they were added.
	InviteCode          string      // Pending emergency contact invitation code, empty when none.
	InviteExpiresAt     *time.Time  // Expiry of InviteCode.
	CreatedAt           time.Time   // Timestamp of when this user account was created.
	UpdatedAt           time.Time   // Timestamp of the last modification to this user's data.
}

// DisplayName joins the name parts, falling back to DefaultContactName.
func (u *User) DisplayName() string {
	return displayName(u.FirstName, u.LastName)
}

// Contact is an emergency contact expanded with the push tokens of their active devices.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	FCMTokens []string  `json:"-"` // In device registration order, duplicates kept.
}

// DisplayName joins the name parts, falling back to DefaultContactName.
func (c *Contact) DisplayName() string {
	return displayName(c.FirstName, c.LastName)
}

func displayName(first, last string) string {
	name := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if name == "" {
		return DefaultContactName
	}

	return name
}
