package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Rows are created by the authentication service; this service owns only the invitation columns.
type UserModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email                  string    `gorm:"type:varchar(255);unique;not null"`
	FirstName              string    `gorm:"type:varchar(100)"`
	LastName               string    `gorm:"type:varchar(100)"`
	EmergencyInviteCode    *string   `gorm:"type:varchar(32);uniqueIndex"`
	EmergencyInviteExpires *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              gorm.DeletedAt `gorm:"index"`

	EmergencyContacts []EmergencyContactModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// EmergencyContactModel mirrors the 'emergency_contacts' join table.
// ContactID is alerted when UserID is in an accident.
type EmergencyContactModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ContactID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (EmergencyContactModel) TableName() string {
	return "emergency_contacts"
}
