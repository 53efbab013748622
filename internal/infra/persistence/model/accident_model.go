package model

import (
	"time"

	"github.com/google/uuid"
)

// AccidentModel is the GORM-specific struct for the 'accidents' table.
type AccidentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_accidents_user_detected,priority:1"`
	DeviceID     string    `gorm:"type:varchar(255)"`
	DetectedTime time.Time `gorm:"not null;index:idx_accidents_user_detected,priority:2,sort:desc"`
	Location     string    `gorm:"type:text;not null"`
	ContactNum   string    `gorm:"type:varchar(50)"`
	ContactTime  string    `gorm:"type:varchar(64)"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccidentModel) TableName() string {
	return "accidents"
}
