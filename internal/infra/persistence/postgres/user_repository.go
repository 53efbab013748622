// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"drivesafe/internal/domain/entity"
	domainerrors "drivesafe/internal/domain/errors"
	"drivesafe/internal/domain/repository"
	"drivesafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// withContacts preloads the contact relation in the order contacts were added.
func withContacts(db *gorm.DB) *gorm.DB {
	return db.Preload("EmergencyContacts", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at ASC, contact_id ASC")
	})
}

// FindByID retrieves a single user by their unique ID along with their emergency contact ids.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := withContacts(repo.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByInviteCode retrieves the user holding a pending invitation code.
// Expiry is checked by the caller so it can report expired codes distinctly.
func (repo *userRepository) FindByInviteCode(ctx context.Context, code string) (*entity.User, error) {
	var userM model.UserModel

	if err := withContacts(repo.db.WithContext(ctx)).
		Where("emergency_invite_code = ?", code).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by invite code")
	}

	return toUserDomain(&userM), nil
}

// SetInviteCode replaces the user's pending invitation code.
func (repo *userRepository) SetInviteCode(ctx context.Context, userID uuid.UUID, code string, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"emergency_invite_code":    code,
			"emergency_invite_expires": expiresAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(result.Error, "invite code collision")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set invite code")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ClearInviteCode removes the user's pending invitation code.
func (repo *userRepository) ClearInviteCode(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"emergency_invite_code":    nil,
			"emergency_invite_expires": nil,
		}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear invite code")
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:                  data.ID,
		Email:               data.Email,
		FirstName:           data.FirstName,
		LastName:            data.LastName,
		EmergencyContactIDs: make([]uuid.UUID, 0, len(data.EmergencyContacts)),
		InviteExpiresAt:     data.EmergencyInviteExpires,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
	if data.EmergencyInviteCode != nil {
		user.InviteCode = *data.EmergencyInviteCode
	}

	for _, contact := range data.EmergencyContacts {
		user.EmergencyContactIDs = append(user.EmergencyContactIDs, contact.ContactID)
	}

	return user
}
