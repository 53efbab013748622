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

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// ExpandContacts resolves ids to contacts with the FCM tokens of their active devices.
// Two queries regardless of the number of contacts; results follow the order of ids.
func (repo *contactRepository) ExpandContacts(ctx context.Context, ids []uuid.UUID) ([]*entity.Contact, error) {
	if len(ids) == 0 {
		return []*entity.Contact{}, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Select("id", "email", "first_name", "last_name").
		Where("id IN ?", ids).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find contact users")
	}

	var deviceModels []*model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Select("user_id", "fcm_token").
		Where("user_id IN ? AND is_active = ? AND fcm_token <> ''", ids, true).
		Order("created_at ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find contact devices")
	}

	tokens := make(map[uuid.UUID][]string, len(userModels))
	for _, deviceM := range deviceModels {
		tokens[deviceM.UserID] = append(tokens[deviceM.UserID], deviceM.FCMToken)
	}

	users := make(map[uuid.UUID]*model.UserModel, len(userModels))
	for _, userM := range userModels {
		users[userM.ID] = userM
	}

	contacts := make([]*entity.Contact, 0, len(ids))
	for _, id := range ids {
		userM, ok := users[id]
		if !ok {
			continue
		}

		contacts = append(contacts, &entity.Contact{
			ID:        userM.ID,
			FirstName: userM.FirstName,
			LastName:  userM.LastName,
			Email:     userM.Email,
			FCMTokens: tokens[id],
		})
	}

	return contacts, nil
}

// AddContact makes contactID an emergency contact of userID.
func (repo *contactRepository) AddContact(ctx context.Context, userID, contactID uuid.UUID) error {
	contactM := &model.EmergencyContactModel{
		UserID:    userID,
		ContactID: contactID,
		CreatedAt: time.Now(),
	}

	if err := repo.db.WithContext(ctx).Create(contactM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateContact
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add emergency contact")
	}

	return nil
}

// RemoveContact deletes contactID from userID's emergency contacts.
func (repo *contactRepository) RemoveContact(ctx context.Context, userID, contactID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND contact_id = ?", userID, contactID).
		Delete(&model.EmergencyContactModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove emergency contact")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContactNotFound
	}

	return nil
}
