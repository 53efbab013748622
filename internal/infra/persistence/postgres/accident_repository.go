package postgres

import (
	"context"

	"drivesafe/internal/domain/entity"
	domainerrors "drivesafe/internal/domain/errors"
	"drivesafe/internal/domain/repository"
	"drivesafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accidentRepository implements the repository.AccidentRepository interface.
type accidentRepository struct {
	db *gorm.DB
}

// NewAccidentRepository is the constructor for accidentRepository.
func NewAccidentRepository(db *gorm.DB) repository.AccidentRepository {
	return &accidentRepository{
		db: db,
	}
}

// CreateAccident persists a new accident.
func (repo *accidentRepository) CreateAccident(ctx context.Context, accident *entity.Accident) error {
	accidentM := fromAccidentDomain(accident)

	if err := repo.db.WithContext(ctx).Create(accidentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid accident information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create accident")
	}

	accident.ID = accidentM.ID
	accident.CreatedAt = accidentM.CreatedAt

	return nil
}

// FindAccidentByID retrieves one of the user's accidents.
func (repo *accidentRepository) FindAccidentByID(ctx context.Context, userID, id uuid.UUID) (*entity.Accident, error) {
	var accidentM model.AccidentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&accidentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccidentNotFound
		}

		return nil, errors.Wrap(err, "failed to find accident by ID")
	}

	return toAccidentDomain(&accidentM), nil
}

// ListAccidents returns the user's accidents within the optional range, newest first.
func (repo *accidentRepository) ListAccidents(ctx context.Context, filter entity.AccidentFilter) ([]*entity.Accident, error) {
	var accidentModels []*model.AccidentModel

	query := repo.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.StartDate != nil {
		query = query.Where("detected_time >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("detected_time <= ?", *filter.EndDate)
	}

	if err := query.Order("detected_time DESC").Find(&accidentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accidents")
	}

	accidents := make([]*entity.Accident, 0, len(accidentModels))
	for _, accidentM := range accidentModels {
		accidents = append(accidents, toAccidentDomain(accidentM))
	}

	return accidents, nil
}

// DeleteAccident removes one of the user's accidents.
func (repo *accidentRepository) DeleteAccident(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.AccidentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete accident")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAccidentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAccidentDomain(data *model.AccidentModel) *entity.Accident {
	if data == nil {
		return nil
	}

	return &entity.Accident{
		ID:           data.ID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		DetectedTime: data.DetectedTime,
		Location:     data.Location,
		ContactNum:   data.ContactNum,
		ContactTime:  data.ContactTime,
		CreatedAt:    data.CreatedAt,
	}
}

func fromAccidentDomain(data *entity.Accident) *model.AccidentModel {
	if data == nil {
		return nil
	}

	return &model.AccidentModel{
		ID:           data.ID,
		UserID:       data.UserID,
		DeviceID:     data.DeviceID,
		DetectedTime: data.DetectedTime,
		Location:     data.Location,
		ContactNum:   data.ContactNum,
		ContactTime:  data.ContactTime,
		CreatedAt:    data.CreatedAt,
	}
}
