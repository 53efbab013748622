package postgres

import (
	"context"

	"drivesafe/internal/domain/entity"
	domainerrors "drivesafe/internal/domain/errors"
	"drivesafe/internal/domain/repository"
	"drivesafe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification persists a new in-app notification.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// scopeNotifications applies the owner and read-state filters shared by list and count.
func scopeNotifications(db *gorm.DB, userID uuid.UUID, isRead *bool) *gorm.DB {
	db = db.Model(&model.NotificationModel{}).Where("user_id = ?", userID)
	if isRead != nil {
		db = db.Where("is_read = ?", *isRead)
	}

	return db
}

// ListNotifications returns a page of the user's notifications, newest first.
func (repo *notificationRepository) ListNotifications(ctx context.Context, filter entity.NotificationFilter) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := scopeNotifications(repo.db.WithContext(ctx), filter.UserID, filter.IsRead).
		Order("created_at DESC").
		Offset(filter.Skip).
		Limit(filter.Limit).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountNotifications counts the user's notifications, optionally by read state.
func (repo *notificationRepository) CountNotifications(ctx context.Context, userID uuid.UUID, isRead *bool) (int64, error) {
	var count int64

	if err := scopeNotifications(repo.db.WithContext(ctx), userID, isRead).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count notifications")
	}

	return count, nil
}

// MarkAsRead flags one notification as read. Marking an already read notification succeeds.
func (repo *notificationRepository) MarkAsRead(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification as read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllAsRead flags every unread notification as read and returns how many changed.
func (repo *notificationRepository) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark notifications as read")
	}

	return result.RowsAffected, nil
}

// DeleteNotification removes one notification.
func (repo *notificationRepository) DeleteNotification(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// DeleteAllNotifications removes every notification owned by the user.
func (repo *notificationRepository) DeleteAllNotifications(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete notifications")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	payload := map[string]any(data.Data)
	if payload == nil {
		payload = map[string]any{}
	}

	return &entity.Notification{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Body:      data.Body,
		Type:      entity.NotificationType(data.Type),
		IsRead:    data.IsRead,
		Data:      payload,
		CreatedAt: data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Body:      data.Body,
		Type:      string(data.Type),
		IsRead:    data.IsRead,
		Data:      datatypes.JSONMap(data.Data),
		CreatedAt: data.CreatedAt,
	}
}
