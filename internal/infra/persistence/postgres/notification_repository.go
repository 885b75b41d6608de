package postgres

import (
	"context"
	"time"

	"phonestore/internal/domain/entity"
	domainerrors "phonestore/internal/domain/errors"
	"phonestore/internal/domain/repository"
	"phonestore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
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

// Create appends a notification to a user's queue.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.UserNotification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserNotification, error) {
	var notificationM model.UserNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindByUser retrieves a user's notifications, newest first.
func (repo *notificationRepository) FindByUser(ctx context.Context, userID uuid.UUID, onlyUnread bool) ([]*entity.UserNotification, error) {
	var notificationModels []*model.UserNotificationModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if onlyUnread {
		query = query.Where("read_at IS NULL")
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	notifications := make([]*entity.UserNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkRead stamps a notification as read. Marking twice keeps the first timestamp.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserNotificationModel{}).
		Where("id = ? AND read_at IS NULL", id).
		Update("read_at", time.Now())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification as read")
	}

	if result.RowsAffected == 0 {
		// Distinguish an already read notification from a missing one.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.UserNotificationModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check notification existence")
		}
		if count == 0 {
			return repository.ErrNotificationNotFound
		}
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM UserNotificationModel to a domain UserNotification entity.
func toNotificationDomain(data *model.UserNotificationModel) *entity.UserNotification {
	if data == nil {
		return nil
	}

	return &entity.UserNotification{
		ID:        data.ID,
		UserID:    data.UserID,
		Severity:  entity.Severity(data.Severity),
		Message:   data.Message,
		ReadAt:    data.ReadAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain UserNotification entity to a GORM UserNotificationModel.
func fromNotificationDomain(data *entity.UserNotification) *model.UserNotificationModel {
	if data == nil {
		return nil
	}

	return &model.UserNotificationModel{
		ID:       data.ID,
		UserID:   data.UserID,
		Severity: string(data.Severity),
		Message:  data.Message,
		ReadAt:   data.ReadAt,
	}
}
