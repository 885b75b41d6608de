package postgres

import (
	"context"

	"phonestore/internal/domain/entity"
	domainerrors "phonestore/internal/domain/errors"
	"phonestore/internal/domain/repository"
	"phonestore/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// auditLogRepository implements the repository.AuditLogRepository interface.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		db: db,
	}
}

// Create appends an audit log entry.
func (repo *auditLogRepository) Create(ctx context.Context, entry *entity.AuditLog) error {
	entryM := fromAuditLogDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create audit log entry")
	}

	// Update the entity with generated values
	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// fromAuditLogDomain converts a domain AuditLog entity to a GORM AuditLogModel.
func fromAuditLogDomain(data *entity.AuditLog) *model.AuditLogModel {
	if data == nil {
		return nil
	}

	return &model.AuditLogModel{
		ID:         data.ID,
		ActorID:    data.ActorID,
		EntityType: data.EntityType,
		EntityID:   data.EntityID,
		Action:     data.Action,
		Message:    data.Message,
		CreatedAt:  data.CreatedAt,
	}
}
