package repository

import (
	"context"

	"phonestore/internal/domain/entity"
)

// AuditLogRepository defines the interface for the append-only audit log.
type AuditLogRepository interface {
	// Create appends an audit log entry. Entries are never updated or deleted.
	Create(ctx context.Context, entry *entity.AuditLog) error
}
