package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog is one append-only record of an administrative action.
// Entries are written on order status transitions and never updated.
type AuditLog struct {
	ID         uuid.UUID // The unique identifier for the log entry.
	ActorID    uuid.UUID // The user who performed the action.
	EntityType string    // Kind of the target entity, e.g. "order".
	EntityID   uuid.UUID // Identifier of the target entity.
	Action     string    // Short action kind, e.g. "status_change".
	Message    string    // Free-text description of what changed.
	CreatedAt  time.Time // Timestamp of when the action happened.
}
