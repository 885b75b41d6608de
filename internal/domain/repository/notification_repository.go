package repository

import (
	"context"
	"errors"

	"phonestore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for the per-user message
// queue. Entries are append-only; the only mutation is marking them read.
type NotificationRepository interface {
	// Create appends a notification to a user's queue.
	Create(ctx context.Context, notification *entity.UserNotification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserNotification, error)

	// FindByUser retrieves a user's notifications, newest first.
	// With onlyUnread set, read messages are excluded.
	FindByUser(ctx context.Context, userID uuid.UUID, onlyUnread bool) ([]*entity.UserNotification, error)

	// MarkRead stamps a notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error
}
