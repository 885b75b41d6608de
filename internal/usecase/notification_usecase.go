package usecase

import (
	"context"

	"phonestore/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for a user's notification queue.
type NotificationUsecase interface {
	// ListNotifications returns the user's notifications, newest first.
	// With onlyUnread set, read messages are excluded.
	ListNotifications(ctx context.Context, userID uuid.UUID, onlyUnread bool) ([]*entity.UserNotification, error)

	// MarkRead stamps one of the user's notifications as read. Marking a
	// notification that belongs to someone else fails as not found.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}
