package impl

import (
	"context"
	"log/slog"

	deliverycontext "phonestore/internal/delivery/context"
	"phonestore/internal/domain/entity"
	domainerrors "phonestore/internal/domain/errors"
	"phonestore/internal/domain/repository"
	"phonestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	txManager        repository.TransactionManager
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		txManager:        params.TxManager,
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListNotifications returns the user's notifications, newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, onlyUnread bool) ([]*entity.UserNotification, error) {
	notifications, err := srv.notificationRepo.FindByUser(ctx, userID, onlyUnread)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead stamps one of the user's notifications as read. A notification
// owned by someone else is reported as not found, never as forbidden.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		notificationRepo := repoFactory.NotificationRepo()

		notification, err := notificationRepo.FindByID(ctx, notificationID)
		if err != nil {
			if errors.Is(err, repository.ErrNotificationNotFound) {
				return errors.Wrap(domainerrors.ErrNotificationNotFound, "notification not found")
			}

			return errors.Wrap(err, "failed to find notification")
		}

		if notification.UserID != userID {
			return errors.Wrap(domainerrors.ErrNotificationNotFound, "notification not found")
		}

		if err := notificationRepo.MarkRead(ctx, notificationID); err != nil {
			return errors.Wrap(err, "failed to mark notification as read")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to mark notification as read", slog.Any("userID", userID), slog.Any("notificationID", notificationID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute mark read transaction")
	}

	return nil
}
