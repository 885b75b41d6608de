package impl

import (
	"context"
	"testing"

	"phonestore/internal/domain/entity"
	domainerrors "phonestore/internal/domain/errors"
	"phonestore/internal/domain/repository"
	mockRepo "phonestore/internal/mocks/repository"
	"phonestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockNotificationRepository,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	service := NewNotificationService(NotificationServiceParams{
		TxManager:        txManager,
		NotificationRepo: notificationRepo,
		Logger:           newTestLogger(),
	})

	return service, txManager, notificationRepo
}

func TestNotificationService_ListNotifications_All(t *testing.T) {
	service, _, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.UserNotification{
		{ID: uuid.New(), UserID: userID, Message: "Your order has been placed successfully"},
	}

	notificationRepo.EXPECT().FindByUser(ctx, userID, false).Return(expected, nil)

	notifications, err := service.ListNotifications(ctx, userID, false)

	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestNotificationService_ListNotifications_OnlyUnread(t *testing.T) {
	service, _, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().FindByUser(ctx, userID, true).Return([]*entity.UserNotification{}, nil)

	notifications, err := service.ListNotifications(ctx, userID, true)

	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestNotificationService_ListNotifications_RepositoryError(t *testing.T) {
	service, _, notificationRepo := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().FindByUser(ctx, userID, false).Return(nil, errors.New("db error"))

	notifications, err := service.ListNotifications(ctx, userID, false)

	assert.Error(t, err)
	assert.Nil(t, notifications)
	assert.Contains(t, err.Error(), "failed to list notifications")
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	service, txManager, _ := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	factory := newTestFactory(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)
	onExecute(txManager, factory)

	txNotificationRepo.EXPECT().FindByID(ctx, notificationID).
		Return(&entity.UserNotification{ID: notificationID, UserID: userID}, nil)
	txNotificationRepo.EXPECT().MarkRead(ctx, notificationID).Return(nil)

	err := service.MarkRead(ctx, userID, notificationID)

	require.NoError(t, err)
}

func TestNotificationService_MarkRead_ForeignNotificationReportedAsNotFound(t *testing.T) {
	service, txManager, _ := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()

	factory := newTestFactory(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)
	onExecute(txManager, factory)

	// The notification belongs to a different user.
	txNotificationRepo.EXPECT().FindByID(ctx, notificationID).
		Return(&entity.UserNotification{ID: notificationID, UserID: uuid.New()}, nil)

	err := service.MarkRead(ctx, uuid.New(), notificationID)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	service, txManager, _ := createTestNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()

	factory := newTestFactory(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)
	onExecute(txManager, factory)

	txNotificationRepo.EXPECT().FindByID(ctx, notificationID).
		Return(nil, repository.ErrNotificationNotFound)

	err := service.MarkRead(ctx, uuid.New(), notificationID)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}
