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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestOrderAdminService(t *testing.T) (
	usecase.OrderAdminUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockOrderRepository,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewOrderAdminService(OrderAdminServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Config:    newTestConfig(),
		Logger:    newTestLogger(),
	})

	return service, txManager, orderRepo
}

func staffActor() usecase.Actor {
	return usecase.Actor{ID: uuid.New(), Elevated: true}
}

func customerActor() usecase.Actor {
	return usecase.Actor{ID: uuid.New(), Elevated: false}
}

func TestOrderAdminService_ListAllOrders_Success(t *testing.T) {
	service, _, orderRepo := createTestOrderAdminService(t)

	ctx := context.Background()
	expected := []*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}

	orderRepo.EXPECT().FindPage(ctx, 12, 0).Return(expected, nil)
	orderRepo.EXPECT().Count(ctx).Return(int64(2), nil)

	page, err := service.ListAllOrders(ctx, staffActor(), usecase.ListOrdersInput{Page: 1})

	require.NoError(t, err)
	assert.Equal(t, expected, page.Orders)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, int64(2), page.TotalCount)
}

func TestOrderAdminService_ListAllOrders_PageClampedToFirst(t *testing.T) {
	service, _, orderRepo := createTestOrderAdminService(t)

	ctx := context.Background()

	orderRepo.EXPECT().FindPage(ctx, 12, 0).Return([]*entity.Order{}, nil)
	orderRepo.EXPECT().Count(ctx).Return(int64(0), nil)

	page, err := service.ListAllOrders(ctx, staffActor(), usecase.ListOrdersInput{Page: -3})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
}

func TestOrderAdminService_ListAllOrders_NonStaffForbidden(t *testing.T) {
	service, _, _ := createTestOrderAdminService(t)

	ctx := context.Background()

	// No repository expectations: the gate fires before any data access.
	page, err := service.ListAllOrders(ctx, customerActor(), usecase.ListOrdersInput{Page: 1})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, page)
}

func TestOrderAdminService_GetOrder_Success(t *testing.T) {
	service, _, orderRepo := createTestOrderAdminService(t)

	ctx := context.Background()
	orderID := uuid.New()
	expected := &entity.Order{ID: orderID, UserID: uuid.New()}

	orderRepo.EXPECT().FindByID(ctx, orderID).Return(expected, nil)

	order, err := service.GetOrder(ctx, staffActor(), orderID)

	require.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestOrderAdminService_GetOrder_NonStaffForbidden(t *testing.T) {
	service, _, _ := createTestOrderAdminService(t)

	ctx := context.Background()

	order, err := service.GetOrder(ctx, customerActor(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, order)
}

func TestOrderAdminService_UpdateStatus_Success(t *testing.T) {
	service, txManager, _ := createTestOrderAdminService(t)

	ctx := context.Background()
	actor := staffActor()
	orderID := uuid.New()
	ownerID := uuid.New()

	factory := newTestFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().AuditLogRepo().Return(txAuditRepo)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)
	onExecute(txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: ownerID, Status: entity.OrderStatusPending}, nil)
	txOrderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusShipped).Return(nil)

	txAuditRepo.EXPECT().Create(ctx, mock.MatchedBy(func(entry *entity.AuditLog) bool {
		return entry.ActorID == actor.ID &&
			entry.EntityType == "order" &&
			entry.EntityID == orderID &&
			entry.Action == "status_change" &&
			entry.Message == "status changed from pending to shipped"
	})).Return(nil)

	txNotificationRepo.EXPECT().Create(ctx, mock.MatchedBy(func(n *entity.UserNotification) bool {
		return n.UserID == ownerID &&
			n.Severity == entity.SeverityInfo &&
			n.Message == "Order #"+orderID.String()[:8]+" is being shipped"
	})).Return(nil)

	order, err := service.UpdateStatus(ctx, actor, orderID, usecase.UpdateOrderStatusInput{Status: "shipped"})

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
}

func TestOrderAdminService_UpdateStatus_CancellationWarnsOwner(t *testing.T) {
	service, txManager, _ := createTestOrderAdminService(t)

	ctx := context.Background()
	actor := staffActor()
	orderID := uuid.New()
	ownerID := uuid.New()

	factory := newTestFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().AuditLogRepo().Return(txAuditRepo)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)
	onExecute(txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: ownerID, Status: entity.OrderStatusProcessing}, nil)
	txOrderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusCancelled).Return(nil)
	txAuditRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	txNotificationRepo.EXPECT().Create(ctx, mock.MatchedBy(func(n *entity.UserNotification) bool {
		return n.Severity == entity.SeverityWarning
	})).Return(nil)

	_, err := service.UpdateStatus(ctx, actor, orderID, usecase.UpdateOrderStatusInput{Status: "cancelled"})

	require.NoError(t, err)
}

func TestOrderAdminService_UpdateStatus_InvalidStatus(t *testing.T) {
	service, _, _ := createTestOrderAdminService(t)

	ctx := context.Background()

	order, err := service.UpdateStatus(ctx, staffActor(), uuid.New(), usecase.UpdateOrderStatusInput{Status: "teleported"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
	assert.Nil(t, order)
}

func TestOrderAdminService_UpdateStatus_NonStaffForbidden(t *testing.T) {
	service, _, _ := createTestOrderAdminService(t)

	ctx := context.Background()

	order, err := service.UpdateStatus(ctx, customerActor(), uuid.New(), usecase.UpdateOrderStatusInput{Status: "shipped"})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, order)
}

func TestOrderAdminService_UpdateStatus_OrderNotFound(t *testing.T) {
	service, txManager, _ := createTestOrderAdminService(t)

	ctx := context.Background()
	orderID := uuid.New()

	factory := newTestFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().AuditLogRepo().Return(txAuditRepo)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)
	onExecute(txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	order, err := service.UpdateStatus(ctx, staffActor(), orderID, usecase.UpdateOrderStatusInput{Status: "shipped"})

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	assert.Nil(t, order)
}

func TestOrderAdminService_UpdateStatus_AuditFailureAbortsTransaction(t *testing.T) {
	service, txManager, _ := createTestOrderAdminService(t)

	ctx := context.Background()
	orderID := uuid.New()

	factory := newTestFactory(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txAuditRepo := mockRepo.NewMockAuditLogRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().AuditLogRepo().Return(txAuditRepo)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)
	onExecute(txManager, factory)

	txOrderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusPending}, nil)
	txOrderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusCompleted).Return(nil)
	txAuditRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("db error"))

	order, err := service.UpdateStatus(ctx, staffActor(), orderID, usecase.UpdateOrderStatusInput{Status: "completed"})

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "failed to record audit entry")
}
