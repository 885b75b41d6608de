package impl

import (
	"context"
	"testing"

	"phonestore/internal/domain/entity"
	domainerrors "phonestore/internal/domain/errors"
	mockRepo "phonestore/internal/mocks/repository"
	"phonestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCheckoutService(t *testing.T) (
	usecase.CheckoutUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockOrderRepository,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	service := NewCheckoutService(CheckoutServiceParams{
		TxManager: txManager,
		OrderRepo: orderRepo,
		Logger:    newTestLogger(),
	})

	return service, txManager, orderRepo
}

func validCheckoutInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		FullName:      "Jane Buyer",
		Phone:         "0123456789",
		Address:       "1 Market St",
		PaymentMethod: "cod",
	}
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	service, txManager, _ := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	phoneA := &entity.Phone{ID: uuid.New(), Name: "Phone A", Price: decimal.RequireFromString("10.00"), Stock: 5}
	phoneB := &entity.Phone{ID: uuid.New(), Name: "Phone B", Price: decimal.RequireFromString("5.00"), Stock: 2}

	items := []*entity.CartItem{
		{ID: uuid.New(), UserID: userID, PhoneID: phoneA.ID, Quantity: 2, Phone: phoneA},
		{ID: uuid.New(), UserID: userID, PhoneID: phoneB.ID, Quantity: 1, Phone: phoneB},
	}

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txPhoneRepo := mockRepo.NewMockPhoneRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().PhoneRepo().Return(txPhoneRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)
	onExecute(txManager, factory)

	txCartRepo.EXPECT().FindByUserForUpdate(ctx, userID).Return(items, nil)

	txOrderRepo.EXPECT().Create(ctx, mock.MatchedBy(func(order *entity.Order) bool {
		return order.UserID == userID &&
			order.Status == entity.OrderStatusPending &&
			order.PaymentMethod == entity.PaymentMethodCOD &&
			len(order.Items) == 2 &&
			order.Total.Equal(decimal.RequireFromString("25.00"))
	})).Return(nil)

	txPhoneRepo.EXPECT().DecrementStock(ctx, phoneA.ID, uint(2)).Return(nil)
	txPhoneRepo.EXPECT().DecrementStock(ctx, phoneB.ID, uint(1)).Return(nil)
	txCartRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)

	txNotificationRepo.EXPECT().Create(ctx, mock.MatchedBy(func(n *entity.UserNotification) bool {
		return n.UserID == userID && n.Severity == entity.SeveritySuccess
	})).Return(nil)

	order, err := service.Checkout(ctx, userID, validCheckoutInput())

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.True(t, order.Total.Equal(decimal.RequireFromString("25.00")))

	// Price snapshots come from the phones, not the cart.
	require.Len(t, order.Items, 2)
	assert.True(t, order.Items[0].Price.Equal(phoneA.Price))
	assert.True(t, order.Items[1].Price.Equal(phoneB.Price))
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	service, txManager, _ := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txPhoneRepo := mockRepo.NewMockPhoneRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().PhoneRepo().Return(txPhoneRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)
	onExecute(txManager, factory)

	txCartRepo.EXPECT().FindByUserForUpdate(ctx, userID).Return([]*entity.CartItem{}, nil)

	order, err := service.Checkout(ctx, userID, validCheckoutInput())

	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
	assert.Nil(t, order)
}

func TestCheckoutService_Checkout_InsufficientStock(t *testing.T) {
	service, txManager, _ := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	phone := &entity.Phone{ID: uuid.New(), Name: "Scarce Phone", Price: decimal.RequireFromString("10.00"), Stock: 1}

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txPhoneRepo := mockRepo.NewMockPhoneRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().PhoneRepo().Return(txPhoneRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)
	onExecute(txManager, factory)

	// Two units wanted, one unit on hand. No order is created, no stock is
	// decremented, the cart is untouched.
	txCartRepo.EXPECT().FindByUserForUpdate(ctx, userID).Return([]*entity.CartItem{
		{ID: uuid.New(), UserID: userID, PhoneID: phone.ID, Quantity: 2, Phone: phone},
	}, nil)

	order, err := service.Checkout(ctx, userID, validCheckoutInput())

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Nil(t, order)
}

func TestCheckoutService_Checkout_VanishedPhone(t *testing.T) {
	service, txManager, _ := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txPhoneRepo := mockRepo.NewMockPhoneRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().PhoneRepo().Return(txPhoneRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)
	onExecute(txManager, factory)

	// The referenced phone was deleted between add-to-cart and checkout.
	txCartRepo.EXPECT().FindByUserForUpdate(ctx, userID).Return([]*entity.CartItem{
		{ID: uuid.New(), UserID: userID, PhoneID: uuid.New(), Quantity: 1, Phone: nil},
	}, nil)

	order, err := service.Checkout(ctx, userID, validCheckoutInput())

	assert.ErrorIs(t, err, domainerrors.ErrPhoneNotFound)
	assert.Nil(t, order)
}

func TestCheckoutService_Checkout_StockDecrementFailureAbortsTransaction(t *testing.T) {
	service, txManager, _ := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	phone := &entity.Phone{ID: uuid.New(), Name: "Phone", Price: decimal.RequireFromString("10.00"), Stock: 5}

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txPhoneRepo := mockRepo.NewMockPhoneRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().PhoneRepo().Return(txPhoneRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)
	onExecute(txManager, factory)

	txCartRepo.EXPECT().FindByUserForUpdate(ctx, userID).Return([]*entity.CartItem{
		{ID: uuid.New(), UserID: userID, PhoneID: phone.ID, Quantity: 2, Phone: phone},
	}, nil)
	txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	// A concurrent checkout drained the stock after our pre-check. The guard
	// in the repository fails the decrement and the whole transaction aborts.
	txPhoneRepo.EXPECT().DecrementStock(ctx, phone.ID, uint(2)).
		Return(domainerrors.ErrInsufficientStock)

	order, err := service.Checkout(ctx, userID, validCheckoutInput())

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	assert.Nil(t, order)
}

func TestCheckoutService_Checkout_InvalidPaymentMethod(t *testing.T) {
	service, _, _ := createTestCheckoutService(t)

	ctx := context.Background()
	input := validCheckoutInput()
	input.PaymentMethod = "barter"

	order, err := service.Checkout(ctx, uuid.New(), input)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidPaymentMethod)
	assert.Nil(t, order)
}

func TestCheckoutService_Checkout_NotificationFailureAbortsTransaction(t *testing.T) {
	service, txManager, _ := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	phone := &entity.Phone{ID: uuid.New(), Price: decimal.RequireFromString("10.00"), Stock: 5}

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txPhoneRepo := mockRepo.NewMockPhoneRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().PhoneRepo().Return(txPhoneRepo)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	factory.EXPECT().NotificationRepo().Return(txNotificationRepo)
	onExecute(txManager, factory)

	txCartRepo.EXPECT().FindByUserForUpdate(ctx, userID).Return([]*entity.CartItem{
		{ID: uuid.New(), UserID: userID, PhoneID: phone.ID, Quantity: 1, Phone: phone},
	}, nil)
	txOrderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	txPhoneRepo.EXPECT().DecrementStock(ctx, phone.ID, uint(1)).Return(nil)
	txCartRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)
	txNotificationRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("db error"))

	order, err := service.Checkout(ctx, userID, validCheckoutInput())

	assert.Error(t, err)
	assert.Nil(t, order)
	assert.Contains(t, err.Error(), "failed to queue order notification")
}

func TestCheckoutService_ListOrders(t *testing.T) {
	service, _, orderRepo := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Order{{ID: uuid.New(), UserID: userID}}

	orderRepo.EXPECT().FindByUser(ctx, userID).Return(expected, nil)

	orders, err := service.ListOrders(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestCheckoutService_GetOrder_Success(t *testing.T) {
	service, _, orderRepo := createTestCheckoutService(t)

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	expected := &entity.Order{ID: orderID, UserID: userID}

	orderRepo.EXPECT().FindByID(ctx, orderID).Return(expected, nil)

	order, err := service.GetOrder(ctx, userID, orderID)

	require.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestCheckoutService_GetOrder_ForeignOrderReportedAsNotFound(t *testing.T) {
	service, _, orderRepo := createTestCheckoutService(t)

	ctx := context.Background()
	orderID := uuid.New()

	orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New()}, nil)

	order, err := service.GetOrder(ctx, uuid.New(), orderID)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	assert.Nil(t, order)
}
