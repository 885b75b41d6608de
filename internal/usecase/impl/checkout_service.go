package impl

import (
	"context"
	"fmt"
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

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for checkoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout converts the user's entire cart into a pending order in one
// transaction. The cart lines are read under row locks so two concurrent
// checkouts of the same cart serialize instead of double-ordering.
func (srv *checkoutService) Checkout(ctx context.Context, userID uuid.UUID, input usecase.CheckoutInput) (*entity.Order, error) {
	paymentMethod := entity.PaymentMethod(input.PaymentMethod)
	if !paymentMethod.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidPaymentMethod, "unknown payment method")
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		phoneRepo := repoFactory.PhoneRepo()
		orderRepo := repoFactory.OrderRepo()
		notificationRepo := repoFactory.NotificationRepo()

		// 1. Lock the cart lines for the duration of the transaction.
		items, err := cartRepo.FindByUserForUpdate(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}
		if len(items) == 0 {
			return errors.Wrap(domainerrors.ErrEmptyCart, "cannot check out an empty cart")
		}

		// 2. Verify stock covers every line before changing anything.
		for _, item := range items {
			if item.Phone == nil {
				return errors.Wrap(domainerrors.ErrPhoneNotFound, "cart references a phone that no longer exists")
			}
			if item.Quantity > item.Phone.Stock {
				return errors.Wrap(
					domainerrors.ErrInsufficientStock,
					fmt.Sprintf("not enough stock for %s", item.Phone.Name),
				)
			}
		}

		// 3. Snapshot the cart into an order. Prices are copied so later
		// catalog edits never rewrite this order.
		orderItems := make([]*entity.OrderItem, 0, len(items))
		for _, item := range items {
			orderItems = append(orderItems, &entity.OrderItem{
				PhoneID:  item.PhoneID,
				Quantity: item.Quantity,
				Price:    item.Phone.Price,
			})
		}

		newOrder := &entity.Order{
			UserID:        userID,
			FullName:      input.FullName,
			Phone:         input.Phone,
			Address:       input.Address,
			OrderNote:     input.OrderNote,
			Status:        entity.OrderStatusPending,
			PaymentMethod: paymentMethod,
			Total:         entity.CartTotal(items),
			Items:         orderItems,
		}
		if err := orderRepo.Create(ctx, newOrder); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		// 4. Decrement stock per line. The repository guard rejects any
		// decrement that would go negative.
		for _, item := range items {
			if err := phoneRepo.DecrementStock(ctx, item.PhoneID, item.Quantity); err != nil {
				return errors.Wrap(err, "failed to decrement stock")
			}
		}

		// 5. Empty the cart.
		if err := cartRepo.DeleteByUser(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to empty cart")
		}

		// 6. Queue the success notification inside the same transaction so
		// it exists exactly when the order does.
		notification := &entity.UserNotification{
			UserID:   userID,
			Severity: entity.SeveritySuccess,
			Message:  "Your order has been placed successfully",
		}
		if err := notificationRepo.Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to queue order notification")
		}

		order = newOrder

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Checkout failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute checkout transaction")
	}
	srv.log(ctx).Info("Order placed", slog.Any("userID", userID), slog.Any("orderID", order.ID), slog.String("total", order.Total.StringFixed(2)))

	return order, nil
}

// ListOrders returns the user's own orders, newest first.
func (srv *checkoutService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns one of the user's own orders. An order owned by someone
// else is reported as not found so the response does not leak its existence.
func (srv *checkoutService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	if order.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
	}

	return order, nil
}
