package impl

import (
	"context"
	"fmt"
	"log/slog"

	"phonestore/config"
	deliverycontext "phonestore/internal/delivery/context"
	"phonestore/internal/domain/entity"
	domainerrors "phonestore/internal/domain/errors"
	"phonestore/internal/domain/repository"
	"phonestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderAdminService implements the OrderAdminUsecase interface.
type orderAdminService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	pageSize  int
	logger    *slog.Logger
}

// OrderAdminServiceParams holds dependencies for orderAdminService, injected by Fx.
type OrderAdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewOrderAdminService is the constructor for orderAdminService.
func NewOrderAdminService(params OrderAdminServiceParams) usecase.OrderAdminUsecase {
	return &orderAdminService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		pageSize:  params.Config.PageSize(),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderAdminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireStaff rejects callers without the elevated flag before any data is touched.
func requireStaff(actor usecase.Actor) error {
	if !actor.Elevated {
		return errors.Wrap(domainerrors.ErrForbidden, "order management requires staff access")
	}

	return nil
}

// ListAllOrders returns one page of orders across all users, newest first.
func (srv *orderAdminService) ListAllOrders(ctx context.Context, actor usecase.Actor, input usecase.ListOrdersInput) (*usecase.OrderPage, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * srv.pageSize

	orders, err := srv.orderRepo.FindPage(ctx, srv.pageSize, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	total, err := srv.orderRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	return &usecase.OrderPage{
		Orders:     orders,
		Page:       page,
		PageSize:   srv.pageSize,
		TotalCount: total,
	}, nil
}

// GetOrder returns any order by ID regardless of owner.
func (srv *orderAdminService) GetOrder(ctx context.Context, actor usecase.Actor, orderID uuid.UUID) (*entity.Order, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// UpdateStatus moves an order to a new status. The status write, the audit
// entry and the owner notification commit together or not at all.
func (srv *orderAdminService) UpdateStatus(ctx context.Context, actor usecase.Actor, orderID uuid.UUID, input usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	newStatus := entity.OrderStatus(input.Status)
	if !newStatus.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidOrderStatus, "unknown order status")
	}

	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		auditRepo := repoFactory.AuditLogRepo()
		notificationRepo := repoFactory.NotificationRepo()

		found, err := orderRepo.FindByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
			}

			return errors.Wrap(err, "failed to find order")
		}
		previousStatus := found.Status

		if err := orderRepo.UpdateStatus(ctx, orderID, newStatus); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		entry := &entity.AuditLog{
			ActorID:    actor.ID,
			EntityType: "order",
			EntityID:   orderID,
			Action:     "status_change",
			Message:    fmt.Sprintf("status changed from %s to %s", previousStatus, newStatus),
		}
		if err := auditRepo.Create(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to record audit entry")
		}

		notification := &entity.UserNotification{
			UserID:   found.UserID,
			Severity: severityForStatus(newStatus),
			Message:  fmt.Sprintf("Order #%s is %s", shortOrderRef(orderID), newStatus.StatusMessage()),
		}
		if err := notificationRepo.Create(ctx, notification); err != nil {
			return errors.Wrap(err, "failed to queue status notification")
		}

		found.Status = newStatus
		order = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update order status", slog.Any("orderID", orderID), slog.Any("actorID", actor.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute status update transaction")
	}
	srv.log(ctx).Info("Order status updated", slog.Any("orderID", orderID), slog.Any("actorID", actor.ID), slog.String("status", string(newStatus)))

	return order, nil
}

// severityForStatus picks the notification severity for a status change.
// Cancellations warn the owner; everything else is informational.
func severityForStatus(status entity.OrderStatus) entity.Severity {
	switch status {
	case entity.OrderStatusCancelled:
		return entity.SeverityWarning
	case entity.OrderStatusCompleted:
		return entity.SeveritySuccess
	default:
		return entity.SeverityInfo
	}
}

// shortOrderRef renders the order reference shown to the owner in
// notification messages.
func shortOrderRef(orderID uuid.UUID) string {
	return orderID.String()[:8]
}
