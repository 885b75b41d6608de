package usecase

import (
	"context"

	"phonestore/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListOrdersInput defines the pagination for the admin order listing.
type ListOrdersInput struct {
	Page int
}

// UpdateOrderStatusInput defines the data required to move an order to a
// new status.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// --- Output DTOs ---

// OrderPage is one page of the admin order listing.
type OrderPage struct {
	Orders     []*entity.Order
	Page       int
	PageSize   int
	TotalCount int64
}

// OrderAdminUsecase defines the staff-only order management operations.
// Every operation rejects callers without the elevated flag before
// touching any data.
type OrderAdminUsecase interface {
	// ListAllOrders returns orders across all users, newest first.
	ListAllOrders(ctx context.Context, actor Actor, input ListOrdersInput) (*OrderPage, error)

	// GetOrder returns any order by ID regardless of owner.
	GetOrder(ctx context.Context, actor Actor, orderID uuid.UUID) (*entity.Order, error)

	// UpdateStatus moves an order to a new status, records the change in
	// the audit log and queues a notification for the order's owner, all
	// in one transaction.
	UpdateStatus(ctx context.Context, actor Actor, orderID uuid.UUID, input UpdateOrderStatusInput) (*entity.Order, error)
}
