package repository

import (
	"context"
	"errors"

	"phonestore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// Create persists a new order together with its items in one write.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID, preloading its items
	// and their phones.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByUser retrieves a user's orders, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindPage retrieves orders across all users, newest first, with
	// limit/offset pagination. Used by the admin listing.
	FindPage(ctx context.Context, limit, offset int) ([]*entity.Order, error)

	// Count returns the total number of orders.
	Count(ctx context.Context) (int64, error)

	// UpdateStatus sets an order's status. Last write wins; there is no
	// optimistic concurrency check.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
