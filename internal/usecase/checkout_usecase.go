package usecase

import (
	"context"

	"phonestore/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CheckoutInput defines the delivery details collected at checkout.
type CheckoutInput struct {
	FullName      string `json:"full_name" validate:"required,max=100"`
	Phone         string `json:"phone" validate:"required,min=8,max=15"`
	Address       string `json:"address" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
	OrderNote     string `json:"order_note"`
}

// CheckoutUsecase defines the interface for converting a cart into an order.
type CheckoutUsecase interface {
	// Checkout converts the user's entire cart into a pending order in a
	// single transaction: it snapshots prices and quantities into order
	// items, decrements stock, empties the cart and queues a success
	// notification. If any step fails nothing is changed.
	Checkout(ctx context.Context, userID uuid.UUID, input CheckoutInput) (*entity.Order, error)

	// ListOrders returns the user's own orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder returns one of the user's own orders by ID.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
}
