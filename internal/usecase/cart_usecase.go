package usecase

import (
	"context"

	"phonestore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// AddToCartInput defines the data required to put a phone in the cart.
// An omitted quantity adds a single unit.
type AddToCartInput struct {
	PhoneID  uuid.UUID `json:"phone_id" validate:"required"`
	Quantity uint      `json:"quantity" validate:"omitempty,min=1"`
}

// UpdateCartItemInput defines the data required to change a line's quantity.
type UpdateCartItemInput struct {
	Quantity uint `json:"quantity" validate:"required,min=1"`
}

// --- Output DTOs ---

// CartView is a user's cart with its derived total.
type CartView struct {
	Items []*entity.CartItem
	Total decimal.Decimal
}

// CartUsecase defines the interface for cart-related business operations.
// Every operation is scoped to the calling user; a user can never see or
// touch another user's cart lines.
type CartUsecase interface {
	// GetCart returns the user's cart lines with the derived total.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)

	// AddItem puts a phone in the cart. Adding a phone that is already
	// in the cart increments the existing line instead of creating a
	// duplicate. An omitted quantity adds one unit.
	AddItem(ctx context.Context, userID uuid.UUID, input AddToCartInput) (*entity.CartItem, error)

	// UpdateItemQuantity sets a line's quantity.
	UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, input UpdateCartItemInput) error

	// RemoveItem deletes a single line from the cart.
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error

	// ClearCart deletes every line from the cart.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
