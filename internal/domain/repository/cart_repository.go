package repository

import (
	"context"
	"errors"

	"phonestore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart line is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the interface for cart-related database operations.
// Lines are always loaded with their phone so totals can be derived.
type CartRepository interface {
	// Create persists a new cart line.
	Create(ctx context.Context, item *entity.CartItem) error

	// FindByID retrieves a cart line by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error)

	// FindByUser retrieves all of a user's cart lines, oldest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// FindByUserForUpdate retrieves all of a user's cart lines holding
	// row-level locks for the duration of the surrounding transaction.
	FindByUserForUpdate(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error)

	// FindByUserAndPhone retrieves the single line for a (user, phone) pair.
	FindByUserAndPhone(ctx context.Context, userID, phoneID uuid.UUID) (*entity.CartItem, error)

	// UpdateQuantity sets a line's quantity.
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity uint) error

	// Delete removes a single cart line.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUser removes every cart line belonging to a user.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
