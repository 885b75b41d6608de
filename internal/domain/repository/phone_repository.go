package repository

import (
	"context"
	"errors"

	"phonestore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPhoneNotFound is returned when a phone is not found.
var ErrPhoneNotFound = errors.New("phone not found")

// PhoneRepository defines the interface for phone-related database operations.
type PhoneRepository interface {
	// Create persists a new phone.
	Create(ctx context.Context, phone *entity.Phone) error

	// FindByID retrieves a phone by its unique ID, preloading its brand.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Phone, error)

	// FindPage retrieves phones newest first with limit/offset pagination.
	FindPage(ctx context.Context, limit, offset int) ([]*entity.Phone, error)

	// FindByBrand retrieves a brand's phones newest first with pagination.
	FindByBrand(ctx context.Context, brandID uuid.UUID, limit, offset int) ([]*entity.Phone, error)

	// SearchByName retrieves phones whose name contains the query, case-insensitively.
	SearchByName(ctx context.Context, query string) ([]*entity.Phone, error)

	// Count returns the total number of phones in the catalog.
	Count(ctx context.Context) (int64, error)

	// Update modifies an existing phone.
	Update(ctx context.Context, phone *entity.Phone) error

	// DecrementStock atomically subtracts qty from a phone's stock.
	// It fails if the phone is missing or the remaining stock would go negative.
	DecrementStock(ctx context.Context, id uuid.UUID, qty uint) error

	// Delete removes a phone from the catalog.
	Delete(ctx context.Context, id uuid.UUID) error
}
