// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"phonestore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBrandNotFound is returned when a brand is not found.
var ErrBrandNotFound = errors.New("brand not found")

// BrandRepository defines the interface for brand-related database operations.
type BrandRepository interface {
	// Create persists a new brand.
	Create(ctx context.Context, brand *entity.Brand) error

	// FindByID retrieves a brand by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error)

	// FindAll retrieves every brand, ordered by name.
	FindAll(ctx context.Context) ([]*entity.Brand, error)

	// Update modifies an existing brand.
	Update(ctx context.Context, brand *entity.Brand) error

	// Delete removes a brand. The database cascades the delete to its phones.
	Delete(ctx context.Context, id uuid.UUID) error
}
