// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"phonestore/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListPhonesInput defines the optional filters for the catalog listing.
type ListPhonesInput struct {
	BrandID *uuid.UUID
	Page    int
}

// SaveBrandInput defines the data required to create or update a brand.
type SaveBrandInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
}

// SavePhoneInput defines the data required to create or update a phone.
type SavePhoneInput struct {
	BrandID     uuid.UUID `json:"brand_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=200"`
	Description string    `json:"description"`
	Price       string    `json:"price" validate:"required"`
	Stock       uint      `json:"stock"`
	Available   bool      `json:"available"`
	ImageURL    string    `json:"image_url" validate:"omitempty,url"`
}

// --- Output DTOs ---

// PhonePage is one page of the catalog listing.
type PhonePage struct {
	Phones     []*entity.Phone
	Page       int
	PageSize   int
	TotalCount int64
}

// CatalogUsecase defines the interface for browsing and maintaining the
// phone catalog. The read operations back the public storefront; the
// write operations are reserved for staff.
type CatalogUsecase interface {
	ListBrands(ctx context.Context) ([]*entity.Brand, error)
	GetBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error)
	ListPhones(ctx context.Context, input ListPhonesInput) (*PhonePage, error)
	GetPhone(ctx context.Context, id uuid.UUID) (*entity.Phone, error)
	SearchPhones(ctx context.Context, query string) ([]*entity.Phone, error)

	CreateBrand(ctx context.Context, actor Actor, input SaveBrandInput) (*entity.Brand, error)
	UpdateBrand(ctx context.Context, actor Actor, id uuid.UUID, input SaveBrandInput) error
	DeleteBrand(ctx context.Context, actor Actor, id uuid.UUID) error
	CreatePhone(ctx context.Context, actor Actor, input SavePhoneInput) (*entity.Phone, error)
	UpdatePhone(ctx context.Context, actor Actor, id uuid.UUID, input SavePhoneInput) error
	DeletePhone(ctx context.Context, actor Actor, id uuid.UUID) error
}
