// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"phonestore/config"
	deliverycontext "phonestore/internal/delivery/context"
	"phonestore/internal/domain/entity"
	domainerrors "phonestore/internal/domain/errors"
	"phonestore/internal/domain/repository"
	"phonestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	brandRepo repository.BrandRepository
	phoneRepo repository.PhoneRepository
	pageSize  int
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	BrandRepo repository.BrandRepository
	PhoneRepo repository.PhoneRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		brandRepo: params.BrandRepo,
		phoneRepo: params.PhoneRepo,
		pageSize:  params.Config.PageSize(),
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBrands returns every brand, ordered by name.
func (srv *catalogService) ListBrands(ctx context.Context) ([]*entity.Brand, error) {
	brands, err := srv.brandRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// GetBrand returns a single brand by ID.
func (srv *catalogService) GetBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	brand, err := srv.brandRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBrandNotFound, "brand not found")
		}

		return nil, errors.Wrap(err, "failed to get brand")
	}

	return brand, nil
}

// ListPhones returns one page of the catalog, optionally filtered by brand.
// Page numbers below 1 are clamped to the first page.
func (srv *catalogService) ListPhones(ctx context.Context, input usecase.ListPhonesInput) (*usecase.PhonePage, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * srv.pageSize

	var phones []*entity.Phone
	var err error
	if input.BrandID != nil {
		phones, err = srv.phoneRepo.FindByBrand(ctx, *input.BrandID, srv.pageSize, offset)
	} else {
		phones, err = srv.phoneRepo.FindPage(ctx, srv.pageSize, offset)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list phones")
	}

	total, err := srv.phoneRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count phones")
	}

	return &usecase.PhonePage{
		Phones:     phones,
		Page:       page,
		PageSize:   srv.pageSize,
		TotalCount: total,
	}, nil
}

// GetPhone returns a single phone with its brand.
func (srv *catalogService) GetPhone(ctx context.Context, id uuid.UUID) (*entity.Phone, error) {
	phone, err := srv.phoneRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPhoneNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPhoneNotFound, "phone not found")
		}

		return nil, errors.Wrap(err, "failed to get phone")
	}

	return phone, nil
}

// SearchPhones returns phones whose name contains the query. A blank query
// matches nothing rather than the whole catalog.
func (srv *catalogService) SearchPhones(ctx context.Context, query string) ([]*entity.Phone, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*entity.Phone{}, nil
	}

	phones, err := srv.phoneRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search phones")
	}

	return phones, nil
}

// CreateBrand adds a brand to the catalog. Staff only.
func (srv *catalogService) CreateBrand(ctx context.Context, actor usecase.Actor, input usecase.SaveBrandInput) (*entity.Brand, error) {
	if !actor.Elevated {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "brand management requires staff access")
	}

	brand := &entity.Brand{
		Name:        input.Name,
		Description: input.Description,
		LogoURL:     input.LogoURL,
	}

	if err := srv.brandRepo.Create(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to create brand")
	}
	srv.log(ctx).Info("Brand created", slog.Any("brandID", brand.ID), slog.Any("actorID", actor.ID))

	return brand, nil
}

// UpdateBrand modifies an existing brand. Staff only.
func (srv *catalogService) UpdateBrand(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.SaveBrandInput) error {
	if !actor.Elevated {
		return errors.Wrap(domainerrors.ErrForbidden, "brand management requires staff access")
	}

	brand := &entity.Brand{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		LogoURL:     input.LogoURL,
	}

	if err := srv.brandRepo.Update(ctx, brand); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return errors.Wrap(domainerrors.ErrBrandNotFound, "brand not found")
		}

		return errors.Wrap(err, "failed to update brand")
	}
	srv.log(ctx).Info("Brand updated", slog.Any("brandID", id), slog.Any("actorID", actor.ID))

	return nil
}

// DeleteBrand removes a brand. The database cascades the delete to its
// phones. Staff only.
func (srv *catalogService) DeleteBrand(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if !actor.Elevated {
		return errors.Wrap(domainerrors.ErrForbidden, "brand management requires staff access")
	}

	if err := srv.brandRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrBrandNotFound) {
			return errors.Wrap(domainerrors.ErrBrandNotFound, "brand not found")
		}

		return errors.Wrap(err, "failed to delete brand")
	}
	srv.log(ctx).Info("Brand deleted", slog.Any("brandID", id), slog.Any("actorID", actor.ID))

	return nil
}

// CreatePhone adds a phone to the catalog. Staff only.
func (srv *catalogService) CreatePhone(ctx context.Context, actor usecase.Actor, input usecase.SavePhoneInput) (*entity.Phone, error) {
	if !actor.Elevated {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "phone management requires staff access")
	}

	phone, err := buildPhoneFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := srv.phoneRepo.Create(ctx, phone); err != nil {
		return nil, errors.Wrap(err, "failed to create phone")
	}
	srv.log(ctx).Info("Phone created", slog.Any("phoneID", phone.ID), slog.Any("actorID", actor.ID))

	return phone, nil
}

// UpdatePhone modifies an existing phone. Changing the price never touches
// the snapshots held by past order items. Staff only.
func (srv *catalogService) UpdatePhone(ctx context.Context, actor usecase.Actor, id uuid.UUID, input usecase.SavePhoneInput) error {
	if !actor.Elevated {
		return errors.Wrap(domainerrors.ErrForbidden, "phone management requires staff access")
	}

	phone, err := buildPhoneFromInput(input)
	if err != nil {
		return err
	}
	phone.ID = id

	if err := srv.phoneRepo.Update(ctx, phone); err != nil {
		if errors.Is(err, repository.ErrPhoneNotFound) {
			return errors.Wrap(domainerrors.ErrPhoneNotFound, "phone not found")
		}

		return errors.Wrap(err, "failed to update phone")
	}
	srv.log(ctx).Info("Phone updated", slog.Any("phoneID", id), slog.Any("actorID", actor.ID))

	return nil
}

// DeletePhone removes a phone from the catalog. Staff only.
func (srv *catalogService) DeletePhone(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if !actor.Elevated {
		return errors.Wrap(domainerrors.ErrForbidden, "phone management requires staff access")
	}

	if err := srv.phoneRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPhoneNotFound) {
			return errors.Wrap(domainerrors.ErrPhoneNotFound, "phone not found")
		}

		return errors.Wrap(err, "failed to delete phone")
	}
	srv.log(ctx).Info("Phone deleted", slog.Any("phoneID", id), slog.Any("actorID", actor.ID))

	return nil
}

func buildPhoneFromInput(input usecase.SavePhoneInput) (*entity.Phone, error) {
	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price is not a valid decimal number")
	}
	if price.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must not be negative")
	}

	return &entity.Phone{
		BrandID:     input.BrandID,
		Name:        input.Name,
		Description: input.Description,
		Price:       price,
		Stock:       input.Stock,
		Available:   input.Available,
		ImageURL:    input.ImageURL,
	}, nil
}
