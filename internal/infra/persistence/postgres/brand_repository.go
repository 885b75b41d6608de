package postgres

import (
	"context"

	"phonestore/internal/domain/entity"
	domainerrors "phonestore/internal/domain/errors"
	"phonestore/internal/domain/repository"
	"phonestore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// brandRepository implements the repository.BrandRepository interface.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{
		db: db,
	}
}

// Create persists a new brand.
func (repo *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	if err := repo.db.WithContext(ctx).Create(brandM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("brand name already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required brand information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create brand")
	}

	// Update the entity with generated values
	brand.ID = brandM.ID

	return nil
}

// FindByID retrieves a brand by its unique ID.
func (repo *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	var brandM model.BrandModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&brandM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by ID")
	}

	return toBrandDomain(&brandM), nil
}

// FindAll retrieves every brand, ordered by name.
func (repo *brandRepository) FindAll(ctx context.Context) ([]*entity.Brand, error) {
	var brandModels []*model.BrandModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find brands")
	}

	brands := make([]*entity.Brand, 0, len(brandModels))
	for _, brandM := range brandModels {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands, nil
}

// Update modifies an existing brand.
func (repo *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BrandModel{}).
		Where("id = ?", brand.ID).
		Updates(map[string]interface{}{
			"name":        brand.Name,
			"description": brand.Description,
			"logo_url":    brand.LogoURL,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrConflict.WrapMessage("brand name already exists")
		}

		return errors.Wrap(result.Error, "failed to update brand")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	return nil
}

// Delete removes a brand. The database cascades the delete to its phones.
func (repo *brandRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BrandModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete brand")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBrandDomain converts a GORM BrandModel to a domain Brand entity.
func toBrandDomain(data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	return &entity.Brand{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		LogoURL:     data.LogoURL,
	}
}

// fromBrandDomain converts a domain Brand entity to a GORM BrandModel.
func fromBrandDomain(data *entity.Brand) *model.BrandModel {
	if data == nil {
		return nil
	}

	return &model.BrandModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		LogoURL:     data.LogoURL,
	}
}
