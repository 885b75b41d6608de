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

// phoneRepository implements the repository.PhoneRepository interface.
type phoneRepository struct {
	db *gorm.DB
}

// NewPhoneRepository is the constructor for phoneRepository.
func NewPhoneRepository(db *gorm.DB) repository.PhoneRepository {
	return &phoneRepository{
		db: db,
	}
}

// Create persists a new phone.
func (repo *phoneRepository) Create(ctx context.Context, phone *entity.Phone) error {
	phoneM := fromPhoneDomain(phone)

	if err := repo.db.WithContext(ctx).Create(phoneM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBrandNotFound.WrapMessage("invalid brand reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required phone information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create phone")
	}

	// Update the entity with generated values
	phone.ID = phoneM.ID
	phone.CreatedAt = phoneM.CreatedAt

	return nil
}

// FindByID retrieves a phone by its unique ID, preloading its brand.
func (repo *phoneRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Phone, error) {
	var phoneM model.PhoneModel

	if err := repo.db.WithContext(ctx).
		Preload("Brand").
		Where("id = ?", id).
		First(&phoneM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPhoneNotFound
		}

		return nil, errors.Wrap(err, "failed to find phone by ID")
	}

	return toPhoneDomain(&phoneM), nil
}

// FindPage retrieves phones newest first with limit/offset pagination.
func (repo *phoneRepository) FindPage(ctx context.Context, limit, offset int) ([]*entity.Phone, error) {
	var phoneModels []*model.PhoneModel

	query := repo.db.WithContext(ctx).
		Preload("Brand").
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&phoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find phones")
	}

	return toPhoneDomainList(phoneModels), nil
}

// FindByBrand retrieves a brand's phones newest first with pagination.
func (repo *phoneRepository) FindByBrand(ctx context.Context, brandID uuid.UUID, limit, offset int) ([]*entity.Phone, error) {
	var phoneModels []*model.PhoneModel

	query := repo.db.WithContext(ctx).
		Preload("Brand").
		Where("brand_id = ?", brandID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&phoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find phones by brand")
	}

	return toPhoneDomainList(phoneModels), nil
}

// SearchByName retrieves phones whose name contains the query, case-insensitively.
func (repo *phoneRepository) SearchByName(ctx context.Context, query string) ([]*entity.Phone, error) {
	var phoneModels []*model.PhoneModel

	if err := repo.db.WithContext(ctx).
		Preload("Brand").
		Where("name ILIKE ?", "%"+query+"%").
		Order("created_at DESC").
		Find(&phoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search phones by name")
	}

	return toPhoneDomainList(phoneModels), nil
}

// Count returns the total number of phones in the catalog.
func (repo *phoneRepository) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.PhoneModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count phones")
	}

	return count, nil
}

// Update modifies an existing phone.
func (repo *phoneRepository) Update(ctx context.Context, phone *entity.Phone) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PhoneModel{}).
		Where("id = ?", phone.ID).
		Updates(map[string]interface{}{
			"brand_id":    phone.BrandID,
			"name":        phone.Name,
			"description": phone.Description,
			"price":       phone.Price,
			"stock":       phone.Stock,
			"available":   phone.Available,
			"image_url":   phone.ImageURL,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrBrandNotFound.WrapMessage("invalid brand reference")
		}

		return errors.Wrap(result.Error, "failed to update phone")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPhoneNotFound
	}

	return nil
}

// DecrementStock atomically subtracts qty from a phone's stock. The guard in
// the WHERE clause makes the decrement race-free under concurrent checkouts.
func (repo *phoneRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PhoneModel{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement phone stock")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrInsufficientStock
	}

	return nil
}

// Delete removes a phone from the catalog.
func (repo *phoneRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PhoneModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete phone")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPhoneNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPhoneDomain converts a GORM PhoneModel to a domain Phone entity.
func toPhoneDomain(data *model.PhoneModel) *entity.Phone {
	if data == nil {
		return nil
	}

	return &entity.Phone{
		ID:          data.ID,
		BrandID:     data.BrandID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		Available:   data.Available,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		Brand:       toBrandDomain(data.Brand),
	}
}

// fromPhoneDomain converts a domain Phone entity to a GORM PhoneModel.
func fromPhoneDomain(data *entity.Phone) *model.PhoneModel {
	if data == nil {
		return nil
	}

	return &model.PhoneModel{
		ID:          data.ID,
		BrandID:     data.BrandID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Stock:       data.Stock,
		Available:   data.Available,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
	}
}

func toPhoneDomainList(phoneModels []*model.PhoneModel) []*entity.Phone {
	phones := make([]*entity.Phone, 0, len(phoneModels))
	for _, phoneM := range phoneModels {
		phones = append(phones, toPhoneDomain(phoneM))
	}

	return phones
}
