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
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// Create persists a new cart line.
func (repo *cartRepository) Create(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("phone is already in the cart")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPhoneNotFound.WrapMessage("invalid phone reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
	}

	// Update the entity with generated values
	item.ID = itemM.ID
	item.DateAdded = itemM.DateAdded

	return nil
}

// FindByID retrieves a cart line by its unique ID.
func (repo *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Phone").
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by ID")
	}

	return toCartItemDomain(&itemM), nil
}

// FindByUser retrieves all of a user's cart lines, oldest first.
func (repo *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Phone").
		Where("user_id = ?", userID).
		Order("date_added ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cart items by user")
	}

	return toCartItemDomainList(itemModels), nil
}

// FindByUserForUpdate retrieves all of a user's cart lines holding row-level
// locks until the surrounding transaction ends. Must be called inside a
// transaction; the locks serialize concurrent checkouts of the same cart.
func (repo *cartRepository) FindByUserForUpdate(ctx context.Context, userID uuid.UUID) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Order("date_added ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock cart items by user")
	}

	// Preload cannot be combined with FOR UPDATE on the joined rows, so the
	// phones are loaded in a second query.
	for _, itemM := range itemModels {
		var phoneM model.PhoneModel
		if err := repo.db.WithContext(ctx).
			Where("id = ?", itemM.PhoneID).
			First(&phoneM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load phone for locked cart item")
		}
		itemM.Phone = &phoneM
	}

	return toCartItemDomainList(itemModels), nil
}

// FindByUserAndPhone retrieves the single line for a (user, phone) pair.
func (repo *cartRepository) FindByUserAndPhone(ctx context.Context, userID, phoneID uuid.UUID) (*entity.CartItem, error) {
	var itemM model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Phone").
		Where("user_id = ? AND phone_id = ?", userID, phoneID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item by user and phone")
	}

	return toCartItemDomain(&itemM), nil
}

// UpdateQuantity sets a line's quantity.
func (repo *cartRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("id = ?", id).
		Update("quantity", quantity)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart item quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// Delete removes a single cart line.
func (repo *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteByUser removes every cart line belonging to a user. Deleting an
// already empty cart is not an error.
func (repo *cartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete cart items by user")
	}

	return nil
}

// --- Mapper Functions ---

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		PhoneID:   data.PhoneID,
		Quantity:  data.Quantity,
		DateAdded: data.DateAdded,
		Phone:     toPhoneDomain(data.Phone),
	}
}

// fromCartItemDomain converts a domain CartItem entity to a GORM CartItemModel.
func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		ID:       data.ID,
		UserID:   data.UserID,
		PhoneID:  data.PhoneID,
		Quantity: data.Quantity,
	}
}

func toCartItemDomainList(itemModels []*model.CartItemModel) []*entity.CartItem {
	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items
}
