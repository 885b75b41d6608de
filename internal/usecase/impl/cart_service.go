package impl

import (
	"context"
	"log/slog"

	deliverycontext "phonestore/internal/delivery/context"
	"phonestore/internal/domain/entity"
	domainerrors "phonestore/internal/domain/errors"
	"phonestore/internal/domain/repository"
	"phonestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart lines with the derived total.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	items, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return &usecase.CartView{
		Items: items,
		Total: entity.CartTotal(items),
	}, nil
}

// AddItem puts a phone in the cart. An omitted quantity adds one unit.
// The read-then-write runs in one transaction so a double-submit cannot
// create a duplicate line.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input usecase.AddToCartInput) (*entity.CartItem, error) {
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	line, err := srv.addItemOnce(ctx, userID, input)
	if errors.Is(err, domainerrors.ErrConflict) {
		// A concurrent add for the same phone inserted the line between
		// our read and our write and the unique (user, phone) index
		// rejected ours. The line exists now, so a second pass takes the
		// increment branch.
		line, err = srv.addItemOnce(ctx, userID, input)
	}

	if err != nil {
		srv.log(ctx).Warn("Failed to add item to cart", slog.Any("userID", userID), slog.Any("phoneID", input.PhoneID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add item to cart")
	}
	srv.log(ctx).Debug("Item added to cart", slog.Any("userID", userID), slog.Any("phoneID", input.PhoneID), slog.Uint64("quantity", uint64(line.Quantity)))

	return line, nil
}

// addItemOnce runs one increment-or-create attempt in its own transaction.
func (srv *cartService) addItemOnce(ctx context.Context, userID uuid.UUID, input usecase.AddToCartInput) (*entity.CartItem, error) {
	var line *entity.CartItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		phoneRepo := repoFactory.PhoneRepo()

		phone, err := phoneRepo.FindByID(ctx, input.PhoneID)
		if err != nil {
			if errors.Is(err, repository.ErrPhoneNotFound) {
				return errors.Wrap(domainerrors.ErrPhoneNotFound, "phone not found")
			}

			return errors.Wrap(err, "failed to find phone")
		}

		existing, err := cartRepo.FindByUserAndPhone(ctx, userID, input.PhoneID)
		if err != nil && !errors.Is(err, repository.ErrCartItemNotFound) {
			return errors.Wrap(err, "failed to find existing cart line")
		}

		if existing != nil {
			newQuantity := existing.Quantity + input.Quantity
			if err := cartRepo.UpdateQuantity(ctx, existing.ID, newQuantity); err != nil {
				return errors.Wrap(err, "failed to increment cart line")
			}
			existing.Quantity = newQuantity
			existing.Phone = phone
			line = existing

			return nil
		}

		newLine := &entity.CartItem{
			UserID:   userID,
			PhoneID:  input.PhoneID,
			Quantity: input.Quantity,
		}
		if err := cartRepo.Create(ctx, newLine); err != nil {
			return errors.Wrap(err, "failed to create cart line")
		}
		newLine.Phone = phone
		line = newLine

		return nil
	})

	if err != nil {
		return nil, err
	}

	return line, nil
}

// UpdateItemQuantity sets a line's quantity after verifying ownership.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, userID, itemID uuid.UUID, input usecase.UpdateCartItemInput) error {
	if input.Quantity < 1 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be at least 1")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		line, err := srv.findOwnedLine(ctx, cartRepo, userID, itemID)
		if err != nil {
			return err
		}

		if err := cartRepo.UpdateQuantity(ctx, line.ID, input.Quantity); err != nil {
			return errors.Wrap(err, "failed to update cart line quantity")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to update cart item")
	}

	return nil
}

// RemoveItem deletes a single line from the cart after verifying ownership.
func (srv *cartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		line, err := srv.findOwnedLine(ctx, cartRepo, userID, itemID)
		if err != nil {
			return err
		}

		if err := cartRepo.Delete(ctx, line.ID); err != nil {
			return errors.Wrap(err, "failed to delete cart line")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// ClearCart deletes every line from the cart. Clearing an already empty
// cart succeeds.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := srv.cartRepo.DeleteByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}
	srv.log(ctx).Debug("Cart cleared", slog.Any("userID", userID))

	return nil
}

// findOwnedLine loads a cart line and verifies it belongs to the user.
// A line owned by someone else is reported as not found, never as forbidden,
// so the response does not leak that the line exists.
func (srv *cartService) findOwnedLine(ctx context.Context, cartRepo repository.CartRepository, userID, itemID uuid.UUID) (*entity.CartItem, error) {
	line, err := cartRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "cart item not found")
		}

		return nil, errors.Wrap(err, "failed to find cart line")
	}

	if line.UserID != userID {
		return nil, errors.Wrap(domainerrors.ErrCartItemNotFound, "cart item not found")
	}

	return line, nil
}
