package impl

import (
	"context"
	"testing"

	"phonestore/internal/domain/entity"
	domainerrors "phonestore/internal/domain/errors"
	"phonestore/internal/domain/repository"
	mockRepo "phonestore/internal/mocks/repository"
	"phonestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCartService(t *testing.T) (
	usecase.CartUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockCartRepository,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	cartRepo := mockRepo.NewMockCartRepository(t)

	service := NewCartService(CartServiceParams{
		TxManager: txManager,
		CartRepo:  cartRepo,
		Logger:    newTestLogger(),
	})

	return service, txManager, cartRepo
}

func TestCartService_GetCart_TotalAcrossLines(t *testing.T) {
	service, _, cartRepo := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	// Two lines: 2 x 10.00 + 1 x 5.00 = 25.00
	cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{
		{
			ID:       uuid.New(),
			UserID:   userID,
			Quantity: 2,
			Phone:    &entity.Phone{Price: decimal.RequireFromString("10.00")},
		},
		{
			ID:       uuid.New(),
			UserID:   userID,
			Quantity: 1,
			Phone:    &entity.Phone{Price: decimal.RequireFromString("5.00")},
		},
	}, nil)

	view, err := service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, view.Items, 2)
	assert.True(t, view.Total.Equal(decimal.RequireFromString("25.00")))
}

func TestCartService_GetCart_Empty(t *testing.T) {
	service, _, cartRepo := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.EXPECT().FindByUser(ctx, userID).Return([]*entity.CartItem{}, nil)

	view, err := service.GetCart(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.Total.IsZero())
}

func TestCartService_AddItem_NewLine(t *testing.T) {
	service, txManager, _ := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	phoneID := uuid.New()
	phone := &entity.Phone{ID: phoneID, Name: "Test Phone", Price: decimal.RequireFromString("99.00")}

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txPhoneRepo := mockRepo.NewMockPhoneRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().PhoneRepo().Return(txPhoneRepo)
	onExecute(txManager, factory)

	txPhoneRepo.EXPECT().FindByID(ctx, phoneID).Return(phone, nil)
	txCartRepo.EXPECT().FindByUserAndPhone(ctx, userID, phoneID).Return(nil, repository.ErrCartItemNotFound)
	txCartRepo.EXPECT().Create(ctx, mock.MatchedBy(func(line *entity.CartItem) bool {
		return line.UserID == userID && line.PhoneID == phoneID && line.Quantity == 3
	})).Return(nil)

	line, err := service.AddItem(ctx, userID, usecase.AddToCartInput{PhoneID: phoneID, Quantity: 3})

	require.NoError(t, err)
	assert.Equal(t, uint(3), line.Quantity)
	assert.Equal(t, phone, line.Phone)
}

func TestCartService_AddItem_DuplicateIncrementsQuantity(t *testing.T) {
	service, txManager, _ := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	phoneID := uuid.New()
	lineID := uuid.New()
	phone := &entity.Phone{ID: phoneID, Price: decimal.RequireFromString("10.00")}

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txPhoneRepo := mockRepo.NewMockPhoneRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().PhoneRepo().Return(txPhoneRepo)
	onExecute(txManager, factory)

	txPhoneRepo.EXPECT().FindByID(ctx, phoneID).Return(phone, nil)
	txCartRepo.EXPECT().FindByUserAndPhone(ctx, userID, phoneID).
		Return(&entity.CartItem{ID: lineID, UserID: userID, PhoneID: phoneID, Quantity: 1}, nil)
	txCartRepo.EXPECT().UpdateQuantity(ctx, lineID, uint(2)).Return(nil)

	line, err := service.AddItem(ctx, userID, usecase.AddToCartInput{PhoneID: phoneID, Quantity: 1})

	require.NoError(t, err)
	assert.Equal(t, lineID, line.ID)
	assert.Equal(t, uint(2), line.Quantity)
}

func TestCartService_AddItem_PhoneNotFound(t *testing.T) {
	service, txManager, _ := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	phoneID := uuid.New()

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txPhoneRepo := mockRepo.NewMockPhoneRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().PhoneRepo().Return(txPhoneRepo)
	onExecute(txManager, factory)

	txPhoneRepo.EXPECT().FindByID(ctx, phoneID).Return(nil, repository.ErrPhoneNotFound)

	line, err := service.AddItem(ctx, userID, usecase.AddToCartInput{PhoneID: phoneID, Quantity: 1})

	assert.ErrorIs(t, err, domainerrors.ErrPhoneNotFound)
	assert.Nil(t, line)
}

func TestCartService_AddItem_OmittedQuantityAddsOneUnit(t *testing.T) {
	service, txManager, _ := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	phoneID := uuid.New()
	phone := &entity.Phone{ID: phoneID, Price: decimal.RequireFromString("99.00")}

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txPhoneRepo := mockRepo.NewMockPhoneRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().PhoneRepo().Return(txPhoneRepo)
	onExecute(txManager, factory)

	txPhoneRepo.EXPECT().FindByID(ctx, phoneID).Return(phone, nil)
	txCartRepo.EXPECT().FindByUserAndPhone(ctx, userID, phoneID).Return(nil, repository.ErrCartItemNotFound)
	txCartRepo.EXPECT().Create(ctx, mock.MatchedBy(func(line *entity.CartItem) bool {
		return line.UserID == userID && line.PhoneID == phoneID && line.Quantity == 1
	})).Return(nil)

	line, err := service.AddItem(ctx, userID, usecase.AddToCartInput{PhoneID: phoneID})

	require.NoError(t, err)
	assert.Equal(t, uint(1), line.Quantity)
}

func TestCartService_AddItem_OmittedQuantityIncrementsExistingLineByOne(t *testing.T) {
	service, txManager, _ := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	phoneID := uuid.New()
	lineID := uuid.New()
	phone := &entity.Phone{ID: phoneID, Price: decimal.RequireFromString("10.00")}

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txPhoneRepo := mockRepo.NewMockPhoneRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().PhoneRepo().Return(txPhoneRepo)
	onExecute(txManager, factory)

	txPhoneRepo.EXPECT().FindByID(ctx, phoneID).Return(phone, nil)
	txCartRepo.EXPECT().FindByUserAndPhone(ctx, userID, phoneID).
		Return(&entity.CartItem{ID: lineID, UserID: userID, PhoneID: phoneID, Quantity: 2}, nil)
	txCartRepo.EXPECT().UpdateQuantity(ctx, lineID, uint(3)).Return(nil)

	line, err := service.AddItem(ctx, userID, usecase.AddToCartInput{PhoneID: phoneID})

	require.NoError(t, err)
	assert.Equal(t, uint(3), line.Quantity)
}

func TestCartService_AddItem_LostInsertRaceIncrementsInstead(t *testing.T) {
	service, txManager, _ := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	phoneID := uuid.New()
	lineID := uuid.New()
	phone := &entity.Phone{ID: phoneID, Price: decimal.RequireFromString("10.00")}

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	txPhoneRepo := mockRepo.NewMockPhoneRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	factory.EXPECT().PhoneRepo().Return(txPhoneRepo)
	onExecute(txManager, factory)

	txPhoneRepo.EXPECT().FindByID(ctx, phoneID).Return(phone, nil)

	// A concurrent add creates the line between our read and our write:
	// the insert loses against the unique (user, phone) index, and the
	// retry sees the winner's line and increments it.
	txCartRepo.EXPECT().FindByUserAndPhone(ctx, userID, phoneID).
		Return(nil, repository.ErrCartItemNotFound).Once()
	txCartRepo.EXPECT().Create(ctx, mock.Anything).
		Return(domainerrors.ErrConflict.WrapMessage("phone is already in the cart")).Once()
	txCartRepo.EXPECT().FindByUserAndPhone(ctx, userID, phoneID).
		Return(&entity.CartItem{ID: lineID, UserID: userID, PhoneID: phoneID, Quantity: 1}, nil).Once()
	txCartRepo.EXPECT().UpdateQuantity(ctx, lineID, uint(2)).Return(nil)

	line, err := service.AddItem(ctx, userID, usecase.AddToCartInput{PhoneID: phoneID, Quantity: 1})

	require.NoError(t, err)
	assert.Equal(t, lineID, line.ID)
	assert.Equal(t, uint(2), line.Quantity)
}

func TestCartService_UpdateItemQuantity_Success(t *testing.T) {
	service, txManager, _ := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	lineID := uuid.New()

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	onExecute(txManager, factory)

	txCartRepo.EXPECT().FindByID(ctx, lineID).
		Return(&entity.CartItem{ID: lineID, UserID: userID, Quantity: 1}, nil)
	txCartRepo.EXPECT().UpdateQuantity(ctx, lineID, uint(5)).Return(nil)

	err := service.UpdateItemQuantity(ctx, userID, lineID, usecase.UpdateCartItemInput{Quantity: 5})

	require.NoError(t, err)
}

func TestCartService_UpdateItemQuantity_ForeignLineReportedAsNotFound(t *testing.T) {
	service, txManager, _ := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	lineID := uuid.New()

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	onExecute(txManager, factory)

	// The line exists but belongs to a different user.
	txCartRepo.EXPECT().FindByID(ctx, lineID).
		Return(&entity.CartItem{ID: lineID, UserID: uuid.New(), Quantity: 1}, nil)

	err := service.UpdateItemQuantity(ctx, userID, lineID, usecase.UpdateCartItemInput{Quantity: 5})

	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_RemoveItem_Success(t *testing.T) {
	service, txManager, _ := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()
	lineID := uuid.New()

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	onExecute(txManager, factory)

	txCartRepo.EXPECT().FindByID(ctx, lineID).
		Return(&entity.CartItem{ID: lineID, UserID: userID, Quantity: 1}, nil)
	txCartRepo.EXPECT().Delete(ctx, lineID).Return(nil)

	err := service.RemoveItem(ctx, userID, lineID)

	require.NoError(t, err)
}

func TestCartService_RemoveItem_NotFound(t *testing.T) {
	service, txManager, _ := createTestCartService(t)

	ctx := context.Background()
	lineID := uuid.New()

	factory := newTestFactory(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	factory.EXPECT().CartRepo().Return(txCartRepo)
	onExecute(txManager, factory)

	txCartRepo.EXPECT().FindByID(ctx, lineID).Return(nil, repository.ErrCartItemNotFound)

	err := service.RemoveItem(ctx, uuid.New(), lineID)

	assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
}

func TestCartService_ClearCart_Success(t *testing.T) {
	service, _, cartRepo := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.EXPECT().DeleteByUser(ctx, userID).Return(nil)

	err := service.ClearCart(ctx, userID)

	require.NoError(t, err)
}

func TestCartService_ClearCart_RepositoryError(t *testing.T) {
	service, _, cartRepo := createTestCartService(t)

	ctx := context.Background()
	userID := uuid.New()

	cartRepo.EXPECT().DeleteByUser(ctx, userID).Return(errors.New("db error"))

	err := service.ClearCart(ctx, userID)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to clear cart")
}
