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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (
	usecase.CatalogUsecase,
	*mockRepo.MockBrandRepository,
	*mockRepo.MockPhoneRepository,
) {
	brandRepo := mockRepo.NewMockBrandRepository(t)
	phoneRepo := mockRepo.NewMockPhoneRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		BrandRepo: brandRepo,
		PhoneRepo: phoneRepo,
		Config:    newTestConfig(),
		Logger:    newTestLogger(),
	})

	return service, brandRepo, phoneRepo
}

func TestCatalogService_ListBrands(t *testing.T) {
	service, brandRepo, _ := createTestCatalogService(t)

	ctx := context.Background()
	expected := []*entity.Brand{{ID: uuid.New(), Name: "Apple"}, {ID: uuid.New(), Name: "Samsung"}}

	brandRepo.EXPECT().FindAll(ctx).Return(expected, nil)

	brands, err := service.ListBrands(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, brands)
}

func TestCatalogService_GetBrand_NotFound(t *testing.T) {
	service, brandRepo, _ := createTestCatalogService(t)

	ctx := context.Background()
	brandID := uuid.New()

	brandRepo.EXPECT().FindByID(ctx, brandID).Return(nil, repository.ErrBrandNotFound)

	brand, err := service.GetBrand(ctx, brandID)

	assert.ErrorIs(t, err, domainerrors.ErrBrandNotFound)
	assert.Nil(t, brand)
}

func TestCatalogService_ListPhones_FirstPage(t *testing.T) {
	service, _, phoneRepo := createTestCatalogService(t)

	ctx := context.Background()
	expected := []*entity.Phone{{ID: uuid.New(), Name: "Phone A"}}

	phoneRepo.EXPECT().FindPage(ctx, 12, 0).Return(expected, nil)
	phoneRepo.EXPECT().Count(ctx).Return(int64(30), nil)

	page, err := service.ListPhones(ctx, usecase.ListPhonesInput{Page: 1})

	require.NoError(t, err)
	assert.Equal(t, expected, page.Phones)
	assert.Equal(t, 12, page.PageSize)
	assert.Equal(t, int64(30), page.TotalCount)
}

func TestCatalogService_ListPhones_SecondPageOffset(t *testing.T) {
	service, _, phoneRepo := createTestCatalogService(t)

	ctx := context.Background()

	phoneRepo.EXPECT().FindPage(ctx, 12, 12).Return([]*entity.Phone{}, nil)
	phoneRepo.EXPECT().Count(ctx).Return(int64(12), nil)

	page, err := service.ListPhones(ctx, usecase.ListPhonesInput{Page: 2})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
}

func TestCatalogService_ListPhones_BrandFilter(t *testing.T) {
	service, _, phoneRepo := createTestCatalogService(t)

	ctx := context.Background()
	brandID := uuid.New()

	phoneRepo.EXPECT().FindByBrand(ctx, brandID, 12, 0).Return([]*entity.Phone{}, nil)
	phoneRepo.EXPECT().Count(ctx).Return(int64(0), nil)

	_, err := service.ListPhones(ctx, usecase.ListPhonesInput{BrandID: &brandID, Page: 1})

	require.NoError(t, err)
}

func TestCatalogService_SearchPhones_BlankQueryMatchesNothing(t *testing.T) {
	service, _, _ := createTestCatalogService(t)

	ctx := context.Background()

	// No repository expectation: a blank query short-circuits.
	phones, err := service.SearchPhones(ctx, "   ")

	require.NoError(t, err)
	assert.Empty(t, phones)
}

func TestCatalogService_SearchPhones_TrimsQuery(t *testing.T) {
	service, _, phoneRepo := createTestCatalogService(t)

	ctx := context.Background()
	expected := []*entity.Phone{{ID: uuid.New(), Name: "Galaxy S25"}}

	phoneRepo.EXPECT().SearchByName(ctx, "galaxy").Return(expected, nil)

	phones, err := service.SearchPhones(ctx, "  galaxy  ")

	require.NoError(t, err)
	assert.Equal(t, expected, phones)
}

func TestCatalogService_CreateBrand_Success(t *testing.T) {
	service, brandRepo, _ := createTestCatalogService(t)

	ctx := context.Background()

	brandRepo.EXPECT().Create(ctx, mock.MatchedBy(func(brand *entity.Brand) bool {
		return brand.Name == "Nokia"
	})).Return(nil)

	brand, err := service.CreateBrand(ctx, staffActor(), usecase.SaveBrandInput{Name: "Nokia"})

	require.NoError(t, err)
	assert.Equal(t, "Nokia", brand.Name)
}

func TestCatalogService_CreateBrand_NonStaffForbidden(t *testing.T) {
	service, _, _ := createTestCatalogService(t)

	ctx := context.Background()

	brand, err := service.CreateBrand(ctx, customerActor(), usecase.SaveBrandInput{Name: "Nokia"})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, brand)
}

func TestCatalogService_UpdateBrand_NotFound(t *testing.T) {
	service, brandRepo, _ := createTestCatalogService(t)

	ctx := context.Background()
	brandID := uuid.New()

	brandRepo.EXPECT().Update(ctx, mock.Anything).Return(repository.ErrBrandNotFound)

	err := service.UpdateBrand(ctx, staffActor(), brandID, usecase.SaveBrandInput{Name: "Nokia"})

	assert.ErrorIs(t, err, domainerrors.ErrBrandNotFound)
}

func TestCatalogService_DeleteBrand_NonStaffForbidden(t *testing.T) {
	service, _, _ := createTestCatalogService(t)

	ctx := context.Background()

	err := service.DeleteBrand(ctx, customerActor(), uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCatalogService_CreatePhone_Success(t *testing.T) {
	service, _, phoneRepo := createTestCatalogService(t)

	ctx := context.Background()
	brandID := uuid.New()

	phoneRepo.EXPECT().Create(ctx, mock.MatchedBy(func(phone *entity.Phone) bool {
		return phone.BrandID == brandID &&
			phone.Name == "Pixel 10" &&
			phone.Price.String() == "699.99" &&
			phone.Stock == 20 &&
			phone.Available
	})).Return(nil)

	phone, err := service.CreatePhone(ctx, staffActor(), usecase.SavePhoneInput{
		BrandID:   brandID,
		Name:      "Pixel 10",
		Price:     "699.99",
		Stock:     20,
		Available: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Pixel 10", phone.Name)
}

func TestCatalogService_CreatePhone_InvalidPrice(t *testing.T) {
	service, _, _ := createTestCatalogService(t)

	ctx := context.Background()

	phone, err := service.CreatePhone(ctx, staffActor(), usecase.SavePhoneInput{
		BrandID: uuid.New(),
		Name:    "Pixel 10",
		Price:   "not-a-number",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, phone)
}

func TestCatalogService_CreatePhone_NegativePrice(t *testing.T) {
	service, _, _ := createTestCatalogService(t)

	ctx := context.Background()

	phone, err := service.CreatePhone(ctx, staffActor(), usecase.SavePhoneInput{
		BrandID: uuid.New(),
		Name:    "Pixel 10",
		Price:   "-1.00",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, phone)
}

func TestCatalogService_UpdatePhone_Success(t *testing.T) {
	service, _, phoneRepo := createTestCatalogService(t)

	ctx := context.Background()
	phoneID := uuid.New()

	phoneRepo.EXPECT().Update(ctx, mock.MatchedBy(func(phone *entity.Phone) bool {
		return phone.ID == phoneID && phone.Price.String() == "549.5"
	})).Return(nil)

	err := service.UpdatePhone(ctx, staffActor(), phoneID, usecase.SavePhoneInput{
		BrandID: uuid.New(),
		Name:    "Pixel 10",
		Price:   "549.50",
	})

	require.NoError(t, err)
}

func TestCatalogService_DeletePhone_NotFound(t *testing.T) {
	service, _, phoneRepo := createTestCatalogService(t)

	ctx := context.Background()
	phoneID := uuid.New()

	phoneRepo.EXPECT().Delete(ctx, phoneID).Return(repository.ErrPhoneNotFound)

	err := service.DeletePhone(ctx, staffActor(), phoneID)

	assert.ErrorIs(t, err, domainerrors.ErrPhoneNotFound)
}
