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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (
	usecase.ProfileUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockUserRepository,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Logger:    newTestLogger(),
	})

	return service, txManager, userRepo
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	service, _, userRepo := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "jane@example.com"}
	profile := &entity.Profile{UserID: userID, PhoneNumber: "0123456789"}

	userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	userRepo.EXPECT().FindProfile(ctx, userID).Return(profile, nil)

	view, err := service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, view.User)
	assert.Equal(t, profile, view.Profile)
}

func TestProfileService_GetProfile_MissingProfileIsEmptyNotError(t *testing.T) {
	service, _, userRepo := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	userRepo.EXPECT().FindProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	view, err := service.GetProfile(ctx, userID)

	require.NoError(t, err)
	require.NotNil(t, view.Profile)
	assert.Equal(t, userID, view.Profile.UserID)
	assert.Empty(t, view.Profile.PhoneNumber)
}

func TestProfileService_GetProfile_UserNotFound(t *testing.T) {
	service, _, userRepo := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	view, err := service.GetProfile(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, view)
}

func TestProfileService_UpdateProfile_FirstUseCreatesRow(t *testing.T) {
	service, txManager, _ := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	phoneNumber := "0987654321"

	factory := newTestFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	onExecute(txManager, factory)

	txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	txUserRepo.EXPECT().FindProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	txUserRepo.EXPECT().SaveProfile(ctx, mock.MatchedBy(func(profile *entity.Profile) bool {
		return profile.UserID == userID && profile.PhoneNumber == phoneNumber
	})).Return(nil)

	saved, err := service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{PhoneNumber: &phoneNumber})

	require.NoError(t, err)
	assert.Equal(t, phoneNumber, saved.PhoneNumber)
}

func TestProfileService_UpdateProfile_NilFieldsLeaveStoredValues(t *testing.T) {
	service, txManager, _ := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	address := "2 New Road"

	factory := newTestFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	onExecute(txManager, factory)

	txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	txUserRepo.EXPECT().FindProfile(ctx, userID).
		Return(&entity.Profile{UserID: userID, PhoneNumber: "0123456789", Address: "1 Old Lane"}, nil)
	txUserRepo.EXPECT().SaveProfile(ctx, mock.MatchedBy(func(profile *entity.Profile) bool {
		return profile.PhoneNumber == "0123456789" && profile.Address == address
	})).Return(nil)

	saved, err := service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{Address: &address})

	require.NoError(t, err)
	assert.Equal(t, "0123456789", saved.PhoneNumber)
	assert.Equal(t, address, saved.Address)
}

func TestProfileService_UpdateProfile_UserNotFound(t *testing.T) {
	service, txManager, _ := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	phoneNumber := "0987654321"

	factory := newTestFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	onExecute(txManager, factory)

	txUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	saved, err := service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{PhoneNumber: &phoneNumber})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, saved)
}

func TestProfileService_UpdateProfile_SaveFailure(t *testing.T) {
	service, txManager, _ := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	phoneNumber := "0987654321"

	factory := newTestFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	onExecute(txManager, factory)

	txUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	txUserRepo.EXPECT().FindProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	txUserRepo.EXPECT().SaveProfile(ctx, mock.Anything).Return(errors.New("db error"))

	saved, err := service.UpdateProfile(ctx, userID, usecase.UpdateProfileInput{PhoneNumber: &phoneNumber})

	assert.Error(t, err)
	assert.Nil(t, saved)
	assert.Contains(t, err.Error(), "failed to save profile")
}
