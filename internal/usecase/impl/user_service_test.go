package impl

import (
	"context"
	"testing"

	"phonestore/internal/domain/entity"
	domainerrors "phonestore/internal/domain/errors"
	"phonestore/internal/domain/repository"
	"phonestore/internal/domain/service"
	mockRepo "phonestore/internal/mocks/repository"
	mockSvc "phonestore/internal/mocks/service"
	"phonestore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (
	usecase.UserUsecase,
	*mockRepo.MockTransactionManager,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPasswordHasher,
	*mockSvc.MockTokenService,
) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newTestLogger(),
	})

	return svc, txManager, userRepo, hasher, tokenService
}

func TestUserService_Register_Success(t *testing.T) {
	svc, txManager, _, hasher, _ := createTestUserService(t)

	ctx := context.Background()

	hasher.EXPECT().Hash("secret123").Return("hashed-secret", nil)

	factory := newTestFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	onExecute(txManager, factory)

	txUserRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, repository.ErrUserNotFound)
	txUserRepo.EXPECT().Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Email == "jane@example.com" &&
			user.Name == "Jane" &&
			user.PasswordHash == "hashed-secret" &&
			!user.IsStaff
	})).Return(nil)

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "  Jane@Example.com ",
		Name:     "Jane",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", out.User.Email)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, txManager, _, hasher, _ := createTestUserService(t)

	ctx := context.Background()

	hasher.EXPECT().Hash("secret123").Return("hashed-secret", nil)

	factory := newTestFactory(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txUserRepo)
	onExecute(txManager, factory)

	txUserRepo.EXPECT().FindByEmail(ctx, "jane@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "jane@example.com"}, nil)

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "jane@example.com",
		Name:     "Jane",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, out)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	svc, _, _, hasher, _ := createTestUserService(t)

	ctx := context.Background()

	hasher.EXPECT().Hash("secret123").Return("", errors.New("bcrypt failure"))

	out, err := svc.Register(ctx, usecase.RegisterInput{
		Email:    "jane@example.com",
		Name:     "Jane",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	assert.Nil(t, out)
}

func TestUserService_Login_Success(t *testing.T) {
	svc, _, userRepo, hasher, tokenService := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "jane@example.com", PasswordHash: "hashed-secret"}

	userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
	hasher.EXPECT().Check("secret123", "hashed-secret").Return(true)
	tokenService.EXPECT().GenerateTokens(userID, []string{"user"}).Return("access", "refresh", nil)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "Jane@Example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_StaffRoleEmbedded(t *testing.T) {
	svc, _, userRepo, hasher, tokenService := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "admin@example.com", PasswordHash: "hashed", IsStaff: true}

	userRepo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(user, nil)
	hasher.EXPECT().Check("secret123", "hashed").Return(true)
	tokenService.EXPECT().GenerateTokens(userID, []string{"user", "staff"}).Return("access", "refresh", nil)

	_, err := svc.Login(ctx, usecase.LoginInput{Email: "admin@example.com", Password: "secret123"})

	require.NoError(t, err)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, _, userRepo, _, _ := createTestUserService(t)

	ctx := context.Background()

	userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	// Unknown email and wrong password look identical to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, out)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, _, userRepo, hasher, _ := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "jane@example.com", PasswordHash: "hashed-secret"}

	userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
	hasher.EXPECT().Check("wrong", "hashed-secret").Return(false)

	out, err := svc.Login(ctx, usecase.LoginInput{Email: "jane@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, out)
}

func TestUserService_Refresh_Success(t *testing.T) {
	svc, _, userRepo, _, tokenService := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, IsStaff: true}, nil)

	// Roles are reloaded from the account, not taken from the old token.
	tokenService.EXPECT().GenerateTokens(userID, []string{"user", "staff"}).
		Return("new-access", "new-refresh", nil)

	out, err := svc.Refresh(ctx, usecase.RefreshInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, "new-refresh", out.RefreshToken)
}

func TestUserService_Refresh_InvalidToken(t *testing.T) {
	svc, _, _, _, tokenService := createTestUserService(t)

	ctx := context.Background()

	tokenService.EXPECT().ValidateRefreshToken("garbage").
		Return(nil, errors.New("token is malformed"))

	out, err := svc.Refresh(ctx, usecase.RefreshInput{RefreshToken: "garbage"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, out)
}

func TestUserService_Refresh_DeletedAccount(t *testing.T) {
	svc, _, userRepo, _, tokenService := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	tokenService.EXPECT().ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	out, err := svc.Refresh(ctx, usecase.RefreshInput{RefreshToken: "refresh-token"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	assert.Nil(t, out)
}
