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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the user's account and profile details. A user who has
// never saved profile details gets an empty profile rather than an error.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileView, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	profile, err := srv.userRepo.FindProfile(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(err, "failed to find profile")
		}
		profile = &entity.Profile{UserID: userID}
	}

	return &usecase.ProfileView{
		User:    user,
		Profile: profile,
	}, nil
}

// UpdateProfile saves profile details, creating the profile row on first
// use. Nil input fields leave the stored values untouched.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.Profile, error) {
	var saved *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		profile, err := userRepo.FindProfile(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrProfileNotFound) {
				return errors.Wrap(err, "failed to find profile")
			}
			profile = &entity.Profile{UserID: userID}
		}

		if input.PhoneNumber != nil {
			profile.PhoneNumber = *input.PhoneNumber
		}
		if input.Address != nil {
			profile.Address = *input.Address
		}
		if input.AvatarURL != nil {
			profile.AvatarURL = *input.AvatarURL
		}

		if err := userRepo.SaveProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}
		saved = profile

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update profile", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile update transaction")
	}
	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return saved, nil
}
