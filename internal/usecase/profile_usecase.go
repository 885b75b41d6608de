package usecase

import (
	"context"

	"phonestore/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateProfileInput defines the data required to update a profile.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	Address     *string `json:"address,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

// --- Output DTOs ---

// ProfileView is the account plus its profile details.
type ProfileView struct {
	User    *entity.User
	Profile *entity.Profile
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	// GetProfile returns the user's account and profile details. A user
	// who has never saved profile details gets an empty profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error)

	// UpdateProfile saves profile details, creating the profile row on
	// first use.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*entity.Profile, error)
}
