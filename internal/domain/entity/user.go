package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoleStaff is the role claim carried by elevated (staff/superuser) users.
// It is the only capability the order lifecycle trusts.
const RoleStaff = "staff"

// User is the core identity in the system.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's login identifier, unique.
	Name         string    // The user's display name.
	PasswordHash string    // Salted bcrypt hash of the user's password.
	IsStaff      bool      // Elevated privilege flag for admin operations.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.

	Profile *Profile // One-to-one extension, nil unless loaded or created.
}

// Roles returns the role claims embedded into the user's access token.
func (u *User) Roles() []string {
	roles := []string{"user"}
	if u.IsStaff {
		roles = append(roles, RoleStaff)
	}

	return roles
}

// Profile is a one-to-one extension of a user identity. It is created
// lazily on first access if absent; every field may be empty.
type Profile struct {
	UserID      uuid.UUID // Primary key, references the owning user.
	PhoneNumber string    // Contact phone number.
	Address     string    // Default delivery address.
	AvatarURL   string    // Reference to the avatar image, optional.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
