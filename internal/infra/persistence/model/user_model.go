package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsStaff      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Profile       *ProfileModel            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CartItems     []*CartItemModel         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Orders        []*OrderModel            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Notifications []*UserNotificationModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProfileModel mirrors the 'profiles' table. UserID references users.id (UUID).
type ProfileModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	PhoneNumber string    `gorm:"type:varchar(20)"`
	Address     string    `gorm:"type:text"`
	AvatarURL   string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
