package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel mirrors the 'cart_items' table. The composite unique index
// backs the one-line-per-(user, phone) invariant.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_phone"`
	PhoneID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_phone"`
	Quantity  uint      `gorm:"not null;default:1"`
	DateAdded time.Time `gorm:"autoCreateTime"`

	Phone *PhoneModel `gorm:"foreignKey:PhoneID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
