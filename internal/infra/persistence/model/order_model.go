package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. Total is snapshotted at checkout
// and never recomputed from the items.
type OrderModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	FullName      string          `gorm:"type:varchar(100);not null"`
	Phone         string          `gorm:"type:varchar(15);not null"`
	Address       string          `gorm:"type:text;not null"`
	OrderNote     string          `gorm:"type:text"`
	Status        string          `gorm:"type:varchar(20);not null;default:pending"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt     time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Price is the unit price
// snapshot taken at checkout.
type OrderItemModel struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	PhoneID  uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity uint            `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Phone *PhoneModel `gorm:"foreignKey:PhoneID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
