package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PhoneModel mirrors the 'phones' table. Price is a fixed-point decimal column.
type PhoneModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BrandID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Stock       uint            `gorm:"not null;default:0"`
	Available   bool            `gorm:"not null;default:true"`
	ImageURL    string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time

	Brand *BrandModel `gorm:"foreignKey:BrandID"`
}

// TableName explicitly sets the table name for GORM.
func (PhoneModel) TableName() string {
	return "phones"
}
