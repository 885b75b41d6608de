// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"github.com/google/uuid"
)

// BrandModel mirrors the 'brands' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type BrandModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	LogoURL     string    `gorm:"type:varchar(255)"`

	Phones []*PhoneModel `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BrandModel) TableName() string {
	return "brands"
}
