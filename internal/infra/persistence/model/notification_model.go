package model

import (
	"time"

	"github.com/google/uuid"
)

// UserNotificationModel mirrors the 'user_notifications' table.
type UserNotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Severity  string    `gorm:"type:varchar(10);not null"`
	Message   string    `gorm:"type:text;not null"`
	ReadAt    *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserNotificationModel) TableName() string {
	return "user_notifications"
}
