package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel maps the 'user_devices' table.
// The (user_id, device_id) pair is the upsert key for registrations.
type UserDeviceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_user_device,priority:1"`
	DeviceID   string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_user_device,priority:2"`
	FCMToken   string    `gorm:"type:varchar(255);not null;index"`
	Platform   string    `gorm:"type:varchar(16);not null"`
	IsActive   bool      `gorm:"not null;default:true"`
	LastSeenAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}
