package entity

import (
	"time"

	"github.com/google/uuid"
)

// DevicePlatform identifies the push channel FCM delivers through.
type DevicePlatform string

const (
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
	PlatformWeb     DevicePlatform = "web"
)

func (p DevicePlatform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return true
	default:
		return false
	}
}

// UserDevice is a client install that receives match notifications.
// A user has at most one row per client DeviceID; re-registering refreshes it.
type UserDevice struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	FCMToken   string         `json:"fcm_token"`
	DeviceID   string         `json:"device_id"` // Client-generated install id.
	Platform   DevicePlatform `json:"platform"`
	IsActive   bool           `json:"is_active"`
	LastSeenAt time.Time      `json:"last_seen_at"` // Last registration or token refresh.
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
