package usecase

import (
	"context"

	"mentorship/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo identifies a client install asking for match notifications.
type DeviceInfo struct {
	FCMToken string                `json:"fcm_token"`
	DeviceID string                `json:"device_id"`
	Platform entity.DevicePlatform `json:"platform"`
}

// DeviceUsecase manages where a user's match notifications are delivered.
type DeviceUsecase interface {
	// RegisterDevice records the install for the user, refreshing it when already known.
	// The token is taken away from any other user that still holds it.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)

	UpdateFCMToken(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID, fcmToken string) error

	// ListDevices returns the user's active devices.
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevice stops notifications to the device. Only its owner may do so.
	DeactivateDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
