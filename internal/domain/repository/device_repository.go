package repository

import (
	"context"

	"mentorship/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when no live device row matches.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository persists the push targets of users.
type DeviceRepository interface {
	// UpsertDevice inserts the device or refreshes the row the user already holds for the same DeviceID,
	// reviving it if it was deleted. The stored row is copied back into device.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)

	// ListActiveDevices returns the user's active devices, most recently seen first.
	ListActiveDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error

	// DeleteDevice soft deletes one device.
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// DeleteDevicesByTokens soft deletes every device holding one of the tokens.
	DeleteDevicesByTokens(ctx context.Context, fcmTokens []string) (int64, error)

	// ReleaseToken soft deletes devices of other users that still hold fcmToken,
	// which happens when a phone switches accounts.
	ReleaseToken(ctx context.Context, fcmToken string, ownerID uuid.UUID) (int64, error)
}
