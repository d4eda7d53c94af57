package impl

import (
	"context"
	"testing"

	"mentorship/internal/domain/entity"
	domainerrors "mentorship/internal/domain/errors"
	"mentorship/internal/domain/repository"
	mockRepo "mentorship/internal/mocks/repository"
	"mentorship/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	srv := NewDeviceService(deviceRepo, newDiscardLogger())

	return deviceServiceFixtures{
		service:    srv,
		deviceRepo: deviceRepo,
	}
}

func TestDeviceService_RegisterDevice(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	storedID := uuid.New()

	fx.deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.MatchedBy(func(d *entity.UserDevice) bool {
			return d.UserID == userID && d.DeviceID == "pixel-8" && d.Platform == entity.PlatformAndroid && d.IsActive
		})).
		Run(func(_ context.Context, d *entity.UserDevice) {
			d.ID = storedID
		}).
		Return(nil).Once()
	fx.deviceRepo.EXPECT().ReleaseToken(ctx, "token-1", userID).Return(1, nil).Once()

	device, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "token-1",
		DeviceID: "pixel-8",
		Platform: entity.PlatformAndroid,
	})

	require.NoError(t, err)
	assert.Equal(t, storedID, device.ID)
	assert.False(t, device.LastSeenAt.IsZero())
}

func TestDeviceService_RegisterDevice_ReleaseFailureIsNotFatal(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().UpsertDevice(ctx, mock.Anything).Return(nil).Once()
	fx.deviceRepo.EXPECT().ReleaseToken(ctx, "token-1", userID).Return(0, errors.New("db down")).Once()

	_, err := fx.service.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
		FCMToken: "token-1",
		DeviceID: "iphone",
		Platform: entity.PlatformIOS,
	})

	require.NoError(t, err)
}

func TestDeviceService_RegisterDevice_Validation(t *testing.T) {
	tests := []struct {
		name string
		info *usecase.DeviceInfo
	}{
		{"nil input", nil},
		{"missing token", &usecase.DeviceInfo{DeviceID: "d", Platform: entity.PlatformIOS}},
		{"missing device id", &usecase.DeviceInfo{FCMToken: "t", Platform: entity.PlatformIOS}},
		{"unknown platform", &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "symbian"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)

			_, err := fx.service.RegisterDevice(context.Background(), uuid.New(), tt.info)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestDeviceService_RegisterDevice_UnknownUser(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().UpsertDevice(ctx, mock.Anything).
		Return(errors.Wrap(domainerrors.ErrUserNotFound, "device owner is not registered")).Once()

	_, err := fx.service.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{
		FCMToken: "token-1",
		DeviceID: "web-1",
		Platform: entity.PlatformWeb,
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestDeviceService_DeactivateDevice_NotOwner(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: uuid.New()}, nil)

	err := fx.service.DeactivateDevice(ctx, uuid.New(), deviceID)

	assert.ErrorIs(t, err, domainerrors.ErrDeviceOwnershipViolation)
}

func TestDeviceService_DeactivateDevice_Success(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
	fx.deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

	require.NoError(t, fx.service.DeactivateDevice(ctx, userID, deviceID))
}

func TestDeviceService_UpdateFCMToken(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		fx := createTestDeviceService(t)

		ctx := context.Background()
		deviceID := uuid.New()

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.UpdateFCMToken(ctx, uuid.New(), deviceID, "token")

		assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
	})

	t.Run("refreshes and releases token", func(t *testing.T) {
		fx := createTestDeviceService(t)

		ctx := context.Background()
		userID := uuid.New()
		deviceID := uuid.New()

		fx.deviceRepo.EXPECT().FindDeviceByID(ctx, deviceID).Return(&entity.UserDevice{ID: deviceID, UserID: userID}, nil)
		fx.deviceRepo.EXPECT().UpdateFCMToken(ctx, deviceID, "token-2").Return(nil).Once()
		fx.deviceRepo.EXPECT().ReleaseToken(ctx, "token-2", userID).Return(0, nil).Once()

		require.NoError(t, fx.service.UpdateFCMToken(ctx, userID, deviceID, "token-2"))
	})
}

func TestDeviceService_ListDevices_Error(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.deviceRepo.EXPECT().ListActiveDevices(ctx, userID).Return(nil, errors.New("db down"))

	devices, err := fx.service.ListDevices(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, devices)
}
