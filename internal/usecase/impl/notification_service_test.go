package impl

import (
	"context"
	"fmt"
	"testing"

	"mentorship/internal/domain/entity"
	domainerrors "mentorship/internal/domain/errors"
	"mentorship/internal/domain/service"
	mockRepo "mentorship/internal/mocks/repository"
	mockService "mentorship/internal/mocks/service"
	"mentorship/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service    usecase.NotificationUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	sender     *mockService.MockNotificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	sender := mockService.NewMockNotificationService(t)

	return notificationServiceFixtures{
		service:    NewNotificationService(deviceRepo, sender, newDiscardLogger()),
		deviceRepo: deviceRepo,
		sender:     sender,
	}
}

func newTestEvent(recipientID uuid.UUID) *service.MatchEvent {
	return &service.MatchEvent{
		EventID:     uuid.NewString(),
		Type:        service.EventMentorshipAccepted,
		MatchID:     uuid.NewString(),
		ActorID:     uuid.NewString(),
		RecipientID: recipientID.String(),
	}
}

func newTestDevices(userID uuid.UUID, n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, n)
	for i := range n {
		devices = append(devices, &entity.UserDevice{
			ID:       uuid.New(),
			UserID:   userID,
			FCMToken: fmt.Sprintf("token-%d", i),
			IsActive: true,
		})
	}

	return devices
}

func TestNotificationService_HandleMatchEvent_RemovesInvalidTokens(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	devices := newTestDevices(recipientID, 2)

	fx.deviceRepo.EXPECT().ListActiveDevices(ctx, recipientID).Return(devices, nil)
	fx.sender.EXPECT().
		SendBatchNotification(ctx, []string{"token-0", "token-1"}, mock.MatchedBy(func(m *service.PushMessage) bool {
			return m.Title == "Mentorship accepted" && m.Data["event_type"] == string(service.EventMentorshipAccepted)
		})).
		Return(&service.BatchResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"token-1"}}, nil)
	fx.deviceRepo.EXPECT().DeleteDevicesByTokens(ctx, []string{"token-1"}).Return(1, nil)

	result, err := fx.service.HandleMatchEvent(ctx, newTestEvent(recipientID))

	require.NoError(t, err)
	assert.Equal(t, &usecase.NotificationResult{Devices: 2, Sent: 1, Failed: 1, InvalidTokens: 1}, result)
}

func TestNotificationService_HandleMatchEvent_SplitsBatches(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	devices := newTestDevices(recipientID, service.MaxNotificationBatch+1)

	fx.deviceRepo.EXPECT().ListActiveDevices(ctx, recipientID).Return(devices, nil)
	fx.sender.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == service.MaxNotificationBatch }), mock.Anything).
		Return(&service.BatchResult{SuccessCount: service.MaxNotificationBatch}, nil).
		Once()
	fx.sender.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 1 }), mock.Anything).
		Return(&service.BatchResult{SuccessCount: 1}, nil).
		Once()

	result, err := fx.service.HandleMatchEvent(ctx, newTestEvent(recipientID))

	require.NoError(t, err)
	assert.Equal(t, service.MaxNotificationBatch+1, result.Sent)
}

func TestNotificationService_HandleMatchEvent_NoDevices(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.deviceRepo.EXPECT().ListActiveDevices(ctx, recipientID).Return(nil, nil)

	result, err := fx.service.HandleMatchEvent(ctx, newTestEvent(recipientID))

	require.NoError(t, err)
	assert.Equal(t, 0, result.Devices)
}

func TestNotificationService_HandleMatchEvent_RetryableFailures(t *testing.T) {
	t.Run("device lookup fails", func(t *testing.T) {
		fx := createTestNotificationService(t)

		ctx := context.Background()
		recipientID := uuid.New()

		fx.deviceRepo.EXPECT().ListActiveDevices(ctx, recipientID).Return(nil, errors.New("db down"))

		_, err := fx.service.HandleMatchEvent(ctx, newTestEvent(recipientID))

		assert.True(t, usecase.IsRetryable(err))
	})

	t.Run("every batch fails", func(t *testing.T) {
		fx := createTestNotificationService(t)

		ctx := context.Background()
		recipientID := uuid.New()

		fx.deviceRepo.EXPECT().ListActiveDevices(ctx, recipientID).Return(newTestDevices(recipientID, 1), nil)
		fx.sender.EXPECT().SendBatchNotification(ctx, mock.Anything, mock.Anything).Return(nil, errors.New("fcm unavailable"))

		result, err := fx.service.HandleMatchEvent(ctx, newTestEvent(recipientID))

		assert.True(t, usecase.IsRetryable(err))
		assert.Equal(t, 1, result.Failed)
	})
}

func TestNotificationService_HandleMatchEvent_InvalidEvent(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()

	event := newTestEvent(uuid.New())
	event.RecipientID = "not-a-uuid"
	_, err := fx.service.HandleMatchEvent(ctx, event)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.False(t, usecase.IsRetryable(err))

	event = newTestEvent(uuid.New())
	event.Type = "mentorship.unknown"
	_, err = fx.service.HandleMatchEvent(ctx, event)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
