package impl

import (
	"context"
	"log/slog"

	deliverycontext "mentorship/internal/delivery/context"
	domainerrors "mentorship/internal/domain/errors"
	"mentorship/internal/domain/repository"
	"mentorship/internal/domain/service"
	"mentorship/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type notificationService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	deviceRepo repository.DeviceRepository,
	notificationSvc service.NotificationService,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
		logger:          logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// HandleMatchEvent pushes the event to every active device of its recipient.
// Devices whose tokens the provider rejects are removed.
func (s *notificationService) HandleMatchEvent(ctx context.Context, event *service.MatchEvent) (*usecase.NotificationResult, error) {
	if event == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "event is required")
	}

	recipientID, err := uuid.Parse(event.RecipientID)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid recipient id %q", event.RecipientID)
	}

	msg, ok := pushMessageFor(event)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown event type %q", event.Type)
	}

	devices, err := s.deviceRepo.ListActiveDevices(ctx, recipientID)
	if err != nil {
		return nil, usecase.NewRetryableError(errors.Wrap(err, "failed to fetch recipient devices"))
	}

	result := &usecase.NotificationResult{Devices: len(devices)}
	if len(devices) == 0 {
		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	var (
		invalidTokens []string
		lastErr       error
	)

	for start := 0; start < len(tokens); start += service.MaxNotificationBatch {
		end := min(start+service.MaxNotificationBatch, len(tokens))
		batch := tokens[start:end]

		batchResult, err := s.notificationSvc.SendBatchNotification(ctx, batch, msg)
		if err != nil {
			s.log(ctx).WarnContext(ctx, "Failed to send notification batch",
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			result.Failed += len(batch)
			lastErr = err

			continue
		}

		result.Sent += batchResult.SuccessCount
		result.Failed += batchResult.FailureCount
		invalidTokens = append(invalidTokens, batchResult.InvalidTokens...)
	}

	if len(invalidTokens) > 0 {
		removed, err := s.deviceRepo.DeleteDevicesByTokens(ctx, invalidTokens)
		if err != nil {
			s.log(ctx).WarnContext(ctx, "Failed to remove devices with invalid tokens", slog.Any("error", err))
		}
		result.InvalidTokens = int(removed)
	}

	if result.Sent == 0 && lastErr != nil {
		return result, usecase.NewRetryableError(errors.Wrap(lastErr, "failed to send notifications"))
	}

	s.log(ctx).InfoContext(ctx, "Match event delivered",
		slog.String("event_type", string(event.Type)),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

func pushMessageFor(event *service.MatchEvent) (*service.PushMessage, bool) {
	var title, body string

	switch event.Type {
	case service.EventMentorshipRequested:
		title = "New mentorship request"
		body = "Someone would like you to mentor them."
	case service.EventMentorshipAccepted:
		title = "Mentorship accepted"
		body = "Your mentorship request was accepted."
	case service.EventMentorshipDeclined:
		title = "Mentorship declined"
		body = "Your mentorship request was declined."
	case service.EventMentorshipCompleted:
		title = "Mentorship completed"
		body = "Your mentorship has been marked as completed."
	case service.EventChatMessageSent:
		title = "New message"
		body = "You have a new message."
	default:
		return nil, false
	}

	if event.Preview != "" {
		body = event.Preview
	}

	data := map[string]string{
		"event_type": string(event.Type),
		"match_id":   event.MatchID,
	}
	if event.MessageID != "" {
		data["message_id"] = event.MessageID
	}

	return &service.PushMessage{Title: title, Body: body, Data: data}, true
}
