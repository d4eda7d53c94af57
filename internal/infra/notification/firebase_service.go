// Package notification delivers push notifications to user devices.
package notification

import (
	"context"
	"log/slog"

	"mentorship/config"
	"mentorship/internal/domain/service"
	"mentorship/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// ErrTooManyTokens is returned when a batch exceeds service.MaxNotificationBatch.
var ErrTooManyTokens = errors.New("token count exceeds batch limit")

type firebaseService struct {
	client *messaging.Client
}

// New selects the Firebase sender when credentials are configured and a logging sender otherwise.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		logger.Warn("Firebase credentials not configured, push notifications are only logged")

		return NewLogNotificationService(logger), nil
	}

	return NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var appCfg *firebase.Config
	if projectID != "" {
		appCfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendBatchNotification sends push notifications to multiple device tokens
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
	if err := checkBatch(tokens); err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return &service.BatchResult{}, nil
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.BatchResult{
		SuccessCount:  response.SuccessCount,
		FailureCount:  response.FailureCount,
		InvalidTokens: make([]string, 0),
	}
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			result.InvalidTokens = append(result.InvalidTokens, tokens[idx])
		}
	}

	return result, nil
}

func checkBatch(tokens []string) error {
	if len(tokens) > service.MaxNotificationBatch {
		return errors.Wrapf(ErrTooManyTokens, "%d (max %d)", len(tokens), service.MaxNotificationBatch)
	}

	return nil
}

// logNotificationService records notifications instead of sending them.
type logNotificationService struct {
	logger *slog.Logger
}

// NewLogNotificationService creates a sender that only logs, for development without Firebase.
func NewLogNotificationService(logger *slog.Logger) service.NotificationService {
	return &logNotificationService{logger: logger}
}

func (s *logNotificationService) SendBatchNotification(ctx context.Context, tokens []string, msg *service.PushMessage) (*service.BatchResult, error) {
	if err := checkBatch(tokens); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Push notification (log only)",
		slog.Int("tokens", len(tokens)),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
	)

	return &service.BatchResult{SuccessCount: len(tokens)}, nil
}
