package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mentorship/config"
	"mentorship/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutCredentialsUsesLogSender(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := New(context.Background(), &config.Config{}, logger)
	require.NoError(t, err)
	assert.IsType(t, &logNotificationService{}, svc)
}

func TestLogNotificationService_SendBatchNotification(t *testing.T) {
	svc := NewLogNotificationService(slog.New(slog.NewTextHandler(io.Discard, nil)))
	msg := &service.PushMessage{Title: "New message", Body: "hi"}

	result, err := svc.SendBatchNotification(context.Background(), []string{"a", "b"}, msg)
	require.NoError(t, err)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Zero(t, result.FailureCount)

	tooMany := make([]string, service.MaxNotificationBatch+1)
	_, err = svc.SendBatchNotification(context.Background(), tooMany, msg)
	assert.ErrorIs(t, err, ErrTooManyTokens)
}
