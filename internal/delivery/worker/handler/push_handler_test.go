package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mentorship/config"
	"mentorship/internal/domain/constants"
	"mentorship/internal/domain/service"
	mockUsecase "mentorship/internal/mocks/usecase"
	"mentorship/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func createTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockNotificationUsecase) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notificationUC,
	})

	return h, notificationUC
}

func newTestEvent() *service.MatchEvent {
	return &service.MatchEvent{
		RequestID:   "req-from-event",
		EventID:     uuid.NewString(),
		Type:        service.EventMentorshipRequested,
		MatchID:     uuid.NewString(),
		ActorID:     uuid.NewString(),
		RecipientID: uuid.NewString(),
	}
}

func newPushRequest(t *testing.T, event *service.MatchEvent, attributes map[string]string) *http.Request {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestPushHandler_HandlePush(t *testing.T) {
	event := newTestEvent()

	tests := []struct {
		name       string
		result     *usecase.NotificationResult
		err        error
		wantStatus int
	}{
		{"delivered", &usecase.NotificationResult{Devices: 2, Sent: 2}, nil, http.StatusOK},
		{"retryable failure", nil, usecase.NewRetryableError(errors.New("db down")), http.StatusServiceUnavailable},
		{"permanent failure", nil, errors.New("bad recipient"), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notificationUC := createTestPushHandler(t, nil)

			notificationUC.EXPECT().
				HandleMatchEvent(mock.Anything, mock.MatchedBy(func(got *service.MatchEvent) bool {
					return got.EventID == event.EventID && got.RecipientID == event.RecipientID
				})).
				Return(tt.result, tt.err).Once()

			rec := httptest.NewRecorder()
			c := echo.New().NewContext(newPushRequest(t, event, nil), rec)

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_BadPayload(t *testing.T) {
	h, _ := createTestPushHandler(t, nil)

	body := `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("not json")) + `"}}`
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:     constants.PubSubProviderGoogle,
		PushAudience: "https://worker.example.com/push",
	}}
	cfg.Env.Env = constants.EnvProduction

	t.Run("missing token", func(t *testing.T) {
		h, _ := createTestPushHandler(t, cfg)
		rec := httptest.NewRecorder()

		require.NoError(t, h.HandlePush(echo.New().NewContext(newPushRequest(t, newTestEvent(), nil), rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token uses configured audience", func(t *testing.T) {
		h, notificationUC := createTestPushHandler(t, cfg)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "signed", token)
			assert.Equal(t, "https://worker.example.com/push", audience)

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		notificationUC.EXPECT().HandleMatchEvent(mock.Anything, mock.Anything).Return(&usecase.NotificationResult{}, nil).Once()

		req := newPushRequest(t, newTestEvent(), nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer signed")
		rec := httptest.NewRecorder()

		require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		h, _ := createTestPushHandler(t, cfg)
		h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
		}

		req := newPushRequest(t, newTestEvent(), nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer signed")
		rec := httptest.NewRecorder()

		require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestResolveRequestID(t *testing.T) {
	event := newTestEvent()

	assert.Equal(t, "from-attr", ResolveRequestID(context.Background(), map[string]string{constants.AttrRequestID: "from-attr"}, event))
	assert.Equal(t, "req-from-event", ResolveRequestID(context.Background(), nil, event))

	event.RequestID = ""
	_, err := uuid.Parse(ResolveRequestID(context.Background(), nil, event))
	assert.NoError(t, err)
}
