package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mentorship/config"
	deliverycontext "mentorship/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	mw := NewRequestIDMiddleware(logger)

	t.Run("reuses client header", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-id")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := mw.Process(func(c echo.Context) error {
			assert.Equal(t, "client-id", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
			assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "client-id", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("generates when missing", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))

		_, err := uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.NoError(t, err)
	})

	t.Run("replaces oversized header", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", maxClientRequestIDLength+1))
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, mw.Process(func(echo.Context) error { return nil })(c))

		_, err := uuid.Parse(rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.NoError(t, err)
	})
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true
	mw := NewLoggerMiddleware(logger, cfg)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches/1/chat/ws?access_token=secret&page=2", nil)
	req.Header.Set(echo.HeaderUpgrade, "websocket")
	c := e.NewContext(req, httptest.NewRecorder())
	userID := uuid.New()

	err := mw.Handle(func(c echo.Context) error {
		deliverycontext.SetUserID(c, userID)

		return c.NoContent(http.StatusTeapot)
	})(c)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "user_id="+userID.String())
	assert.Contains(t, out, "websocket=true")
	assert.Contains(t, out, `query="page=2"`)
	assert.NotContains(t, out, "secret")
}

func TestLoggerMiddleware_DebugOff(t *testing.T) {
	var buf bytes.Buffer
	mw := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	require.NoError(t, mw.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))
	assert.Empty(t, buf.String())
}
