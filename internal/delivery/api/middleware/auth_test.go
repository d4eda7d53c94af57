package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mentorship/internal/domain/service"
	mockService "mentorship/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	validClaims := &service.Claims{UserID: userID, RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String()}}

	tests := []struct {
		name       string
		setup      func(req *http.Request, tokenSvc *mockService.MockTokenService)
		wantStatus int
		wantUser   bool
	}{
		{
			name: "valid bearer token",
			setup: func(req *http.Request, tokenSvc *mockService.MockTokenService) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer good")
				tokenSvc.EXPECT().ValidateAccessToken("good").Return(validClaims, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
		{
			name:       "missing header",
			setup:      func(*http.Request, *mockService.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong scheme",
			setup: func(req *http.Request, _ *mockService.MockTokenService) {
				req.Header.Set(echo.HeaderAuthorization, "Basic abc")
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			setup: func(req *http.Request, tokenSvc *mockService.MockTokenService) {
				req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
				tokenSvc.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "query token on websocket upgrade",
			setup: func(req *http.Request, tokenSvc *mockService.MockTokenService) {
				req.Header.Set(echo.HeaderUpgrade, "websocket")
				q := req.URL.Query()
				q.Set("access_token", "good")
				req.URL.RawQuery = q.Encode()
				tokenSvc.EXPECT().ValidateAccessToken("good").Return(validClaims, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantUser:   true,
		},
		{
			name: "query token ignored without upgrade",
			setup: func(req *http.Request, _ *mockService.MockTokenService) {
				req.URL.RawQuery = "access_token=good"
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockService.NewMockTokenService(t)
			mw := NewAuthMiddleware(tokenSvc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
			tt.setup(req, tokenSvc)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var gotUser uuid.UUID
			err := mw.Authenticate(func(c echo.Context) error {
				gotUser, _ = GetUserID(c)

				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantUser {
				assert.Equal(t, userID, gotUser)
			}
		})
	}
}
