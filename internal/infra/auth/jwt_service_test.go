package auth

import (
	"testing"
	"time"

	"mentorship/config"
	"mentorship/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret, issuer string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{Issuer: issuer}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", "mentorship"))
	require.NoError(t, err)

	userID := uuid.New()

	token, err := jwtService.GenerateAccessToken(userID, time.Minute)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
	assert.Equal(t, "mentorship", claims.Issuer)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", ""))
	assert.Error(t, err)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(newTestConfig(secret, ""))
	require.NoError(t, err)

	other, err := NewJWTService(newTestConfig("another_secret_key_very_long_for_testing", ""))
	require.NoError(t, err)

	userID := uuid.New()
	foreign, err := other.GenerateAccessToken(userID, time.Minute)
	require.NoError(t, err)

	expired, err := jwtService.GenerateAccessToken(userID, -time.Minute)
	require.NoError(t, err)

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		Type: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	refreshToken, err := refresh.SignedString([]byte(secret))
	require.NoError(t, err)

	badSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	badSubjectToken, err := badSubject.SignedString([]byte(secret))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "garbage", token: "invalid.token.here", wantErr: ErrInvalidToken},
		{name: "foreign signature", token: foreign, wantErr: ErrInvalidToken},
		{name: "expired", token: expired, wantErr: ErrInvalidToken},
		{name: "refresh type", token: refreshToken, wantErr: ErrWrongTokenType},
		{name: "bad subject", token: badSubjectToken, wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := jwtService.ValidateAccessToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestJWTService_IssuerMismatch(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	issuing, err := NewJWTService(newTestConfig(secret, "someone-else"))
	require.NoError(t, err)
	validating, err := NewJWTService(newTestConfig(secret, "mentorship"))
	require.NoError(t, err)

	token, err := issuing.GenerateAccessToken(uuid.New(), time.Minute)
	require.NoError(t, err)

	_, err = validating.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
