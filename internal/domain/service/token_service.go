package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess is the value of the "type" claim on access tokens.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Type   string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// End-user tokens are issued by an external identity service; this one only
// validates them and mints development tokens.
type TokenService interface {
	// GenerateAccessToken creates an access token for a given user.
	GenerateAccessToken(userID uuid.UUID, ttl time.Duration) (string, error)

	// ValidateAccessToken checks the signature, expiry and type of an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
