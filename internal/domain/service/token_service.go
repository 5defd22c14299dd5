package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of an access token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenService issues and resolves bearer tokens.
type TokenService interface {
	// GenerateToken issues a signed token for userID that expires after TTL.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken parses and verifies a token, reporting why it was rejected.
	ValidateToken(tokenString string) (*Claims, error)

	// Resolve returns the user id carried by a valid token. Every failure
	// collapses to false so callers cannot tell causes apart.
	Resolve(tokenString string) (uuid.UUID, bool)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
