package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating session tokens.
// This abstracts the JWT implementation away from the application layer.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns the user ID it was issued for.
	ValidateAccessToken(tokenString string) (uuid.UUID, error)

	// ValidateRefreshToken checks a refresh token and returns the user ID it was issued for.
	ValidateRefreshToken(tokenString string) (uuid.UUID, error)

	// HashToken returns the hash under which a raw refresh token is persisted.
	HashToken(token string) string

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
