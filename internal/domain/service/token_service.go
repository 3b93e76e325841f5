package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and validating the JWTs used
// by customers, POS devices and admins against the engine's HTTP surface.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given subject and roles.
	GenerateTokens(subjectID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
