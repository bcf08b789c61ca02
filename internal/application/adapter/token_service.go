// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// TokenPair holds a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // Access token lifetime in seconds
}

// TokenClaims holds the identity carried by a validated access token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenService defines the interface for issuing and validating tokens.
// Refresh tokens are stateful: they can be revoked before expiry.
type TokenService interface {
	// GenerateTokenPair issues a new access and refresh token pair.
	GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*TokenPair, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)

	// RefreshTokenPair validates a refresh token, revokes it, and issues a
	// new pair.
	RefreshTokenPair(ctx context.Context, refreshToken string) (*TokenPair, error)

	// RevokeRefreshToken invalidates a refresh token (logout).
	RevokeRefreshToken(ctx context.Context, refreshToken string) error
}
