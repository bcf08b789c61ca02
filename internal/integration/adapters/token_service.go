package adapters

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rentfolio/backend/internal/application/adapter"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

const (
	accessTokenDuration  = 15 * time.Minute
	refreshTokenDuration = 7 * 24 * time.Hour

	refreshKeyPrefix = "refresh:"
)

// AccessClaims represents the claims carried by an access token.
type AccessClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
//
// Access tokens are stateless JWTs. Refresh tokens are opaque random
// strings held in Redis with a TTL, so revocation takes effect
// immediately and expiry needs no sweeper.
type tokenService struct {
	secret []byte
	redis  *redis.Client
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, redisClient *redis.Client) adapter.TokenService {
	return &tokenService{
		secret: []byte(secret),
		redis:  redisClient,
	}
}

// GenerateTokenPair issues a new access and refresh token pair.
func (s *tokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string) (*adapter.TokenPair, error) {
	accessToken, err := s.generateAccessToken(userID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := generateOpaqueToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	key := refreshKeyPrefix + refreshToken
	value := userID.String() + "|" + email
	if err := s.redis.Set(ctx, key, value, refreshTokenDuration).Err(); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &adapter.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(accessTokenDuration.Seconds()),
	}, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	claims := &AccessClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeExpiredToken,
				"token has expired",
				domainerror.ErrExpiredToken,
			)
		}
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token",
			domainerror.ErrInvalidToken,
		)
	}

	if !parsed.Valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token",
			domainerror.ErrInvalidToken,
		)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid user ID in token",
			domainerror.ErrInvalidToken,
		)
	}

	return &adapter.TokenClaims{
		UserID: userID,
		Email:  claims.Email,
	}, nil
}

// RefreshTokenPair validates a refresh token, revokes it, and issues a
// new pair.
func (s *tokenService) RefreshTokenPair(ctx context.Context, refreshToken string) (*adapter.TokenPair, error) {
	key := refreshKeyPrefix + refreshToken

	value, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeRevokedToken,
				"refresh token is expired or revoked",
				domainerror.ErrRevokedToken,
			)
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	userID, email, err := parseRefreshValue(value)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"malformed refresh token record",
			domainerror.ErrInvalidToken,
		)
	}

	// Rotation: the presented token is revoked even if issuing the new
	// pair fails, so it can never be replayed.
	if err := s.redis.Del(ctx, key).Err(); err != nil {
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.GenerateTokenPair(ctx, userID, email)
}

// RevokeRefreshToken invalidates a refresh token. Revoking an unknown
// token is not an error.
func (s *tokenService) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	if err := s.redis.Del(ctx, refreshKeyPrefix+refreshToken).Err(); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

func (s *tokenService) generateAccessToken(userID uuid.UUID, email string) (string, error) {
	now := time.Now().UTC()
	claims := AccessClaims{
		UserID: userID.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func generateOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func parseRefreshValue(value string) (uuid.UUID, string, error) {
	for i := 0; i < len(value); i++ {
		if value[i] == '|' {
			userID, err := uuid.Parse(value[:i])
			if err != nil {
				return uuid.Nil, "", err
			}
			return userID, value[i+1:], nil
		}
	}
	return uuid.Nil, "", fmt.Errorf("missing separator")
}
