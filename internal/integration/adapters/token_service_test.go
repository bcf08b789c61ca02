package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

func newTestTokenService(t *testing.T) (*tokenService, *miniredis.Miniredis) {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	svc := NewTokenService("unit-test-secret", client).(*tokenService)
	return svc, mini
}

func TestTokenServiceRoundTrip(t *testing.T) {
	svc, _ := newTestTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(ctx, userID, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be issued")
	}
	if pair.ExpiresIn != int64(accessTokenDuration.Seconds()) {
		t.Errorf("unexpected expiry: %d", pair.ExpiresIn)
	}

	claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != userID || claims.Email != "user@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestTokenService(t)

	_, err := svc.ValidateAccessToken(context.Background(), "not-a-jwt")

	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestValidateAccessTokenRejectsWrongSecret(t *testing.T) {
	svc, _ := newTestTokenService(t)
	other, _ := newTestTokenService(t)
	other.secret = []byte("a-different-secret")

	pair, err := other.GenerateTokenPair(context.Background(), uuid.New(), "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ValidateAccessToken(context.Background(), pair.AccessToken); err == nil {
		t.Fatal("expected a signature mismatch to be rejected")
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _ := newTestTokenService(t)
	ctx := context.Background()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(ctx, userID, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rotated, err := svc.RefreshTokenPair(ctx, pair.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rotated.RefreshToken == pair.RefreshToken {
		t.Error("rotation must issue a fresh refresh token")
	}

	claims, err := svc.ValidateAccessToken(ctx, rotated.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("identity must survive rotation, got %s", claims.UserID)
	}

	// The presented token was revoked and cannot be replayed.
	_, err = svc.RefreshTokenPair(ctx, pair.RefreshToken)
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeRevokedToken {
		t.Fatalf("expected revoked token error, got %v", err)
	}
}

func TestRefreshTokenExpiry(t *testing.T) {
	svc, mini := newTestTokenService(t)
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, uuid.New(), "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mini.FastForward(refreshTokenDuration + 1)

	_, err = svc.RefreshTokenPair(ctx, pair.RefreshToken)
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) || authErr.Code != domainerror.ErrCodeRevokedToken {
		t.Fatalf("expected revoked token error after expiry, got %v", err)
	}
}

func TestRevokeRefreshToken(t *testing.T) {
	svc, _ := newTestTokenService(t)
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, uuid.New(), "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.RevokeRefreshToken(ctx, pair.RefreshToken); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.RefreshTokenPair(ctx, pair.RefreshToken); err == nil {
		t.Fatal("expected revoked token to be rejected")
	}

	t.Run("revoking an unknown token is not an error", func(t *testing.T) {
		if err := svc.RevokeRefreshToken(ctx, "never-issued"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
