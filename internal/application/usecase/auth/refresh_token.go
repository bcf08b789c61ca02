package auth

import (
	"context"

	"github.com/rentfolio/backend/internal/application/adapter"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// RefreshTokenInput represents the input for refreshing a token pair.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput represents the output of refreshing a token pair.
type RefreshTokenOutput struct {
	Tokens *adapter.TokenPair
}

// RefreshTokenUseCase handles refresh token rotation.
type RefreshTokenUseCase struct {
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokenService: tokenService,
	}
}

// Execute rotates the refresh token, revoking the presented one and
// issuing a fresh pair.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeMissingToken,
			"refresh token is required",
			nil,
		)
	}

	tokens, err := uc.tokenService.RefreshTokenPair(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}

	return &RefreshTokenOutput{Tokens: tokens}, nil
}
