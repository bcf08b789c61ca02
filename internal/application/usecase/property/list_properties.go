// Package property contains property management use cases.
package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
)

// ListPropertiesInput represents the input for listing properties.
type ListPropertiesInput struct {
	UserID uuid.UUID
}

// ListPropertiesOutput represents the output of listing properties.
type ListPropertiesOutput struct {
	Properties []*entity.Property
}

// ListPropertiesUseCase handles listing a user's properties.
type ListPropertiesUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewListPropertiesUseCase creates a new ListPropertiesUseCase instance.
func NewListPropertiesUseCase(propertyRepo adapter.PropertyRepository) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{
		propertyRepo: propertyRepo,
	}
}

// Execute lists all properties belonging to the user.
func (uc *ListPropertiesUseCase) Execute(
	ctx context.Context,
	input ListPropertiesInput,
) (*ListPropertiesOutput, error) {
	properties, err := uc.propertyRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	return &ListPropertiesOutput{Properties: properties}, nil
}
