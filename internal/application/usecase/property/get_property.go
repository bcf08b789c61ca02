// Package property contains property management use cases.
package property

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// GetPropertyInput represents the input for fetching one property.
type GetPropertyInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
}

// GetPropertyOutput represents the output of fetching one property.
type GetPropertyOutput struct {
	Property *entity.Property
}

// GetPropertyUseCase handles fetching a single property.
type GetPropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewGetPropertyUseCase creates a new GetPropertyUseCase instance.
func NewGetPropertyUseCase(propertyRepo adapter.PropertyRepository) *GetPropertyUseCase {
	return &GetPropertyUseCase{
		propertyRepo: propertyRepo,
	}
}

// Execute fetches a property owned by the user. A property owned by
// someone else is reported as not found.
func (uc *GetPropertyUseCase) Execute(
	ctx context.Context,
	input GetPropertyInput,
) (*GetPropertyOutput, error) {
	property, err := uc.propertyRepo.FindByID(ctx, input.PropertyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPropertyNotFound) {
			return nil, domainerror.NewPropertyError(
				domainerror.ErrCodePropertyNotFound,
				"property not found",
				domainerror.ErrPropertyNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load property: %w", err)
	}

	if property.UserID != input.UserID {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNotFound,
			"property not found",
			domainerror.ErrPropertyNotFound,
		)
	}

	return &GetPropertyOutput{Property: property}, nil
}
