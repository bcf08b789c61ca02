// Package property contains property management use cases.
package property

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// DeletePropertyInput represents the input for deleting a property.
type DeletePropertyInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
}

// DeletePropertyUseCase handles property deletion.
type DeletePropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewDeletePropertyUseCase creates a new DeletePropertyUseCase instance.
func NewDeletePropertyUseCase(propertyRepo adapter.PropertyRepository) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{
		propertyRepo: propertyRepo,
	}
}

// Execute deletes a property owned by the user.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, input DeletePropertyInput) error {
	property, err := uc.propertyRepo.FindByID(ctx, input.PropertyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPropertyNotFound) {
			return notFound()
		}
		return fmt.Errorf("failed to load property: %w", err)
	}

	if property.UserID != input.UserID {
		return notFound()
	}

	if err := uc.propertyRepo.Delete(ctx, property.ID); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	return nil
}
