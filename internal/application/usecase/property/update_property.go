// Package property contains property management use cases.
package property

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// UpdatePropertyInput represents the input for updating a property.
// Nil fields are left unchanged.
type UpdatePropertyInput struct {
	UserID         uuid.UUID
	PropertyID     uuid.UUID
	Name           *string
	Address        *string
	Type           *entity.PropertyType
	PurchasePrice  *decimal.Decimal
	EstimatedValue *decimal.Decimal
	MonthlyRent    *decimal.Decimal
	Units          *int
	OccupiedUnits  *int
}

// UpdatePropertyOutput represents the output of updating a property.
type UpdatePropertyOutput struct {
	Property *entity.Property
}

// UpdatePropertyUseCase handles property updates.
type UpdatePropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
}

// NewUpdatePropertyUseCase creates a new UpdatePropertyUseCase instance.
func NewUpdatePropertyUseCase(propertyRepo adapter.PropertyRepository) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{
		propertyRepo: propertyRepo,
	}
}

// Execute applies the changes to a property owned by the user.
func (uc *UpdatePropertyUseCase) Execute(
	ctx context.Context,
	input UpdatePropertyInput,
) (*UpdatePropertyOutput, error) {
	property, err := uc.propertyRepo.FindByID(ctx, input.PropertyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPropertyNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to load property: %w", err)
	}

	if property.UserID != input.UserID {
		return nil, notFound()
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewPropertyError(
				domainerror.ErrCodeMissingPropertyName,
				"name must not be empty",
				domainerror.ErrMissingPropertyName,
			)
		}
		property.Name = *input.Name
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.Type != nil {
		property.Type = *input.Type
	}
	if input.PurchasePrice != nil {
		if input.PurchasePrice.IsNegative() {
			return nil, domainerror.NewPropertyError(
				domainerror.ErrCodeInvalidPurchasePrice,
				"purchase_price must not be negative",
				domainerror.ErrInvalidPurchasePrice,
			)
		}
		property.PurchasePrice = *input.PurchasePrice
	}
	if input.EstimatedValue != nil {
		property.EstimatedValue = input.EstimatedValue
	}
	if input.MonthlyRent != nil {
		property.MonthlyRent = input.MonthlyRent
	}
	if input.Units != nil {
		if *input.Units < 1 {
			return nil, domainerror.NewPropertyError(
				domainerror.ErrCodeInvalidPropertyUnits,
				"units must be at least 1",
				domainerror.ErrInvalidPropertyUnits,
			)
		}
		property.Units = *input.Units
	}
	if input.OccupiedUnits != nil {
		property.OccupiedUnits = input.OccupiedUnits
	}
	property.UpdatedAt = time.Now().UTC()

	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	return &UpdatePropertyOutput{Property: property}, nil
}

func notFound() error {
	return domainerror.NewPropertyError(
		domainerror.ErrCodePropertyNotFound,
		"property not found",
		domainerror.ErrPropertyNotFound,
	)
}
