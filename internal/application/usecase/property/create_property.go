// Package property contains property management use cases.
package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/application/usecase/usage"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// CreatePropertyInput represents the input for creating a property.
type CreatePropertyInput struct {
	UserID         uuid.UUID
	Plan           entity.SubscriptionPlan
	Name           string
	Address        string
	Type           entity.PropertyType
	PurchasePrice  decimal.Decimal
	EstimatedValue *decimal.Decimal
	MonthlyRent    *decimal.Decimal
	Units          int
	OccupiedUnits  *int
}

// CreatePropertyOutput represents the output of creating a property.
type CreatePropertyOutput struct {
	Property *entity.Property
}

// CreatePropertyUseCase handles property creation, gated by the
// subscription usage limits.
type CreatePropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
	gate         *usage.CheckLimitsUseCase
}

// NewCreatePropertyUseCase creates a new CreatePropertyUseCase instance.
func NewCreatePropertyUseCase(
	propertyRepo adapter.PropertyRepository,
	gate *usage.CheckLimitsUseCase,
) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		propertyRepo: propertyRepo,
		gate:         gate,
	}
}

// Execute creates a new property after the usage gate allows it.
func (uc *CreatePropertyUseCase) Execute(
	ctx context.Context,
	input CreatePropertyInput,
) (*CreatePropertyOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	allowed, err := uc.gate.Allow(ctx, input.UserID, input.Plan, usage.ResourceProperty)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domainerror.NewUsageError(
			domainerror.ErrCodePropertyQuotaExceeded,
			"property limit reached for current plan",
			domainerror.ErrPropertyQuotaExceeded,
		)
	}

	property := entity.NewProperty(
		input.UserID,
		input.Name,
		input.Address,
		input.Type,
		input.PurchasePrice,
		input.EstimatedValue,
		input.MonthlyRent,
		input.Units,
		input.OccupiedUnits,
	)

	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	return &CreatePropertyOutput{Property: property}, nil
}

// validateInput validates the input parameters.
func (uc *CreatePropertyUseCase) validateInput(input CreatePropertyInput) error {
	if input.Name == "" {
		return domainerror.NewPropertyError(
			domainerror.ErrCodeMissingPropertyName,
			"name is required",
			domainerror.ErrMissingPropertyName,
		)
	}

	if input.PurchasePrice.IsNegative() {
		return domainerror.NewPropertyError(
			domainerror.ErrCodeInvalidPurchasePrice,
			"purchase_price must not be negative",
			domainerror.ErrInvalidPurchasePrice,
		)
	}

	if input.Units < 0 {
		return domainerror.NewPropertyError(
			domainerror.ErrCodeInvalidPropertyUnits,
			"units must be at least 1",
			domainerror.ErrInvalidPropertyUnits,
		)
	}

	return nil
}
