// Package transaction contains ledger entry management use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/application/usecase/usage"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for recording a ledger entry.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Plan        entity.SubscriptionPlan
	PropertyID  *uuid.UUID
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Category    string
	Description string
	Notes       string
	Date        time.Time
	TaxCategory *string
}

// CreateTransactionOutput represents the output of recording a ledger entry.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles ledger entry creation, gated by the
// subscription usage limits.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	propertyRepo    adapter.PropertyRepository
	gate            *usage.CheckLimitsUseCase
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	propertyRepo adapter.PropertyRepository,
	gate *usage.CheckLimitsUseCase,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		propertyRepo:    propertyRepo,
		gate:            gate,
	}
}

// Execute records a new ledger entry after the usage gate allows it. When
// a property is referenced it must exist and belong to the user.
func (uc *CreateTransactionUseCase) Execute(
	ctx context.Context,
	input CreateTransactionInput,
) (*CreateTransactionOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	allowed, err := uc.gate.Allow(ctx, input.UserID, input.Plan, usage.ResourceTransaction)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domainerror.NewUsageError(
			domainerror.ErrCodeTransactionQuotaExceeded,
			"transaction limit reached for current plan",
			domainerror.ErrTransactionQuotaExceeded,
		)
	}

	if input.PropertyID != nil {
		if err := uc.verifyProperty(ctx, input.UserID, *input.PropertyID); err != nil {
			return nil, err
		}
	}

	txn := entity.NewTransaction(
		input.UserID,
		input.PropertyID,
		input.Type,
		input.Amount,
		input.Category,
		input.Description,
		input.Notes,
		input.Date,
		input.TaxCategory,
	)

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}

// validateInput validates the input parameters.
func (uc *CreateTransactionUseCase) validateInput(input CreateTransactionInput) error {
	if !input.Type.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be income or expense",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	return nil
}

func (uc *CreateTransactionUseCase) verifyProperty(ctx context.Context, userID, propertyID uuid.UUID) error {
	property, err := uc.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPropertyNotFound) {
			return propertyNotFound()
		}
		return fmt.Errorf("failed to load property: %w", err)
	}

	if property.UserID != userID {
		return propertyNotFound()
	}

	return nil
}

func propertyNotFound() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTxnPropertyNotFound,
		"property not found",
		domainerror.ErrTransactionPropertyNotFound,
	)
}
