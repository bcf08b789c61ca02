package transaction

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

// UpdateTransactionInput represents the input for updating a ledger entry.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Type          *entity.TransactionType
	Amount        *decimal.Decimal
	Category      *string
	Description   *string
	Notes         *string
	Date          *time.Time
	TaxCategory   *string
}

// UpdateTransactionOutput represents the output of updating a ledger entry.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles ledger entry updates.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute applies the non-nil fields to a ledger entry owned by the user.
// Amounts are re-normalized to their absolute value, so updating the type
// keeps the sign convention intact.
func (uc *UpdateTransactionUseCase) Execute(
	ctx context.Context,
	input UpdateTransactionInput,
) (*UpdateTransactionOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFound()
		}
		return nil, fmt.Errorf("failed to load transaction: %w", err)
	}

	if txn.UserID != input.UserID {
		return nil, notFound()
	}

	if input.Type != nil {
		txn.Type = *input.Type
	}
	if input.Amount != nil {
		txn.Amount = input.Amount.Abs()
	}
	if input.Category != nil {
		txn.Category = *input.Category
	}
	if input.Description != nil {
		txn.Description = *input.Description
	}
	if input.Notes != nil {
		txn.Notes = *input.Notes
	}
	if input.Date != nil {
		txn.Date = *input.Date
	}
	if input.TaxCategory != nil {
		txn.TaxCategory = input.TaxCategory
	}
	txn.Category = txn.CategoryOrDefault()
	txn.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: txn}, nil
}

// validateInput validates the input parameters.
func (uc *UpdateTransactionUseCase) validateInput(input UpdateTransactionInput) error {
	if input.Type != nil && !input.Type.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be income or expense",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Date != nil && input.Date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date must not be zero",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	return nil
}

func notFound() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}
