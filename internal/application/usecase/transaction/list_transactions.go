package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing ledger entries.
// All filters besides UserID are optional.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Type       *entity.TransactionType
}

// ListTransactionsOutput represents the output of listing ledger entries.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles ledger entry listing with optional filters.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute lists the user's ledger entries, most recent first.
func (uc *ListTransactionsUseCase) Execute(
	ctx context.Context,
	input ListTransactionsInput,
) (*ListTransactionsOutput, error) {
	if input.Type != nil && !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be income or expense",
			domainerror.ErrInvalidTransactionType,
		)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		UserID:     input.UserID,
		PropertyID: input.PropertyID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Type:       input.Type,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Transactions: transactions}, nil
}
