// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for fetching ledger entries.
// StartDate is inclusive, EndDate exclusive, matching the half-open
// period convention used by the report builders.
type TransactionFilter struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Type       *entity.TransactionType
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves all transactions matching the filter, sorted
	// by date descending. Builders that need ascending order re-sort
	// internally; callers should not rely on more than "all matching rows
	// present".
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error
}
