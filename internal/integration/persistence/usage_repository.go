package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/integration/persistence/model"
)

// usageRepository implements the adapter.UsageCounter interface with live
// COUNT queries. Nothing is cached; the gate re-counts on every check.
type usageRepository struct {
	db *gorm.DB
}

// NewUsageRepository creates a new usage counter instance.
func NewUsageRepository(db *gorm.DB) adapter.UsageCounter {
	return &usageRepository{
		db: db,
	}
}

// CountProperties returns the user's current property count.
func (r *usageRepository) CountProperties(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(ctx, &model.PropertyModel{}, userID)
}

// CountTransactions returns the user's current transaction count.
func (r *usageRepository) CountTransactions(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(ctx, &model.TransactionModel{}, userID)
}

// CountDocuments returns the user's current document count.
func (r *usageRepository) CountDocuments(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.count(ctx, &model.DocumentModel{}, userID)
}

func (r *usageRepository) count(ctx context.Context, tableModel any, userID uuid.UUID) (int64, error) {
	var total int64
	result := r.db.WithContext(ctx).
		Model(tableModel).
		Where("user_id = ?", userID).
		Count(&total)
	if result.Error != nil {
		return 0, result.Error
	}
	return total, nil
}
