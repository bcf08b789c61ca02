// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// UsageCounter supplies live resource counts for the usage limit gate.
// Counts are always fetched at check time; implementations must not cache.
type UsageCounter interface {
	// CountProperties returns the user's current property count.
	CountProperties(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountTransactions returns the user's current transaction count.
	CountTransactions(ctx context.Context, userID uuid.UUID) (int64, error)

	// CountDocuments returns the user's current document count.
	CountDocuments(ctx context.Context, userID uuid.UUID) (int64, error)
}
