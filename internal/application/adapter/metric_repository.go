// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// MetricFilter defines filter options for fetching metric samples.
type MetricFilter struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	Type       *entity.MetricType
	Since      *time.Time
}

// MetricRepository defines the interface for the pre-computed metric store.
type MetricRepository interface {
	// Create stores a new metric sample.
	Create(ctx context.Context, entry *entity.MetricEntry) error

	// FindByFilter retrieves metric samples matching the filter, sorted
	// ascending by date.
	FindByFilter(ctx context.Context, filter MetricFilter) ([]*entity.MetricEntry, error)
}
