// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// SnapshotRepository defines the interface for persisted property snapshots.
type SnapshotRepository interface {
	// Create stores a new snapshot.
	Create(ctx context.Context, snapshot *entity.PropertySnapshot) error

	// FindByProperties retrieves snapshots for the given properties
	// captured at or after since, sorted ascending by capture time.
	FindByProperties(ctx context.Context, propertyIDs []uuid.UUID, since time.Time) ([]*entity.PropertySnapshot, error)
}
