// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// PropertyRepository defines the interface for property persistence operations.
type PropertyRepository interface {
	// Create creates a new property in the database.
	Create(ctx context.Context, property *entity.Property) error

	// FindByID retrieves a property by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// FindByUser retrieves all properties for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Property, error)

	// Update persists changes to an existing property.
	Update(ctx context.Context, property *entity.Property) error

	// Delete removes a property.
	Delete(ctx context.Context, id uuid.UUID) error
}
