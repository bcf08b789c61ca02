// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// DocumentRepository defines the interface for document metadata persistence.
type DocumentRepository interface {
	// Create stores a new document metadata record.
	Create(ctx context.Context, document *entity.Document) error

	// FindByUser retrieves all document records for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Document, error)

	// Delete removes a document record.
	Delete(ctx context.Context, id uuid.UUID) error
}
