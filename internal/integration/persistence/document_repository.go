package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/integration/persistence/model"
)

// documentRepository implements the adapter.DocumentRepository interface.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository instance.
func NewDocumentRepository(db *gorm.DB) adapter.DocumentRepository {
	return &documentRepository{
		db: db,
	}
}

// Create stores a new document metadata record.
func (r *documentRepository) Create(ctx context.Context, document *entity.Document) error {
	documentModel := model.DocumentFromEntity(document)
	result := r.db.WithContext(ctx).Create(documentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves all document records for a user, newest first.
func (r *documentRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Document, error) {
	var documentModels []model.DocumentModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&documentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	documents := make([]*entity.Document, len(documentModels))
	for i, dm := range documentModels {
		documents[i] = dm.ToEntity()
	}
	return documents, nil
}

// Delete removes a document record.
func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.DocumentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDocumentNotFound
	}
	return nil
}
