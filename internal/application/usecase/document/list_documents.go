package document

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
)

// ListDocumentsInput represents the input for listing document records.
type ListDocumentsInput struct {
	UserID uuid.UUID
}

// ListDocumentsOutput represents the output of listing document records.
type ListDocumentsOutput struct {
	Documents []*entity.Document
}

// ListDocumentsUseCase handles document record listing.
type ListDocumentsUseCase struct {
	documentRepo adapter.DocumentRepository
}

// NewListDocumentsUseCase creates a new ListDocumentsUseCase instance.
func NewListDocumentsUseCase(documentRepo adapter.DocumentRepository) *ListDocumentsUseCase {
	return &ListDocumentsUseCase{
		documentRepo: documentRepo,
	}
}

// Execute lists the user's document records, newest first.
func (uc *ListDocumentsUseCase) Execute(
	ctx context.Context,
	input ListDocumentsInput,
) (*ListDocumentsOutput, error) {
	documents, err := uc.documentRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return &ListDocumentsOutput{Documents: documents}, nil
}
