// Package document contains document metadata use cases.
package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/application/usecase/usage"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// RegisterDocumentInput represents the input for registering a document record.
type RegisterDocumentInput struct {
	UserID      uuid.UUID
	Plan        entity.SubscriptionPlan
	PropertyID  *uuid.UUID
	Name        string
	ContentType string
	SizeBytes   int64
}

// RegisterDocumentOutput represents the output of registering a document record.
type RegisterDocumentOutput struct {
	Document *entity.Document
}

// RegisterDocumentUseCase records document metadata, gated by the
// subscription usage limits. File contents are stored elsewhere; only
// the metadata record counts against the quota.
type RegisterDocumentUseCase struct {
	documentRepo adapter.DocumentRepository
	propertyRepo adapter.PropertyRepository
	gate         *usage.CheckLimitsUseCase
}

// NewRegisterDocumentUseCase creates a new RegisterDocumentUseCase instance.
func NewRegisterDocumentUseCase(
	documentRepo adapter.DocumentRepository,
	propertyRepo adapter.PropertyRepository,
	gate *usage.CheckLimitsUseCase,
) *RegisterDocumentUseCase {
	return &RegisterDocumentUseCase{
		documentRepo: documentRepo,
		propertyRepo: propertyRepo,
		gate:         gate,
	}
}

// Execute registers a new document record after the usage gate allows it.
func (uc *RegisterDocumentUseCase) Execute(
	ctx context.Context,
	input RegisterDocumentInput,
) (*RegisterDocumentOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewDocumentError(
			domainerror.ErrCodeMissingDocumentName,
			"name is required",
			domainerror.ErrMissingDocumentName,
		)
	}

	allowed, err := uc.gate.Allow(ctx, input.UserID, input.Plan, usage.ResourceDocument)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domainerror.NewUsageError(
			domainerror.ErrCodeDocumentQuotaExceeded,
			"document limit reached for current plan",
			domainerror.ErrDocumentQuotaExceeded,
		)
	}

	if input.PropertyID != nil {
		if err := uc.verifyProperty(ctx, input.UserID, *input.PropertyID); err != nil {
			return nil, err
		}
	}

	document := entity.NewDocument(
		input.UserID,
		input.PropertyID,
		input.Name,
		input.ContentType,
		input.SizeBytes,
	)

	if err := uc.documentRepo.Create(ctx, document); err != nil {
		return nil, fmt.Errorf("failed to register document: %w", err)
	}

	return &RegisterDocumentOutput{Document: document}, nil
}

func (uc *RegisterDocumentUseCase) verifyProperty(ctx context.Context, userID, propertyID uuid.UUID) error {
	property, err := uc.propertyRepo.FindByID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPropertyNotFound) {
			return propertyNotFound()
		}
		return fmt.Errorf("failed to load property: %w", err)
	}

	if property.UserID != userID {
		return propertyNotFound()
	}

	return nil
}

func propertyNotFound() error {
	return domainerror.NewDocumentError(
		domainerror.ErrCodeDocPropertyNotFound,
		"property not found",
		domainerror.ErrDocumentPropertyNotFound,
	)
}
