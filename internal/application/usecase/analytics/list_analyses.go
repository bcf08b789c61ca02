// Package analytics contains portfolio analytics use cases.
package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
)

// analysisHistoryLimit caps the AI history projection.
const analysisHistoryLimit = 20

// ListAnalysesInput represents the input for the AI analysis history.
type ListAnalysesInput struct {
	UserID uuid.UUID
}

// ListAnalysesOutput is a read-shaping of the stored analyses, newest
// first. No computation happens here.
type ListAnalysesOutput struct {
	Analyses []*entity.AIAnalysis `json:"analyses"`
}

// ListAnalysesUseCase returns the most recent stored AI analyses.
type ListAnalysesUseCase struct {
	analysisRepo adapter.AnalysisRepository
}

// NewListAnalysesUseCase creates a new ListAnalysesUseCase instance.
func NewListAnalysesUseCase(analysisRepo adapter.AnalysisRepository) *ListAnalysesUseCase {
	return &ListAnalysesUseCase{
		analysisRepo: analysisRepo,
	}
}

// Execute returns up to the 20 most recent analyses for the user.
func (uc *ListAnalysesUseCase) Execute(ctx context.Context, input ListAnalysesInput) (*ListAnalysesOutput, error) {
	analyses, err := uc.analysisRepo.FindRecentByUser(ctx, input.UserID, analysisHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analyses: %w", err)
	}

	return &ListAnalysesOutput{Analyses: analyses}, nil
}
