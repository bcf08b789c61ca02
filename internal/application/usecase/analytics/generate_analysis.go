// Package analytics contains portfolio analytics use cases.
package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
)

// GenerateAnalysisInput represents the input for generating a portfolio
// analysis.
type GenerateAnalysisInput struct {
	UserID uuid.UUID
}

// GenerateAnalysisOutput holds the stored analysis.
type GenerateAnalysisOutput struct {
	Analysis *entity.AIAnalysis `json:"analysis"`
}

// GenerateAnalysisUseCase asks the analysis service for a written
// portfolio review and stores the result, from where the history
// projection serves it.
type GenerateAnalysisUseCase struct {
	overview     *GetOverviewUseCase
	aiService    adapter.PortfolioAnalysisService
	analysisRepo adapter.AnalysisRepository
}

// NewGenerateAnalysisUseCase creates a new GenerateAnalysisUseCase instance.
func NewGenerateAnalysisUseCase(
	overview *GetOverviewUseCase,
	aiService adapter.PortfolioAnalysisService,
	analysisRepo adapter.AnalysisRepository,
) *GenerateAnalysisUseCase {
	return &GenerateAnalysisUseCase{
		overview:     overview,
		aiService:    aiService,
		analysisRepo: analysisRepo,
	}
}

// Execute generates and stores a new portfolio analysis.
func (uc *GenerateAnalysisUseCase) Execute(ctx context.Context, input GenerateAnalysisInput) (*GenerateAnalysisOutput, error) {
	if uc.aiService == nil || !uc.aiService.IsAvailable() {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeAIServiceUnavailable,
			"ai analysis service is not configured",
			domainerror.ErrAIServiceUnavailable,
		)
	}

	overview, err := uc.overview.Execute(ctx, GetOverviewInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	result, err := uc.aiService.Analyze(ctx, adapter.PortfolioSummary{
		TotalProperties: overview.TotalProperties,
		TotalIncome:     overview.TotalIncome,
		TotalExpenses:   overview.TotalExpenses,
		MonthlyIncome:   overview.MonthlyIncome,
		OccupancyRate:   overview.OccupancyRate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate analysis: %w", err)
	}

	analysis := entity.NewAIAnalysis(input.UserID, nil, result.Summary, result.Model)
	if err := uc.analysisRepo.Create(ctx, analysis); err != nil {
		return nil, fmt.Errorf("failed to store analysis: %w", err)
	}

	return &GenerateAnalysisOutput{Analysis: analysis}, nil
}
