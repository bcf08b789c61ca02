// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// PortfolioSummary is the numeric context handed to the analysis service.
type PortfolioSummary struct {
	TotalProperties int
	TotalIncome     decimal.Decimal
	TotalExpenses   decimal.Decimal
	MonthlyIncome   decimal.Decimal
	OccupancyRate   decimal.Decimal
}

// AnalysisResult is the output of the AI analysis service.
type AnalysisResult struct {
	Summary string
	Model   string
}

// PortfolioAnalysisService generates a written analysis of a landlord's
// portfolio from its summary figures.
type PortfolioAnalysisService interface {
	// IsAvailable reports whether the service is configured.
	IsAvailable() bool

	// Analyze produces a portfolio analysis.
	Analyze(ctx context.Context, summary PortfolioSummary) (*AnalysisResult, error)
}
