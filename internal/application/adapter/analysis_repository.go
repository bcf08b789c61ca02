// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// AnalysisRepository defines the interface for stored AI analyses.
type AnalysisRepository interface {
	// Create stores a new analysis.
	Create(ctx context.Context, analysis *entity.AIAnalysis) error

	// FindRecentByUser retrieves up to limit analyses for the user,
	// newest first.
	FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AIAnalysis, error)
}
