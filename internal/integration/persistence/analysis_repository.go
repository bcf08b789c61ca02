package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/integration/persistence/model"
)

// analysisRepository implements the adapter.AnalysisRepository interface.
type analysisRepository struct {
	db *gorm.DB
}

// NewAnalysisRepository creates a new analysis repository instance.
func NewAnalysisRepository(db *gorm.DB) adapter.AnalysisRepository {
	return &analysisRepository{
		db: db,
	}
}

// Create stores a new analysis.
func (r *analysisRepository) Create(ctx context.Context, analysis *entity.AIAnalysis) error {
	analysisModel := model.AIAnalysisFromEntity(analysis)
	result := r.db.WithContext(ctx).Create(analysisModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindRecentByUser retrieves up to limit analyses for the user, newest first.
func (r *analysisRepository) FindRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AIAnalysis, error) {
	var analysisModels []model.AIAnalysisModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&analysisModels)
	if result.Error != nil {
		return nil, result.Error
	}

	analyses := make([]*entity.AIAnalysis, len(analysisModels))
	for i, am := range analysisModels {
		analyses[i] = am.ToEntity()
	}
	return analyses, nil
}
