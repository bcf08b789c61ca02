package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// AIAnalysisModel represents the ai_analyses table in the database.
type AIAnalysisModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	PropertyID *uuid.UUID `gorm:"type:uuid;index"`
	Summary    string     `gorm:"type:text;not null"`
	Model      string     `gorm:"type:varchar(100);not null"`
	CreatedAt  time.Time  `gorm:"not null;index"`
}

// TableName returns the table name for the AIAnalysisModel.
func (AIAnalysisModel) TableName() string {
	return "ai_analyses"
}

// ToEntity converts an AIAnalysisModel to a domain AIAnalysis entity.
func (m *AIAnalysisModel) ToEntity() *entity.AIAnalysis {
	return &entity.AIAnalysis{
		ID:         m.ID,
		UserID:     m.UserID,
		PropertyID: m.PropertyID,
		Summary:    m.Summary,
		Model:      m.Model,
		CreatedAt:  m.CreatedAt,
	}
}

// AIAnalysisFromEntity creates an AIAnalysisModel from a domain AIAnalysis entity.
func AIAnalysisFromEntity(analysis *entity.AIAnalysis) *AIAnalysisModel {
	return &AIAnalysisModel{
		ID:         analysis.ID,
		UserID:     analysis.UserID,
		PropertyID: analysis.PropertyID,
		Summary:    analysis.Summary,
		Model:      analysis.Model,
		CreatedAt:  analysis.CreatedAt,
	}
}
