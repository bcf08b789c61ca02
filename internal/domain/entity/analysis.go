// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AIAnalysis is a stored AI-generated portfolio analysis.
type AIAnalysis struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	PropertyID *uuid.UUID // Nil for portfolio-wide analyses
	Summary    string
	Model      string
	CreatedAt  time.Time
}

// NewAIAnalysis creates a new AIAnalysis entity.
func NewAIAnalysis(userID uuid.UUID, propertyID *uuid.UUID, summary, model string) *AIAnalysis {
	return &AIAnalysis{
		ID:         uuid.New(),
		UserID:     userID,
		PropertyID: propertyID,
		Summary:    summary,
		Model:      model,
		CreatedAt:  time.Now().UTC(),
	}
}
