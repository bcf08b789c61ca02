package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// DocumentModel represents the documents table in the database.
type DocumentModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	PropertyID  *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"type:varchar(255);not null"`
	ContentType string     `gorm:"type:varchar(100)"`
	SizeBytes   int64      `gorm:"not null;default:0"`
	CreatedAt   time.Time  `gorm:"not null;index"`
}

// TableName returns the table name for the DocumentModel.
func (DocumentModel) TableName() string {
	return "documents"
}

// ToEntity converts a DocumentModel to a domain Document entity.
func (m *DocumentModel) ToEntity() *entity.Document {
	return &entity.Document{
		ID:          m.ID,
		UserID:      m.UserID,
		PropertyID:  m.PropertyID,
		Name:        m.Name,
		ContentType: m.ContentType,
		SizeBytes:   m.SizeBytes,
		CreatedAt:   m.CreatedAt,
	}
}

// DocumentFromEntity creates a DocumentModel from a domain Document entity.
func DocumentFromEntity(document *entity.Document) *DocumentModel {
	return &DocumentModel{
		ID:          document.ID,
		UserID:      document.UserID,
		PropertyID:  document.PropertyID,
		Name:        document.Name,
		ContentType: document.ContentType,
		SizeBytes:   document.SizeBytes,
		CreatedAt:   document.CreatedAt,
	}
}
