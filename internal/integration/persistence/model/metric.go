package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// MetricEntryModel represents the metric_entries table in the database.
type MetricEntryModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PropertyID *uuid.UUID      `gorm:"type:uuid;index"`
	Type       string          `gorm:"type:varchar(20);not null;index"`
	Value      decimal.Decimal `gorm:"type:decimal(15,4);not null"`
	Date       time.Time       `gorm:"type:date;not null;index"`
	CreatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MetricEntryModel.
func (MetricEntryModel) TableName() string {
	return "metric_entries"
}

// ToEntity converts a MetricEntryModel to a domain MetricEntry entity.
func (m *MetricEntryModel) ToEntity() *entity.MetricEntry {
	return &entity.MetricEntry{
		ID:         m.ID,
		UserID:     m.UserID,
		PropertyID: m.PropertyID,
		Type:       entity.MetricType(m.Type),
		Value:      m.Value,
		Date:       m.Date,
		CreatedAt:  m.CreatedAt,
	}
}

// MetricEntryFromEntity creates a MetricEntryModel from a domain MetricEntry entity.
func MetricEntryFromEntity(metric *entity.MetricEntry) *MetricEntryModel {
	return &MetricEntryModel{
		ID:         metric.ID,
		UserID:     metric.UserID,
		PropertyID: metric.PropertyID,
		Type:       string(metric.Type),
		Value:      metric.Value,
		Date:       metric.Date,
		CreatedAt:  metric.CreatedAt,
	}
}
