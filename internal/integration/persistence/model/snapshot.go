package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// PropertySnapshotModel represents the property_snapshots table in the database.
type PropertySnapshotModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	PropertyID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	EstimatedValue decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MonthlyRent    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	OccupancyRate  decimal.Decimal `gorm:"type:decimal(7,4);not null"`
	CapturedAt     time.Time       `gorm:"not null;index"`
	CreatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PropertySnapshotModel.
func (PropertySnapshotModel) TableName() string {
	return "property_snapshots"
}

// ToEntity converts a PropertySnapshotModel to a domain PropertySnapshot entity.
func (m *PropertySnapshotModel) ToEntity() *entity.PropertySnapshot {
	return &entity.PropertySnapshot{
		ID:             m.ID,
		UserID:         m.UserID,
		PropertyID:     m.PropertyID,
		EstimatedValue: m.EstimatedValue,
		MonthlyRent:    m.MonthlyRent,
		OccupancyRate:  m.OccupancyRate,
		CapturedAt:     m.CapturedAt,
		CreatedAt:      m.CreatedAt,
	}
}

// PropertySnapshotFromEntity creates a PropertySnapshotModel from a domain entity.
func PropertySnapshotFromEntity(snapshot *entity.PropertySnapshot) *PropertySnapshotModel {
	return &PropertySnapshotModel{
		ID:             snapshot.ID,
		UserID:         snapshot.UserID,
		PropertyID:     snapshot.PropertyID,
		EstimatedValue: snapshot.EstimatedValue,
		MonthlyRent:    snapshot.MonthlyRent,
		OccupancyRate:  snapshot.OccupancyRate,
		CapturedAt:     snapshot.CapturedAt,
		CreatedAt:      snapshot.CreatedAt,
	}
}
