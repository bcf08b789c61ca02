package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// ReportRecordModel represents the report_records table in the database.
type ReportRecordModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	PropertyID  *uuid.UUID `gorm:"type:uuid;index"`
	Kind        string     `gorm:"type:varchar(20);not null;index"`
	PeriodStart time.Time  `gorm:"type:date;not null"`
	PeriodEnd   time.Time  `gorm:"type:date;not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time  `gorm:"not null;index"`
}

// TableName returns the table name for the ReportRecordModel.
func (ReportRecordModel) TableName() string {
	return "report_records"
}

// ToEntity converts a ReportRecordModel to a domain ReportRecord entity.
func (m *ReportRecordModel) ToEntity() *entity.ReportRecord {
	return &entity.ReportRecord{
		ID:          m.ID,
		UserID:      m.UserID,
		PropertyID:  m.PropertyID,
		Kind:        entity.ReportKind(m.Kind),
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
		Payload:     m.Payload,
		CreatedAt:   m.CreatedAt,
	}
}

// ReportRecordFromEntity creates a ReportRecordModel from a domain ReportRecord entity.
func ReportRecordFromEntity(record *entity.ReportRecord) *ReportRecordModel {
	return &ReportRecordModel{
		ID:          record.ID,
		UserID:      record.UserID,
		PropertyID:  record.PropertyID,
		Kind:        string(record.Kind),
		PeriodStart: record.PeriodStart,
		PeriodEnd:   record.PeriodEnd,
		Payload:     record.Payload,
		CreatedAt:   record.CreatedAt,
	}
}
