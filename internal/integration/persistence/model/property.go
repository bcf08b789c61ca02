package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// PropertyModel represents the properties table in the database.
type PropertyModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name           string           `gorm:"type:varchar(255);not null"`
	Address        string           `gorm:"type:varchar(500)"`
	Type           string           `gorm:"type:varchar(20);not null"`
	PurchasePrice  decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	EstimatedValue *decimal.Decimal `gorm:"type:decimal(15,2)"`
	MonthlyRent    *decimal.Decimal `gorm:"type:decimal(15,2)"`
	Units          int              `gorm:"not null;default:1"`
	OccupiedUnits  *int             `gorm:"type:integer"`
	CreatedAt      time.Time        `gorm:"not null"`
	UpdatedAt      time.Time        `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the PropertyModel.
func (PropertyModel) TableName() string {
	return "properties"
}

// ToEntity converts a PropertyModel to a domain Property entity.
func (m *PropertyModel) ToEntity() *entity.Property {
	return &entity.Property{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Address:        m.Address,
		Type:           entity.PropertyType(m.Type),
		PurchasePrice:  m.PurchasePrice,
		EstimatedValue: m.EstimatedValue,
		MonthlyRent:    m.MonthlyRent,
		Units:          m.Units,
		OccupiedUnits:  m.OccupiedUnits,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// PropertyFromEntity creates a PropertyModel from a domain Property entity.
func PropertyFromEntity(property *entity.Property) *PropertyModel {
	return &PropertyModel{
		ID:             property.ID,
		UserID:         property.UserID,
		Name:           property.Name,
		Address:        property.Address,
		Type:           string(property.Type),
		PurchasePrice:  property.PurchasePrice,
		EstimatedValue: property.EstimatedValue,
		MonthlyRent:    property.MonthlyRent,
		Units:          property.Units,
		OccupiedUnits:  property.OccupiedUnits,
		CreatedAt:      property.CreatedAt,
		UpdatedAt:      property.UpdatedAt,
	}
}
