// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertySnapshot is a persisted point-in-time view of a property's
// financial position, captured by an external scheduler.
type PropertySnapshot struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	PropertyID     uuid.UUID
	EstimatedValue decimal.Decimal
	MonthlyRent    decimal.Decimal
	OccupancyRate  decimal.Decimal
	CapturedAt     time.Time
	CreatedAt      time.Time
}

// NewPropertySnapshot creates a new PropertySnapshot entity.
func NewPropertySnapshot(
	userID uuid.UUID,
	propertyID uuid.UUID,
	estimatedValue decimal.Decimal,
	monthlyRent decimal.Decimal,
	occupancyRate decimal.Decimal,
	capturedAt time.Time,
) *PropertySnapshot {
	return &PropertySnapshot{
		ID:             uuid.New(),
		UserID:         userID,
		PropertyID:     propertyID,
		EstimatedValue: estimatedValue,
		MonthlyRent:    monthlyRent,
		OccupancyRate:  occupancyRate,
		CapturedAt:     capturedAt,
		CreatedAt:      time.Now().UTC(),
	}
}
