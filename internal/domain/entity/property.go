// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertyType represents the kind of rental property.
type PropertyType string

const (
	PropertyTypeSingleFamily PropertyType = "single_family"
	PropertyTypeMultiFamily  PropertyType = "multi_family"
	PropertyTypeCondo        PropertyType = "condo"
	PropertyTypeApartment    PropertyType = "apartment"
	PropertyTypeCommercial   PropertyType = "commercial"
	PropertyTypeOther        PropertyType = "other"
)

// Property represents a rental property owned by a landlord.
//
// EstimatedValue, MonthlyRent and OccupiedUnits are optional; use the
// accessor methods rather than reading the pointers so that defaulting
// happens in exactly one place.
type Property struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Address        string
	Type           PropertyType
	PurchasePrice  decimal.Decimal
	EstimatedValue *decimal.Decimal // Defaults to PurchasePrice
	MonthlyRent    *decimal.Decimal // Defaults to zero
	Units          int              // At least 1
	OccupiedUnits  *int             // Defaults to zero
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewProperty creates a new Property entity with normalized fields.
func NewProperty(
	userID uuid.UUID,
	name string,
	address string,
	propertyType PropertyType,
	purchasePrice decimal.Decimal,
	estimatedValue *decimal.Decimal,
	monthlyRent *decimal.Decimal,
	units int,
	occupiedUnits *int,
) *Property {
	if units < 1 {
		units = 1
	}

	now := time.Now().UTC()

	return &Property{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Address:        address,
		Type:           propertyType,
		PurchasePrice:  purchasePrice,
		EstimatedValue: estimatedValue,
		MonthlyRent:    monthlyRent,
		Units:          units,
		OccupiedUnits:  occupiedUnits,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// CurrentValue returns the estimated market value, falling back to the
// purchase price when no estimate has been recorded.
func (p *Property) CurrentValue() decimal.Decimal {
	if p.EstimatedValue != nil {
		return *p.EstimatedValue
	}
	return p.PurchasePrice
}

// RentAmount returns the monthly rent, or zero when none is set.
func (p *Property) RentAmount() decimal.Decimal {
	if p.MonthlyRent != nil {
		return *p.MonthlyRent
	}
	return decimal.Zero
}

// Occupied returns the number of occupied units, or zero when unknown.
func (p *Property) Occupied() int {
	if p.OccupiedUnits != nil {
		return *p.OccupiedUnits
	}
	return 0
}

// OccupancyRate returns the occupancy percentage for this property.
// The result is clamped to be non-negative; a property with no units
// reports zero.
func (p *Property) OccupancyRate() decimal.Decimal {
	if p.Units <= 0 {
		return decimal.Zero
	}
	occupied := p.Occupied()
	if occupied < 0 {
		occupied = 0
	}
	return decimal.NewFromInt(int64(occupied)).
		Div(decimal.NewFromInt(int64(p.Units))).
		Mul(decimal.NewFromInt(100))
}
