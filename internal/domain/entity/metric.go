// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MetricType identifies a pre-computed portfolio metric series.
type MetricType string

const (
	MetricTypeMonthlyRent   MetricType = "monthly_rent"
	MetricTypeOccupancyRate MetricType = "occupancy_rate"
	MetricTypeROI           MetricType = "roi"
	MetricTypeCapRate       MetricType = "cap_rate"
)

// IsValid reports whether the metric type is a known series.
func (m MetricType) IsValid() bool {
	switch m {
	case MetricTypeMonthlyRent, MetricTypeOccupancyRate, MetricTypeROI, MetricTypeCapRate:
		return true
	}
	return false
}

// MetricEntry is a point-in-time sample of a portfolio metric.
// ROI and cap rate values are consumed as stored; this system does not
// re-derive their formulas.
type MetricEntry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	Type       MetricType
	Value      decimal.Decimal
	Date       time.Time
	CreatedAt  time.Time
}

// NewMetricEntry creates a new MetricEntry sample.
func NewMetricEntry(
	userID uuid.UUID,
	propertyID *uuid.UUID,
	metricType MetricType,
	value decimal.Decimal,
	date time.Time,
) *MetricEntry {
	return &MetricEntry{
		ID:         uuid.New(),
		UserID:     userID,
		PropertyID: propertyID,
		Type:       metricType,
		Value:      value,
		Date:       date,
		CreatedAt:  time.Now().UTC(),
	}
}
