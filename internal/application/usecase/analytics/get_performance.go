// Package analytics contains portfolio analytics use cases.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/aggregate"
	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// GetPerformanceInput represents the input for performance statistics.
type GetPerformanceInput struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	Window     Window
}

// Performance holds aggregate statistics over the trailing window.
// GrowthRate is computed over the full metric set of the window, sorted
// ascending by date.
type Performance struct {
	Window           Window          `json:"window"`
	AverageROI       decimal.Decimal `json:"average_roi"`
	AverageCapRate   decimal.Decimal `json:"average_cap_rate"`
	AverageOccupancy decimal.Decimal `json:"average_occupancy"`
	TotalRent        decimal.Decimal `json:"total_rent"`
	GrowthRate       decimal.Decimal `json:"growth_rate"`
}

// GetPerformanceUseCase computes performance statistics from the
// pre-computed metric store.
type GetPerformanceUseCase struct {
	metricRepo adapter.MetricRepository
	now        func() time.Time
}

// NewGetPerformanceUseCase creates a new GetPerformanceUseCase instance.
func NewGetPerformanceUseCase(metricRepo adapter.MetricRepository) *GetPerformanceUseCase {
	return &GetPerformanceUseCase{
		metricRepo: metricRepo,
		now:        time.Now,
	}
}

// Execute computes performance statistics for the requested window.
func (uc *GetPerformanceUseCase) Execute(ctx context.Context, input GetPerformanceInput) (*Performance, error) {
	window, err := ParseWindow(string(input.Window))
	if err != nil {
		return nil, err
	}

	period := valueobject.TrailingWindow(uc.now(), window.Months())

	entries, err := uc.metricRepo.FindByFilter(ctx, adapter.MetricFilter{
		UserID:     input.UserID,
		PropertyID: input.PropertyID,
		Since:      &period.Start,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metrics: %w", err)
	}

	return buildPerformance(entries, window), nil
}

// buildPerformance is the pure performance builder.
func buildPerformance(entries []*entity.MetricEntry, window Window) *Performance {
	valuesOf := func(kind entity.MetricType) []decimal.Decimal {
		values := make([]decimal.Decimal, 0, len(entries))
		for _, e := range entries {
			if e.Type == kind {
				values = append(values, e.Value)
			}
		}
		return values
	}

	totalRent := decimal.Zero
	for _, v := range valuesOf(entity.MetricTypeMonthlyRent) {
		totalRent = totalRent.Add(v)
	}

	samples := make([]aggregate.Sample, 0, len(entries))
	for _, e := range entries {
		samples = append(samples, aggregate.Sample{Date: e.Date, Value: e.Value})
	}
	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Date.Before(samples[j].Date)
	})

	return &Performance{
		Window:           window,
		AverageROI:       aggregate.Average(valuesOf(entity.MetricTypeROI)),
		AverageCapRate:   aggregate.Average(valuesOf(entity.MetricTypeCapRate)),
		AverageOccupancy: aggregate.Average(valuesOf(entity.MetricTypeOccupancyRate)),
		TotalRent:        totalRent,
		GrowthRate:       aggregate.GrowthRate(samples),
	}
}
