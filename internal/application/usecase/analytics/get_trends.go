// Package analytics contains portfolio analytics use cases.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/aggregate"
	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// GetTrendsInput represents the input for portfolio trend series.
type GetTrendsInput struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	Window     Window
}

// Trends holds one monthly series per metric kind over the trailing
// window. A month with no samples is absent from its series, not
// zero-filled.
type Trends struct {
	Window        Window                 `json:"window"`
	MonthlyRent   []aggregate.TrendPoint `json:"monthly_rent"`
	OccupancyRate []aggregate.TrendPoint `json:"occupancy_rate"`
	ROI           []aggregate.TrendPoint `json:"roi"`
	CapRate       []aggregate.TrendPoint `json:"cap_rate"`
}

// GetTrendsUseCase computes trailing-window trend series from the
// pre-computed metric store.
type GetTrendsUseCase struct {
	metricRepo adapter.MetricRepository
	now        func() time.Time
}

// NewGetTrendsUseCase creates a new GetTrendsUseCase instance.
func NewGetTrendsUseCase(metricRepo adapter.MetricRepository) *GetTrendsUseCase {
	return &GetTrendsUseCase{
		metricRepo: metricRepo,
		now:        time.Now,
	}
}

// Execute computes the trend series for the requested trailing window.
func (uc *GetTrendsUseCase) Execute(ctx context.Context, input GetTrendsInput) (*Trends, error) {
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

	return buildTrends(entries, window), nil
}

// buildTrends buckets each metric kind independently. The metric store
// hands entries out sorted ascending by date, which fixes the first-seen
// month order of each series.
func buildTrends(entries []*entity.MetricEntry, window Window) *Trends {
	return &Trends{
		Window:        window,
		MonthlyRent:   bucketKind(entries, entity.MetricTypeMonthlyRent),
		OccupancyRate: bucketKind(entries, entity.MetricTypeOccupancyRate),
		ROI:           bucketKind(entries, entity.MetricTypeROI),
		CapRate:       bucketKind(entries, entity.MetricTypeCapRate),
	}
}

func bucketKind(entries []*entity.MetricEntry, kind entity.MetricType) []aggregate.TrendPoint {
	samples := make([]aggregate.Sample, 0, len(entries))
	for _, e := range entries {
		if e.Type == kind {
			samples = append(samples, aggregate.Sample{Date: e.Date, Value: e.Value})
		}
	}
	return aggregate.BucketByMonth(samples)
}
