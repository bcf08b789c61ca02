package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

type fakeMetricRepo struct {
	entries    []*entity.MetricEntry
	lastFilter adapter.MetricFilter
}

func (f *fakeMetricRepo) Create(context.Context, *entity.MetricEntry) error { return nil }
func (f *fakeMetricRepo) FindByFilter(_ context.Context, filter adapter.MetricFilter) ([]*entity.MetricEntry, error) {
	f.lastFilter = filter
	return f.entries, nil
}

func metric(userID uuid.UUID, kind entity.MetricType, value int64, day time.Time) *entity.MetricEntry {
	return entity.NewMetricEntry(userID, nil, kind, decimal.NewFromInt(value), day)
}

func TestGetTrendsBucketsByMonthMean(t *testing.T) {
	userID := uuid.New()
	repo := &fakeMetricRepo{entries: []*entity.MetricEntry{
		metric(userID, entity.MetricTypeOccupancyRate, 90, date(2024, time.March, 1)),
		metric(userID, entity.MetricTypeOccupancyRate, 100, date(2024, time.March, 20)),
		metric(userID, entity.MetricTypeMonthlyRent, 2400, date(2024, time.March, 1)),
	}}

	uc := NewGetTrendsUseCase(repo)
	uc.now = func() time.Time { return date(2024, time.April, 1) }

	out, err := uc.Execute(context.Background(), GetTrendsInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Window != DefaultWindow {
		t.Errorf("expected default window, got %s", out.Window)
	}

	if len(out.OccupancyRate) != 1 {
		t.Fatalf("expected 1 occupancy point, got %d", len(out.OccupancyRate))
	}
	// Two samples in the same month reduce to their mean.
	point := out.OccupancyRate[0]
	if point.Month != "2024-03" || !point.Value.Equal(decimal.NewFromInt(95)) {
		t.Errorf("expected 2024-03 = 95, got %s = %s", point.Month, point.Value)
	}

	// Each metric kind is bucketed independently.
	if len(out.MonthlyRent) != 1 || !out.MonthlyRent[0].Value.Equal(decimal.NewFromInt(2400)) {
		t.Errorf("unexpected rent series: %+v", out.MonthlyRent)
	}
	if len(out.ROI) != 0 || len(out.CapRate) != 0 {
		t.Error("kinds with no samples yield empty series")
	}
}

func TestGetTrendsWindowScopesTheFetch(t *testing.T) {
	repo := &fakeMetricRepo{}
	uc := NewGetTrendsUseCase(repo)
	now := date(2024, time.July, 1)
	uc.now = func() time.Time { return now }

	_, err := uc.Execute(context.Background(), GetTrendsInput{
		UserID: uuid.New(),
		Window: Window3Months,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastFilter.Since == nil {
		t.Fatal("expected the fetch to be bounded")
	}
	if !repo.lastFilter.Since.Equal(now.AddDate(0, -3, 0)) {
		t.Errorf("expected since %v, got %v", now.AddDate(0, -3, 0), *repo.lastFilter.Since)
	}
}

func TestGetTrendsRejectsInvalidWindow(t *testing.T) {
	uc := NewGetTrendsUseCase(&fakeMetricRepo{})

	if _, err := uc.Execute(context.Background(), GetTrendsInput{
		UserID: uuid.New(),
		Window: Window("forever"),
	}); err == nil {
		t.Fatal("expected an error for an invalid window")
	}
}

func TestGetPerformanceStatistics(t *testing.T) {
	userID := uuid.New()
	repo := &fakeMetricRepo{entries: []*entity.MetricEntry{
		metric(userID, entity.MetricTypeROI, 5, date(2024, time.February, 1)),
		metric(userID, entity.MetricTypeROI, 7, date(2024, time.March, 1)),
		metric(userID, entity.MetricTypeMonthlyRent, 2000, date(2024, time.February, 1)),
		metric(userID, entity.MetricTypeMonthlyRent, 2200, date(2024, time.March, 1)),
	}}

	uc := NewGetPerformanceUseCase(repo)
	uc.now = func() time.Time { return date(2024, time.April, 1) }

	out, err := uc.Execute(context.Background(), GetPerformanceInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.AverageROI.Equal(decimal.NewFromInt(6)) {
		t.Errorf("expected average ROI 6, got %s", out.AverageROI)
	}
	if !out.TotalRent.Equal(decimal.NewFromInt(4200)) {
		t.Errorf("expected total rent 4200, got %s", out.TotalRent)
	}
	// No cap rate samples: zero, not NaN.
	if !out.AverageCapRate.IsZero() {
		t.Errorf("expected zero cap rate, got %s", out.AverageCapRate)
	}
}

func TestGetPerformanceEmptyWindow(t *testing.T) {
	uc := NewGetPerformanceUseCase(&fakeMetricRepo{})

	out, err := uc.Execute(context.Background(), GetPerformanceInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.AverageROI.IsZero() || !out.TotalRent.IsZero() || !out.GrowthRate.IsZero() {
		t.Errorf("expected all-zero statistics, got %+v", out)
	}
}
