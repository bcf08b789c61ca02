// Package analytics contains portfolio analytics use cases.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	domainerror "github.com/rentfolio/backend/internal/domain/error"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// ListSnapshotsInput represents the input for the snapshot time series.
type ListSnapshotsInput struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	Window     Window
}

// ListSnapshotsOutput holds persisted snapshots within the trailing
// window, ascending by capture time.
type ListSnapshotsOutput struct {
	Window    Window                     `json:"window"`
	Snapshots []*entity.PropertySnapshot `json:"snapshots"`
}

// ListSnapshotsUseCase returns persisted property snapshots, scoped to
// one property or to all of a user's properties.
type ListSnapshotsUseCase struct {
	snapshotRepo adapter.SnapshotRepository
	propertyRepo adapter.PropertyRepository
	now          func() time.Time
}

// NewListSnapshotsUseCase creates a new ListSnapshotsUseCase instance.
func NewListSnapshotsUseCase(
	snapshotRepo adapter.SnapshotRepository,
	propertyRepo adapter.PropertyRepository,
) *ListSnapshotsUseCase {
	return &ListSnapshotsUseCase{
		snapshotRepo: snapshotRepo,
		propertyRepo: propertyRepo,
		now:          time.Now,
	}
}

// Execute returns snapshots in the trailing window. When no property is
// specified, the user's property ids are resolved first and the snapshot
// store is queried with the full list.
func (uc *ListSnapshotsUseCase) Execute(ctx context.Context, input ListSnapshotsInput) (*ListSnapshotsOutput, error) {
	window, err := ParseWindow(string(input.Window))
	if err != nil {
		return nil, err
	}

	propertyIDs, err := uc.resolveScope(ctx, input)
	if err != nil {
		return nil, err
	}

	period := valueobject.TrailingWindow(uc.now(), window.Months())

	snapshots, err := uc.snapshotRepo.FindByProperties(ctx, propertyIDs, period.Start)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshots: %w", err)
	}

	return &ListSnapshotsOutput{Window: window, Snapshots: snapshots}, nil
}

func (uc *ListSnapshotsUseCase) resolveScope(ctx context.Context, input ListSnapshotsInput) ([]uuid.UUID, error) {
	if input.PropertyID != nil {
		property, err := uc.propertyRepo.FindByID(ctx, *input.PropertyID)
		if err != nil {
			if errors.Is(err, domainerror.ErrPropertyNotFound) {
				return nil, domainerror.NewAnalyticsError(
					domainerror.ErrCodeAnalyticsPropertyNotFound,
					"property not found",
					domainerror.ErrAnalyticsPropertyNotFound,
				)
			}
			return nil, fmt.Errorf("failed to load property: %w", err)
		}
		if property.UserID != input.UserID {
			return nil, domainerror.NewAnalyticsError(
				domainerror.ErrCodeAnalyticsPropertyNotFound,
				"property not found",
				domainerror.ErrAnalyticsPropertyNotFound,
			)
		}
		return []uuid.UUID{property.ID}, nil
	}

	properties, err := uc.propertyRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(properties))
	for _, p := range properties {
		ids = append(ids, p.ID)
	}
	return ids, nil
}
