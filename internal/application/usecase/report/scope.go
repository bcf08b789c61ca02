// Package report contains the financial statement builders.
package report

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

// resolvePeriod applies the default period when none was supplied and
// rejects malformed bounds.
func resolvePeriod(p valueobject.Period) (valueobject.Period, error) {
	if p.IsZero() {
		return valueobject.DefaultPeriod(time.Now()), nil
	}

	if p.Start.IsZero() || p.End.IsZero() || !p.Valid() {
		return valueobject.Period{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportPeriod,
			"period start must not be after period end",
			domainerror.ErrInvalidReportPeriod,
		)
	}
	return p, nil
}

// verifyPropertyScope checks that the requested property exists and
// belongs to the user. A property owned by someone else is reported as
// not found, never as a permission hint.
func verifyPropertyScope(
	ctx context.Context,
	properties adapter.PropertyRepository,
	userID uuid.UUID,
	propertyID *uuid.UUID,
) (*entity.Property, error) {
	if propertyID == nil {
		return nil, nil
	}

	property, err := properties.FindByID(ctx, *propertyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPropertyNotFound) {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeReportPropertyNotFound,
				"property not found",
				domainerror.ErrReportPropertyNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load property: %w", err)
	}

	if property.UserID != userID {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeReportPropertyNotFound,
			"property not found",
			domainerror.ErrReportPropertyNotFound,
		)
	}
	return property, nil
}

// fetchScopedTransactions pulls the transaction slice for a user, optional
// property, and period. Builders receive this slice as-is and do not
// re-filter by user or property.
func fetchScopedTransactions(
	ctx context.Context,
	transactions adapter.TransactionRepository,
	userID uuid.UUID,
	propertyID *uuid.UUID,
	period valueobject.Period,
) ([]*entity.Transaction, error) {
	filter := adapter.TransactionFilter{
		UserID:     userID,
		PropertyID: propertyID,
		StartDate:  &period.Start,
		EndDate:    &period.End,
	}

	txns, err := transactions.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return txns, nil
}
