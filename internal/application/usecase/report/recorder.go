// Package report contains the financial statement builders.
package report

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/domain/valueobject"
)

// recordStatement persists an audit snapshot of a generated statement.
// This is a fire-and-forget side effect: failures are logged and swallowed
// so that report generation never fails on account of the audit trail.
func recordStatement(
	ctx context.Context,
	repo adapter.ReportRepository,
	kind entity.ReportKind,
	userID uuid.UUID,
	propertyID *uuid.UUID,
	period valueobject.Period,
	statement any,
) {
	if repo == nil {
		return
	}

	payload, err := json.Marshal(statement)
	if err != nil {
		slog.Warn("failed to encode report snapshot", "kind", kind, "user_id", userID, "error", err)
		return
	}

	record := entity.NewReportRecord(userID, propertyID, kind, period.Start, period.End, payload)
	if err := repo.Save(ctx, record); err != nil {
		slog.Warn("failed to persist report snapshot", "kind", kind, "user_id", userID, "error", err)
	}
}
