// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// ReportRepository persists audit snapshots of generated statements.
// Saving is a best-effort side effect of report generation: a failed save
// is logged by the caller and never fails the report call.
type ReportRepository interface {
	// Save stores an audit snapshot.
	Save(ctx context.Context, record *entity.ReportRecord) error
}
