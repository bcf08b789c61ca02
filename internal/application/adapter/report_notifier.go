// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/rentfolio/backend/internal/domain/entity"
)

// ReportNotifier sends a notification when a statement has been generated.
// Like the audit trail, notification is a best-effort side effect: a failed
// send is logged and never fails the report call.
type ReportNotifier interface {
	// NotifyReportReady tells the user their report is ready.
	NotifyReportReady(ctx context.Context, email, name string, kind entity.ReportKind, year int) error
}
