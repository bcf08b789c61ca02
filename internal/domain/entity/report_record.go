// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReportKind identifies one of the financial statement shapes.
type ReportKind string

const (
	ReportKindProfitLoss      ReportKind = "profit_loss"
	ReportKindTax             ReportKind = "tax"
	ReportKindCashFlow        ReportKind = "cash_flow"
	ReportKindIncomeStatement ReportKind = "income_statement"
)

// ReportRecord is an audit snapshot of a generated statement. The payload
// embeds a copy of the statement, not references to the transactions it
// was built from.
type ReportRecord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	PropertyID  *uuid.UUID
	Kind        ReportKind
	PeriodStart time.Time
	PeriodEnd   time.Time
	Payload     []byte // JSON-encoded statement
	CreatedAt   time.Time
}

// NewReportRecord creates a new ReportRecord entity.
func NewReportRecord(
	userID uuid.UUID,
	propertyID *uuid.UUID,
	kind ReportKind,
	periodStart, periodEnd time.Time,
	payload []byte,
) *ReportRecord {
	return &ReportRecord{
		ID:          uuid.New(),
		UserID:      userID,
		PropertyID:  propertyID,
		Kind:        kind,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Payload:     payload,
		CreatedAt:   time.Now().UTC(),
	}
}
