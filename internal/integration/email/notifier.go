// Package email sends transactional email via Resend.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
)

// reportKindLabels maps statement kinds to human-readable names.
var reportKindLabels = map[entity.ReportKind]string{
	entity.ReportKindProfitLoss:      "Profit & Loss statement",
	entity.ReportKindTax:             "Tax report",
	entity.ReportKindCashFlow:        "Cash flow statement",
	entity.ReportKindIncomeStatement: "Income statement",
}

// ResendNotifier implements the adapter.ReportNotifier interface using Resend.
type ResendNotifier struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendNotifier creates a new Resend-backed report notifier.
func NewResendNotifier(apiKey, fromName, fromEmail string) *ResendNotifier {
	return &ResendNotifier{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// NotifyReportReady tells the user their report is ready.
func (n *ResendNotifier) NotifyReportReady(ctx context.Context, email, name string, kind entity.ReportKind, year int) error {
	label, ok := reportKindLabels[kind]
	if !ok {
		label = string(kind)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", n.fromName, n.fromEmail),
		To:      []string{email},
		Subject: fmt.Sprintf("Your %d %s is ready", year, label),
		Html:    renderReportReadyHTML(name, label, year),
		Text:    renderReportReadyText(name, label, year),
	}

	if _, err := n.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send report notification: %w", err)
	}

	return nil
}

func renderReportReadyHTML(name, label string, year int) string {
	return fmt.Sprintf(
		`<p>Hi %s,</p><p>Your %d %s has been generated and is available in your Rentfolio dashboard.</p><p>- The Rentfolio team</p>`,
		name, year, label,
	)
}

func renderReportReadyText(name, label string, year int) string {
	return fmt.Sprintf(
		"Hi %s,\n\nYour %d %s has been generated and is available in your Rentfolio dashboard.\n\n- The Rentfolio team",
		name, year, label,
	)
}

var _ adapter.ReportNotifier = (*ResendNotifier)(nil)
