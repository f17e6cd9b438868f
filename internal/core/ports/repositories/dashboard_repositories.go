package repositories

import (
	"context"
	"time"

	"github.com/invoxa/invoxa/internal/core/domain"
)

// DashboardRepository provides the aggregate queries behind the dashboard.
// Revenue queries return each PAID invoice total with its original currency;
// normalization into the reporting currency is the aggregator's job, not SQL's.
type DashboardRepository interface {
	// PaidInvoiceTotals returns the totals of PAID invoices created in
	// [from, to), each paired with the invoice currency.
	PaidInvoiceTotals(ctx context.Context, userID string, from, to time.Time) ([]domain.MonetaryAmount, error)

	// CountInvoicesCreated counts invoices created in [from, to).
	CountInvoicesCreated(ctx context.Context, userID string, from, to time.Time) (int, error)

	// CountInvoicesByStatus counts the user's invoices in any of the given states.
	CountInvoicesByStatus(ctx context.Context, userID string, statuses ...domain.InvoiceStatus) (int, error)

	// RecentInvoices returns the most recently created invoices with client
	// summaries, newest first.
	RecentInvoices(ctx context.Context, userID string, limit int) ([]domain.RecentInvoice, error)
}
