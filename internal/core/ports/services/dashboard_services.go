package services

import (
	"context"

	"github.com/invoxa/invoxa/internal/core/domain"
)

// DashboardSvcFacade produces the dashboard report: revenue for the current
// and previous calendar months normalized into the user's reporting currency,
// invoice activity counts with period-over-period deltas, and recent invoices.
type DashboardSvcFacade interface {
	GetDashboard(ctx context.Context, userID string) (*domain.DashboardReport, error)
}
