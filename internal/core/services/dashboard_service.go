package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/invoxa/invoxa/internal/apperrors"
	"github.com/invoxa/invoxa/internal/core/domain"
	portsrepo "github.com/invoxa/invoxa/internal/core/ports/repositories"
	portssvc "github.com/invoxa/invoxa/internal/core/ports/services"
)

// recentInvoiceLimit is how many rows the dashboard's recent-invoices panel
// shows.
const recentInvoiceLimit = 5

// DashboardService aggregates the user's invoicing activity into the
// dashboard report. Revenue is normalized into the user's reporting currency
// through the converter; everything else is plain counting.
type DashboardService struct {
	BaseService
	dashboardRepo    portsrepo.DashboardRepository
	companyRepo      portsrepo.CompanyReader
	converter        portssvc.CurrencyConverterSvc
	fallbackCurrency string
}

// NewDashboardService creates a new DashboardService. fallbackCurrency is the
// reporting currency used when the user has no company profile; empty means
// USD.
func NewDashboardService(dashboardRepo portsrepo.DashboardRepository, companyRepo portsrepo.CompanyReader, converter portssvc.CurrencyConverterSvc, fallbackCurrency string) *DashboardService {
	if fallbackCurrency == "" {
		fallbackCurrency = domain.DefaultCurrencyCode
	}
	return &DashboardService{
		dashboardRepo:    dashboardRepo,
		companyRepo:      companyRepo,
		converter:        converter,
		fallbackCurrency: fallbackCurrency,
	}
}

// GetDashboard builds the report for the current calendar month against the
// previous one.
func (s *DashboardService) GetDashboard(ctx context.Context, userID string) (*domain.DashboardReport, error) {
	reportingCurrency := s.reportingCurrency(ctx, userID)

	now := time.Now()
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextStart := currentStart.AddDate(0, 1, 0)
	previousStart := currentStart.AddDate(0, -1, 0)

	currentTotals, err := s.dashboardRepo.PaidInvoiceTotals(ctx, userID, currentStart, nextStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load current period revenue: %w", err)
	}
	previousTotals, err := s.dashboardRepo.PaidInvoiceTotals(ctx, userID, previousStart, currentStart)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous period revenue: %w", err)
	}

	currentRevenue := s.converter.ConvertMultipleCurrencies(ctx, currentTotals, reportingCurrency)
	previousRevenue := s.converter.ConvertMultipleCurrencies(ctx, previousTotals, reportingCurrency)

	currentSent, err := s.dashboardRepo.CountInvoicesCreated(ctx, userID, currentStart, nextStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count current period invoices: %w", err)
	}
	previousSent, err := s.dashboardRepo.CountInvoicesCreated(ctx, userID, previousStart, currentStart)
	if err != nil {
		return nil, fmt.Errorf("failed to count previous period invoices: %w", err)
	}

	pending, err := s.dashboardRepo.CountInvoicesByStatus(ctx, userID, domain.InvoiceStatusPending, domain.InvoiceStatusOverdue)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending invoices: %w", err)
	}
	overdue, err := s.dashboardRepo.CountInvoicesByStatus(ctx, userID, domain.InvoiceStatusOverdue)
	if err != nil {
		return nil, fmt.Errorf("failed to count overdue invoices: %w", err)
	}

	recent, err := s.dashboardRepo.RecentInvoices(ctx, userID, recentInvoiceLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent invoices: %w", err)
	}
	if recent == nil {
		recent = []domain.RecentInvoice{}
	}

	return &domain.DashboardReport{
		ReportingCurrency: reportingCurrency,
		TotalRevenue: domain.MetricWithChange{
			Current: currentRevenue,
			Change:  percentChange(currentRevenue, previousRevenue),
		},
		InvoicesSent: domain.MetricWithChange{
			Current: float64(currentSent),
			Change:  percentChange(float64(currentSent), float64(previousSent)),
		},
		PendingInvoices: domain.PendingMetric{
			Current: pending,
			Overdue: overdue,
		},
		RecentInvoices: recent,
	}, nil
}

// reportingCurrency resolves the user's dashboard currency: the company
// profile's default, or the configured fallback when no profile exists yet.
func (s *DashboardService) reportingCurrency(ctx context.Context, userID string) string {
	company, err := s.companyRepo.FindCompanyByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Failed to load company profile for dashboard, using default currency")
		}
		return s.fallbackCurrency
	}
	if company.DefaultCurrency == "" {
		return s.fallbackCurrency
	}
	return company.DefaultCurrency
}

// percentChange returns the period-over-period delta in percent. A zero
// baseline yields 0 rather than an undefined value.
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}
