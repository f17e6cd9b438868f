package dto

import (
	"time"

	"github.com/invoxa/invoxa/internal/core/domain"
)

// DashboardMetricsResponse groups the headline dashboard figures.
type DashboardMetricsResponse struct {
	TotalRevenue    domain.MetricWithChange `json:"totalRevenue"`
	InvoicesSent    domain.MetricWithChange `json:"invoicesSent"`
	PendingInvoices domain.PendingMetric    `json:"pendingInvoices"`
}

// DashboardRecentInvoiceResponse is one recent-invoice row.
type DashboardRecentInvoiceResponse struct {
	InvoiceID string `json:"id"`
	Number    string `json:"number"`
	Client    struct {
		Name  string `json:"name"`
		Email string `json:"email,omitempty"`
	} `json:"client"`
	Status    domain.InvoiceStatus `json:"status"`
	Total     float64              `json:"total"`
	Currency  string               `json:"currency"`
	DueDate   time.Time            `json:"dueDate"`
	CreatedAt time.Time            `json:"createdAt"`
}

// DashboardResponse is the dashboard endpoint payload.
type DashboardResponse struct {
	ReportingCurrency string                           `json:"reportingCurrency"`
	Metrics           DashboardMetricsResponse         `json:"metrics"`
	RecentInvoices    []DashboardRecentInvoiceResponse `json:"recentInvoices"`
}

// ToDashboardResponse converts a domain dashboard report to the API shape.
func ToDashboardResponse(report *domain.DashboardReport) DashboardResponse {
	recent := make([]DashboardRecentInvoiceResponse, len(report.RecentInvoices))
	for i, inv := range report.RecentInvoices {
		recent[i] = DashboardRecentInvoiceResponse{
			InvoiceID: inv.InvoiceID,
			Number:    inv.Number,
			Status:    inv.Status,
			Total:     inv.Total,
			Currency:  inv.Currency,
			DueDate:   inv.DueDate,
			CreatedAt: inv.CreatedAt,
		}
		recent[i].Client.Name = inv.ClientName
		recent[i].Client.Email = inv.ClientEmail
	}

	return DashboardResponse{
		ReportingCurrency: report.ReportingCurrency,
		Metrics: DashboardMetricsResponse{
			TotalRevenue:    report.TotalRevenue,
			InvoicesSent:    report.InvoicesSent,
			PendingInvoices: report.PendingInvoices,
		},
		RecentInvoices: recent,
	}
}
