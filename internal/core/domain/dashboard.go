package domain

import "time"

// MetricWithChange is a dashboard figure with its period-over-period delta in
// percent. A zero previous-period baseline yields a change of 0, not an
// undefined or infinite value.
type MetricWithChange struct {
	Current float64 `json:"current"`
	Change  float64 `json:"change"`
}

// PendingMetric counts open invoices, with the overdue subset broken out.
type PendingMetric struct {
	Current int `json:"current"`
	Overdue int `json:"overdue"`
}

// RecentInvoice is a dashboard row summarizing a recently created invoice.
type RecentInvoice struct {
	InvoiceID   string        `json:"id"`
	Number      string        `json:"number"`
	ClientName  string        `json:"clientName"`
	ClientEmail string        `json:"clientEmail,omitempty"`
	Status      InvoiceStatus `json:"status"`
	Total       float64       `json:"total"`
	Currency    string        `json:"currency"`
	DueDate     time.Time     `json:"dueDate"`
	CreatedAt   time.Time     `json:"createdAt"`
}

// DashboardReport aggregates the user's reporting-currency revenue and
// invoice activity for the current calendar month versus the previous one.
type DashboardReport struct {
	ReportingCurrency string           `json:"reportingCurrency"`
	TotalRevenue      MetricWithChange `json:"totalRevenue"`
	InvoicesSent      MetricWithChange `json:"invoicesSent"`
	PendingInvoices   PendingMetric    `json:"pendingInvoices"`
	RecentInvoices    []RecentInvoice  `json:"recentInvoices"`
}
