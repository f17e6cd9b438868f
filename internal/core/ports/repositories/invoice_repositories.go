package repositories

import (
	"context"

	"github.com/invoxa/invoxa/internal/core/domain"
)

// InvoiceListFilter narrows ListInvoices results. Zero values mean "no filter".
type InvoiceListFilter struct {
	Status domain.InvoiceStatus
	// Search matches invoice number, client name or client email,
	// case-insensitively.
	Search string
}

// Pagination is offset pagination for list queries.
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the row offset for the page.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// InvoiceListRow is a list view row: the invoice plus its client summary.
type InvoiceListRow struct {
	Invoice     domain.Invoice
	ClientName  string
	ClientEmail string
}

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice with its items, scoped to the user.
	FindInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a page of invoices matching the filter, newest
	// first, along with the total match count.
	ListInvoices(ctx context.Context, userID string, filter InvoiceListFilter, page Pagination) ([]InvoiceListRow, int, error)

	// NextInvoiceNumber returns the next sequential invoice ordinal for the user.
	NextInvoiceNumber(ctx context.Context, userID string) (int, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice and its items atomically.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoiceStatus updates the lifecycle status of an invoice.
	UpdateInvoiceStatus(ctx context.Context, userID, invoiceID string, status domain.InvoiceStatus) error

	// DeleteInvoice removes an invoice and its items.
	DeleteInvoice(ctx context.Context, userID, invoiceID string) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
