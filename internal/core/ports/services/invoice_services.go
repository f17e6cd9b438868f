package services

import (
	"context"

	"github.com/invoxa/invoxa/internal/core/domain"
	portsrepo "github.com/invoxa/invoxa/internal/core/ports/repositories"
	"github.com/invoxa/invoxa/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoice data
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice with its items, scoped to the user.
	GetInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a page of invoices plus the total match count.
	ListInvoices(ctx context.Context, userID string, filter portsrepo.InvoiceListFilter, page portsrepo.Pagination) ([]portsrepo.InvoiceListRow, int, error)
}

// InvoiceWriterSvc defines write operations for invoice data
type InvoiceWriterSvc interface {
	// CreateInvoice validates the request, computes all totals server-side in
	// decimal arithmetic, assigns the next sequential number and persists the
	// invoice with its items.
	CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error)

	// UpdateInvoiceStatus moves an invoice to a new lifecycle state.
	UpdateInvoiceStatus(ctx context.Context, userID, invoiceID string, status domain.InvoiceStatus) error

	// DeleteInvoice removes an invoice and its items.
	DeleteInvoice(ctx context.Context, userID, invoiceID string) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
