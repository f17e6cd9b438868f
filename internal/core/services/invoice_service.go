package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoxa/invoxa/internal/apperrors"
	"github.com/invoxa/invoxa/internal/core/domain"
	portsrepo "github.com/invoxa/invoxa/internal/core/ports/repositories"
	"github.com/invoxa/invoxa/internal/dto"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// InvoiceService provides business logic for invoices. All monetary totals
// are computed server-side in decimal arithmetic; client-supplied amounts are
// never trusted beyond quantity and unit price.
type InvoiceService struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	clientRepo  portsrepo.ClientReader
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, clientRepo portsrepo.ClientReader) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
	}
}

// CreateInvoice validates the request, computes totals, assigns the next
// sequential number for the user and persists the invoice with its items.
func (s *InvoiceService) CreateInvoice(ctx context.Context, userID string, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if req.DueDate.Before(req.IssueDate) {
		return nil, fmt.Errorf("%w: due date cannot precede issue date", apperrors.ErrValidation)
	}

	// The client must exist and belong to the requesting user.
	if _, err := s.clientRepo.FindClientByID(ctx, userID, req.ClientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: client %s not found", apperrors.ErrValidation, req.ClientID)
		}
		return nil, fmt.Errorf("failed to validate client: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = domain.DefaultCurrencyCode
	}

	ordinal, err := s.invoiceRepo.NextInvoiceNumber(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate invoice number: %w", err)
	}

	now := time.Now()
	invoiceID := uuid.NewString()

	subtotal := decimal.Zero
	items := make([]domain.InvoiceItem, len(req.Items))
	for i, line := range req.Items {
		quantity := decimal.NewFromFloat(line.Quantity)
		unitPrice := decimal.NewFromFloat(line.UnitPrice)
		amount := quantity.Mul(unitPrice).Round(2)
		subtotal = subtotal.Add(amount)

		items[i] = domain.InvoiceItem{
			ItemID:      uuid.NewString(),
			InvoiceID:   invoiceID,
			Description: line.Description,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Amount:      amount,
			Position:    i,
		}
	}

	taxRate := decimal.NewFromFloat(req.TaxRate)
	taxAmount := subtotal.Mul(taxRate).Div(decimal.NewFromInt(100)).Round(2)
	total := subtotal.Add(taxAmount)

	invoice := domain.Invoice{
		InvoiceID:  invoiceID,
		UserID:     userID,
		ClientID:   req.ClientID,
		Number:     fmt.Sprintf("INV-%06d", ordinal),
		Status:     domain.InvoiceStatusPending,
		Currency:   currency,
		TemplateID: req.TemplateID,
		IssueDate:  req.IssueDate,
		DueDate:    req.DueDate,
		Subtotal:   subtotal,
		TaxRate:    taxRate,
		TaxAmount:  taxAmount,
		Total:      total,
		Notes:      req.Notes,
		Items:      items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		return nil, fmt.Errorf("failed to create invoice in service: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("number", invoice.Number),
		slog.String("currency", invoice.Currency))
	return &invoice, nil
}

// GetInvoiceByID retrieves an invoice with its items, scoped to the user.
func (s *InvoiceService) GetInvoiceByID(ctx context.Context, userID, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, userID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice in service: %w", err)
	}
	return invoice, nil
}

// ListInvoices retrieves a page of invoices plus the total match count. Page
// and limit are normalized to sane bounds before hitting the repository.
func (s *InvoiceService) ListInvoices(ctx context.Context, userID string, filter portsrepo.InvoiceListFilter, page portsrepo.Pagination) ([]portsrepo.InvoiceListRow, int, error) {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = defaultPageLimit
	}
	if page.Limit > maxPageLimit {
		page.Limit = maxPageLimit
	}
	if filter.Status != "" && !domain.ValidInvoiceStatus(filter.Status) {
		return nil, 0, fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, filter.Status)
	}

	rows, total, err := s.invoiceRepo.ListInvoices(ctx, userID, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list invoices in service: %w", err)
	}
	if rows == nil {
		rows = []portsrepo.InvoiceListRow{}
	}
	return rows, total, nil
}

// UpdateInvoiceStatus moves an invoice to a new lifecycle state.
func (s *InvoiceService) UpdateInvoiceStatus(ctx context.Context, userID, invoiceID string, status domain.InvoiceStatus) error {
	if !domain.ValidInvoiceStatus(status) {
		return fmt.Errorf("%w: unknown invoice status %q", apperrors.ErrValidation, status)
	}
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, userID, invoiceID, status); err != nil {
		return fmt.Errorf("failed to update invoice status in service: %w", err)
	}
	return nil
}

// DeleteInvoice removes an invoice and its items.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, userID, invoiceID string) error {
	if err := s.invoiceRepo.DeleteInvoice(ctx, userID, invoiceID); err != nil {
		return fmt.Errorf("failed to delete invoice in service: %w", err)
	}
	s.LogInfo(ctx, "Invoice deleted", slog.String("invoice_id", invoiceID))
	return nil
}
