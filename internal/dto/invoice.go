package dto

import (
	"time"

	"github.com/invoxa/invoxa/internal/core/domain"
	portsrepo "github.com/invoxa/invoxa/internal/core/ports/repositories"
)

// InvoiceItemRequest is one requested invoice line. The line amount is never
// accepted from the caller; it is computed server-side as quantity × unitPrice.
type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=500"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unitPrice" binding:"required,gt=0"`
}

// CreateInvoiceRequest is the payload for creating an invoice.
type CreateInvoiceRequest struct {
	ClientID   string               `json:"clientId" binding:"required,uuid"`
	IssueDate  time.Time            `json:"issueDate" binding:"required"`
	DueDate    time.Time            `json:"dueDate" binding:"required"`
	Items      []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes      string               `json:"notes" binding:"omitempty,max=2000"`
	TaxRate    float64              `json:"taxRate" binding:"gte=0,lte=100"`
	Currency   string               `json:"currency" binding:"omitempty,currencycode"`
	TemplateID string               `json:"templateId" binding:"omitempty,max=100"`
}

// UpdateInvoiceStatusRequest moves an invoice to a new lifecycle state.
type UpdateInvoiceStatusRequest struct {
	Status domain.InvoiceStatus `json:"status" binding:"required,oneof=PENDING PAID OVERDUE CANCELLED"`
}

// InvoiceItemResponse is the API representation of an invoice line.
type InvoiceItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// InvoiceResponse is the full API representation of an invoice.
type InvoiceResponse struct {
	InvoiceID  string                `json:"id"`
	Number     string                `json:"number"`
	ClientID   string                `json:"clientId"`
	Status     domain.InvoiceStatus  `json:"status"`
	Currency   string                `json:"currency"`
	TemplateID string                `json:"templateId"`
	IssueDate  time.Time             `json:"issueDate"`
	DueDate    time.Time             `json:"dueDate"`
	Items      []InvoiceItemResponse `json:"items"`
	Subtotal   float64               `json:"subtotal"`
	TaxRate    float64               `json:"taxRate"`
	TaxAmount  float64               `json:"taxAmount"`
	Total      float64               `json:"total"`
	Notes      string                `json:"notes,omitempty"`
	CreatedAt  time.Time             `json:"createdAt"`
}

// InvoiceListItemResponse is a list row: invoice summary plus client summary.
type InvoiceListItemResponse struct {
	InvoiceID   string               `json:"id"`
	Number      string               `json:"number"`
	ClientName  string               `json:"clientName"`
	ClientEmail string               `json:"clientEmail,omitempty"`
	Status      domain.InvoiceStatus `json:"status"`
	Currency    string               `json:"currency"`
	Total       float64              `json:"total"`
	IssueDate   time.Time            `json:"issueDate"`
	DueDate     time.Time            `json:"dueDate"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// PaginationResponse describes the page window of a list response.
type PaginationResponse struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// InvoiceListResponse is a page of invoices.
type InvoiceListResponse struct {
	Invoices   []InvoiceListItemResponse `json:"invoices"`
	Pagination PaginationResponse        `json:"pagination"`
}

// ToInvoiceResponse converts a domain invoice to its API representation.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity.InexactFloat64(),
			UnitPrice:   item.UnitPrice.InexactFloat64(),
			Amount:      item.Amount.InexactFloat64(),
		}
	}
	return InvoiceResponse{
		InvoiceID:  inv.InvoiceID,
		Number:     inv.Number,
		ClientID:   inv.ClientID,
		Status:     inv.Status,
		Currency:   inv.Currency,
		TemplateID: inv.TemplateID,
		IssueDate:  inv.IssueDate,
		DueDate:    inv.DueDate,
		Items:      items,
		Subtotal:   inv.Subtotal.InexactFloat64(),
		TaxRate:    inv.TaxRate.InexactFloat64(),
		TaxAmount:  inv.TaxAmount.InexactFloat64(),
		Total:      inv.Total.InexactFloat64(),
		Notes:      inv.Notes,
		CreatedAt:  inv.CreatedAt,
	}
}

// ToInvoiceListResponse converts a repository page into the API list shape.
func ToInvoiceListResponse(rows []portsrepo.InvoiceListRow, page portsrepo.Pagination, total int) InvoiceListResponse {
	items := make([]InvoiceListItemResponse, len(rows))
	for i, row := range rows {
		items[i] = InvoiceListItemResponse{
			InvoiceID:   row.Invoice.InvoiceID,
			Number:      row.Invoice.Number,
			ClientName:  row.ClientName,
			ClientEmail: row.ClientEmail,
			Status:      row.Invoice.Status,
			Currency:    row.Invoice.Currency,
			Total:       row.Invoice.Total.InexactFloat64(),
			IssueDate:   row.Invoice.IssueDate,
			DueDate:     row.Invoice.DueDate,
			CreatedAt:   row.Invoice.CreatedAt,
		}
	}

	pages := 0
	if page.Limit > 0 {
		pages = (total + page.Limit - 1) / page.Limit
	}

	return InvoiceListResponse{
		Invoices: items,
		Pagination: PaginationResponse{
			Page:  page.Page,
			Limit: page.Limit,
			Total: total,
			Pages: pages,
		},
	}
}
