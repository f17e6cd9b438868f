package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "PENDING"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// ValidInvoiceStatus reports whether s is one of the known lifecycle states.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// Invoice is a persisted invoice. Monetary columns use decimal arithmetic;
// they satisfy subtotal = Σ item.Amount, taxAmount = subtotal × taxRate / 100,
// total = subtotal + taxAmount. Amounts are converted to float64 only at the
// reporting/rendering boundary.
type Invoice struct {
	InvoiceID  string          `json:"invoiceID"` // Primary Key (UUID)
	UserID     string          `json:"userID"`
	ClientID   string          `json:"clientID"`
	Number     string          `json:"number"` // e.g. "INV-000042", unique per user
	Status     InvoiceStatus   `json:"status"`
	Currency   string          `json:"currency"`
	TemplateID string          `json:"templateID"`
	IssueDate  time.Time       `json:"issueDate"`
	DueDate    time.Time       `json:"dueDate"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	TaxRate    decimal.Decimal `json:"taxRate"` // percentage, 0–100
	TaxAmount  decimal.Decimal `json:"taxAmount"`
	Total      decimal.Decimal `json:"total"`
	Notes      string          `json:"notes,omitempty"`
	Items      []InvoiceItem   `json:"items,omitempty"`
	AuditFields
}

// InvoiceItem is one line of an invoice; Amount = Quantity × UnitPrice.
type InvoiceItem struct {
	ItemID      string          `json:"itemID"` // Primary Key (UUID)
	InvoiceID   string          `json:"invoiceID"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
	Position    int             `json:"position"`
}
