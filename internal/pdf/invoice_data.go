package pdf

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// PartyInfo identifies one side of an invoice (issuing company or client).
type PartyInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Website string
}

// LineItem is one invoice line in the rendering projection.
type LineItem struct {
	Description string
	Quantity    float64
	UnitPrice   float64
	Amount      float64
}

// InvoiceData is the read-only rendering projection of an invoice. It is
// assembled fresh from persisted records for each render request and is never
// stored itself.
type InvoiceData struct {
	Number    string
	IssueDate time.Time
	DueDate   time.Time
	Currency  string
	Company   PartyInfo
	Client    PartyInfo
	Items     []LineItem
	Subtotal  float64
	TaxRate   float64 // percentage, 0–100
	TaxAmount float64
	Total     float64
	Notes     string
}

// safeNumber coerces NaN and infinities to zero so malformed numeric input
// degrades to an empty-looking but renderable document instead of corrupting
// the layout.
func safeNumber(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// sanitized returns a copy with every monetary and quantity field coerced
// through safeNumber.
func (d InvoiceData) sanitized() InvoiceData {
	out := d
	out.Subtotal = safeNumber(d.Subtotal)
	out.TaxRate = safeNumber(d.TaxRate)
	out.TaxAmount = safeNumber(d.TaxAmount)
	out.Total = safeNumber(d.Total)
	out.Items = make([]LineItem, len(d.Items))
	for i, item := range d.Items {
		out.Items[i] = LineItem{
			Description: item.Description,
			Quantity:    safeNumber(item.Quantity),
			UnitPrice:   safeNumber(item.UnitPrice),
			Amount:      safeNumber(item.Amount),
		}
	}
	return out
}

// Fingerprint derives a content key from the template id and every rendered
// field of the invoice. Two renders share a fingerprint only when they would
// produce identical documents, so the renderer can safely reuse the previous
// output across unrelated re-renders.
func (d InvoiceData) Fingerprint(templateID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\x00%s\x00%d\x00%d\x00%s", templateID, d.Number, d.IssueDate.Unix(), d.DueDate.Unix(), d.Currency)
	for _, p := range []PartyInfo{d.Company, d.Client} {
		fmt.Fprintf(&b, "\x00%s\x00%s\x00%s\x00%s\x00%s", p.Name, p.Email, p.Phone, p.Address, p.Website)
	}
	fmt.Fprintf(&b, "\x00%g\x00%g\x00%g\x00%g\x00%s", d.Subtotal, d.TaxRate, d.TaxAmount, d.Total, d.Notes)
	fmt.Fprintf(&b, "\x00%d", len(d.Items))
	for i, item := range d.Items {
		fmt.Fprintf(&b, "|%d-%s-%g-%g", i, item.Description, item.Quantity, item.UnitPrice)
	}
	return b.String()
}
