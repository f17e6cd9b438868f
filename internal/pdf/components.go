package pdf

import (
	"fmt"
	"strconv"
	"time"
)

// noItemsLabel is rendered as the single table row of an itemless invoice so
// the table is never empty or broken.
const noItemsLabel = "No items"

// tableRow is one rendered items-table row. A placeholder row has only its
// description set.
type tableRow struct {
	Description string
	Quantity    string
	UnitPrice   string
	Amount      string
	Placeholder bool
}

// itemRows converts invoice lines into display rows. An empty item list
// yields a single "No items" placeholder row.
func itemRows(inv InvoiceData, money func(float64) string) []tableRow {
	if len(inv.Items) == 0 {
		return []tableRow{{Description: noItemsLabel, Placeholder: true}}
	}
	rows := make([]tableRow, len(inv.Items))
	for i, item := range inv.Items {
		rows[i] = tableRow{
			Description: item.Description,
			Quantity:    strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			UnitPrice:   money(item.UnitPrice),
			Amount:      money(item.Amount),
		}
	}
	return rows
}

// totalRow is one line of the totals block.
type totalRow struct {
	Label string
	Value string
	Grand bool
}

// totalsRows builds the totals block: subtotal, a tax line only when the tax
// rate is positive, and the grand total.
func totalsRows(inv InvoiceData, money func(float64) string) []totalRow {
	rows := []totalRow{{Label: "Subtotal", Value: money(inv.Subtotal)}}
	if inv.TaxRate > 0 {
		rows = append(rows, totalRow{
			Label: fmt.Sprintf("Tax (%s%%)", strconv.FormatFloat(inv.TaxRate, 'f', -1, 64)),
			Value: money(inv.TaxAmount),
		})
	}
	rows = append(rows, totalRow{Label: "Total", Value: money(inv.Total), Grand: true})
	return rows
}

// formatDate renders dates the way the invoice layouts expect ("Jan 02, 2006").
func formatDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}

// hexToRGB parses a "#rrggbb" palette color. Malformed values come back black.
func hexToRGB(hex string) (int, int, int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}
