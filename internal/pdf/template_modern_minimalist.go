package pdf

import "github.com/jung-kurt/gofpdf"

func newModernMinimalistTemplate() Template {
	colors := Palette{
		Primary:   "#2563eb",
		Secondary: "#f8fafc",
		Accent:    "#64748b",
		Text:      "#0f172a",
		Muted:     "#64748b",
	}

	return Template{
		ID:          "modern-minimalist",
		Name:        "Modern Minimalist",
		Description: "Clean, minimal design with elegant typography and subtle accents",
		Preview:     "/templates/modern-minimalist-preview.png",
		Colors:      colors,
		draw: func(doc *gofpdf.Fpdf, inv InvoiceData, money func(float64) string) {
			tr := doc.UnicodeTranslatorFromDescriptor("")
			doc.SetMargins(18, 18, 18)
			doc.SetXY(18, 18)

			textR, textG, textB := hexToRGB(colors.Text)
			primR, primG, primB := hexToRGB(colors.Primary)
			mutedR, mutedG, mutedB := hexToRGB(colors.Muted)
			secR, secG, secB := hexToRGB(colors.Secondary)

			// Header: light title on the left, number on the right.
			doc.SetFont("Helvetica", "", 26)
			doc.SetTextColor(textR, textG, textB)
			doc.CellFormat(120, 12, "Invoice", "", 0, "L", false, 0, "")
			doc.SetFont("Helvetica", "", 13)
			doc.SetTextColor(mutedR, mutedG, mutedB)
			doc.CellFormat(54, 12, tr("#"+inv.Number), "", 1, "R", false, 0, "")

			doc.SetDrawColor(primR, primG, primB)
			doc.SetLineWidth(0.6)
			doc.Line(18, doc.GetY()+3, 192, doc.GetY()+3)
			doc.SetY(doc.GetY() + 10)

			// From / To / Dates columns.
			top := doc.GetY()
			drawPartyColumn(doc, tr, 18, top, 58, "From", inv.Company, colors)
			drawPartyColumn(doc, tr, 80, top, 58, "To", inv.Client, colors)

			doc.SetXY(142, top)
			doc.SetFont("Helvetica", "", 8)
			doc.SetTextColor(mutedR, mutedG, mutedB)
			doc.CellFormat(25, 5, "Issue Date", "", 0, "L", false, 0, "")
			doc.SetTextColor(textR, textG, textB)
			doc.CellFormat(25, 5, formatDate(inv.IssueDate), "", 1, "R", false, 0, "")
			doc.SetX(142)
			doc.SetTextColor(mutedR, mutedG, mutedB)
			doc.CellFormat(25, 5, "Due Date", "", 0, "L", false, 0, "")
			doc.SetTextColor(textR, textG, textB)
			doc.CellFormat(25, 5, formatDate(inv.DueDate), "", 1, "R", false, 0, "")

			doc.SetY(top + 42)

			// Items table with a flat, filled header row.
			colW := []float64{92, 22, 30, 30}
			doc.SetFillColor(secR, secG, secB)
			doc.SetTextColor(mutedR, mutedG, mutedB)
			doc.SetFont("Helvetica", "B", 8)
			headers := []string{"Description", "Qty", "Rate", "Amount"}
			aligns := []string{"L", "R", "R", "R"}
			for i, h := range headers {
				doc.CellFormat(colW[i], 8, h, "", 0, aligns[i], true, 0, "")
			}
			doc.Ln(-1)

			doc.SetFont("Helvetica", "", 9)
			doc.SetTextColor(textR, textG, textB)
			doc.SetDrawColor(secR, secG, secB)
			doc.SetLineWidth(0.2)
			for _, row := range itemRows(inv, money) {
				if row.Placeholder {
					doc.CellFormat(174, 8, tr(row.Description), "B", 1, "C", false, 0, "")
					continue
				}
				doc.CellFormat(colW[0], 8, tr(row.Description), "B", 0, "L", false, 0, "")
				doc.CellFormat(colW[1], 8, row.Quantity, "B", 0, "R", false, 0, "")
				doc.CellFormat(colW[2], 8, tr(row.UnitPrice), "B", 0, "R", false, 0, "")
				doc.CellFormat(colW[3], 8, tr(row.Amount), "B", 1, "R", false, 0, "")
			}

			// Totals block, right-aligned.
			doc.Ln(4)
			for _, row := range totalsRows(inv, money) {
				doc.SetX(114)
				if row.Grand {
					doc.SetDrawColor(primR, primG, primB)
					doc.SetLineWidth(0.4)
					doc.Line(114, doc.GetY(), 192, doc.GetY())
					doc.SetFont("Helvetica", "B", 11)
					doc.SetTextColor(primR, primG, primB)
				} else {
					doc.SetFont("Helvetica", "", 9)
					doc.SetTextColor(mutedR, mutedG, mutedB)
				}
				doc.CellFormat(44, 8, row.Label, "", 0, "L", false, 0, "")
				doc.SetTextColor(textR, textG, textB)
				if row.Grand {
					doc.SetTextColor(primR, primG, primB)
				}
				doc.CellFormat(34, 8, tr(row.Value), "", 1, "R", false, 0, "")
			}

			// Notes.
			if inv.Notes != "" {
				doc.Ln(8)
				doc.SetFont("Helvetica", "B", 8)
				doc.SetTextColor(mutedR, mutedG, mutedB)
				doc.CellFormat(0, 5, "Notes", "", 1, "L", false, 0, "")
				doc.SetFont("Helvetica", "", 9)
				doc.SetTextColor(textR, textG, textB)
				doc.MultiCell(174, 5, tr(inv.Notes), "", "L", false)
			}
		},
	}
}

// drawPartyColumn renders a labeled company/client block at the given origin.
// Shared by the layouts that use plain stacked party columns.
func drawPartyColumn(doc *gofpdf.Fpdf, tr func(string) string, x, y, w float64, label string, party PartyInfo, colors Palette) {
	textR, textG, textB := hexToRGB(colors.Text)
	mutedR, mutedG, mutedB := hexToRGB(colors.Muted)

	doc.SetXY(x, y)
	doc.SetFont("Helvetica", "B", 8)
	doc.SetTextColor(mutedR, mutedG, mutedB)
	doc.CellFormat(w, 5, label, "", 2, "L", false, 0, "")

	doc.SetFont("Helvetica", "B", 10)
	doc.SetTextColor(textR, textG, textB)
	doc.CellFormat(w, 5, tr(party.Name), "", 2, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 8)
	doc.SetTextColor(mutedR, mutedG, mutedB)
	for _, line := range []string{party.Address, party.Email, party.Phone, party.Website} {
		if line == "" {
			continue
		}
		doc.CellFormat(w, 4.5, tr(line), "", 2, "L", false, 0, "")
	}
}
