package pdf

import "github.com/jung-kurt/gofpdf"

func newCreativeDesignerTemplate() Template {
	colors := Palette{
		Primary:   "#ec4899",
		Secondary: "#fdf2f8",
		Accent:    "#f97316",
		Text:      "#0f172a",
		Muted:     "#64748b",
	}

	return Template{
		ID:          "creative-designer",
		Name:        "Creative Designer",
		Description: "Modern creative template with asymmetric layout and bold geometric elements",
		Preview:     "/templates/creative-designer-preview.png",
		Colors:      colors,
		draw: func(doc *gofpdf.Fpdf, inv InvoiceData, money func(float64) string) {
			tr := doc.UnicodeTranslatorFromDescriptor("")
			doc.SetMargins(26, 18, 15)

			textR, textG, textB := hexToRGB(colors.Text)
			primR, primG, primB := hexToRGB(colors.Primary)
			accR, accG, accB := hexToRGB(colors.Accent)
			mutedR, mutedG, mutedB := hexToRGB(colors.Muted)
			secR, secG, secB := hexToRGB(colors.Secondary)

			// Geometric accents: full-height sidebar band plus a corner circle.
			doc.SetFillColor(primR, primG, primB)
			doc.Rect(0, 0, 14, 297, "F")
			doc.SetFillColor(accR, accG, accB)
			doc.Circle(200, 14, 16, "F")

			// Asymmetric header: oversized title, number tucked below.
			doc.SetXY(26, 22)
			doc.SetFont("Helvetica", "B", 30)
			doc.SetTextColor(primR, primG, primB)
			doc.CellFormat(120, 14, "INVOICE", "", 1, "L", false, 0, "")
			doc.SetX(26)
			doc.SetFont("Helvetica", "", 11)
			doc.SetTextColor(mutedR, mutedG, mutedB)
			doc.CellFormat(120, 6, tr("#"+inv.Number), "", 1, "L", false, 0, "")

			doc.Ln(8)
			top := doc.GetY()
			drawPartyColumn(doc, tr, 26, top, 70, "From", inv.Company, colors)
			drawPartyColumn(doc, tr, 104, top, 60, "Billed To", inv.Client, colors)

			doc.SetXY(168, top)
			doc.SetFillColor(secR, secG, secB)
			doc.Rect(166, top-2, 29, 24, "F")
			doc.SetXY(168, top)
			doc.SetFont("Helvetica", "B", 7)
			doc.SetTextColor(primR, primG, primB)
			doc.CellFormat(25, 4, "ISSUED", "", 2, "L", false, 0, "")
			doc.SetFont("Helvetica", "", 8)
			doc.SetTextColor(textR, textG, textB)
			doc.CellFormat(25, 4.5, formatDate(inv.IssueDate), "", 2, "L", false, 0, "")
			doc.SetFont("Helvetica", "B", 7)
			doc.SetTextColor(primR, primG, primB)
			doc.CellFormat(25, 4, "DUE", "", 2, "L", false, 0, "")
			doc.SetFont("Helvetica", "", 8)
			doc.SetTextColor(textR, textG, textB)
			doc.CellFormat(25, 4.5, formatDate(inv.DueDate), "", 2, "L", false, 0, "")

			doc.SetY(top + 44)

			// Items table: accent-filled header, zebra body.
			colW := []float64{87, 20, 31, 31}
			doc.SetFillColor(accR, accG, accB)
			doc.SetTextColor(255, 255, 255)
			doc.SetFont("Helvetica", "B", 9)
			headers := []string{"What we did", "Qty", "Rate", "Amount"}
			aligns := []string{"L", "R", "R", "R"}
			for i, h := range headers {
				doc.CellFormat(colW[i], 9, h, "", 0, aligns[i], true, 0, "")
			}
			doc.Ln(-1)

			doc.SetFont("Helvetica", "", 9)
			fill := true
			for _, row := range itemRows(inv, money) {
				if fill {
					doc.SetFillColor(secR, secG, secB)
				} else {
					doc.SetFillColor(255, 255, 255)
				}
				doc.SetTextColor(textR, textG, textB)
				if row.Placeholder {
					doc.CellFormat(169, 8, tr(row.Description), "", 1, "C", true, 0, "")
				} else {
					doc.CellFormat(colW[0], 8, tr(row.Description), "", 0, "L", true, 0, "")
					doc.CellFormat(colW[1], 8, row.Quantity, "", 0, "R", true, 0, "")
					doc.CellFormat(colW[2], 8, tr(row.UnitPrice), "", 0, "R", true, 0, "")
					doc.CellFormat(colW[3], 8, tr(row.Amount), "", 1, "R", true, 0, "")
				}
				fill = !fill
			}

			// Totals: grand total in a filled primary block.
			doc.Ln(6)
			for _, row := range totalsRows(inv, money) {
				doc.SetX(118)
				if row.Grand {
					doc.SetFillColor(primR, primG, primB)
					doc.SetTextColor(255, 255, 255)
					doc.SetFont("Helvetica", "B", 11)
					doc.CellFormat(43, 10, row.Label, "", 0, "L", true, 0, "")
					doc.CellFormat(34, 10, tr(row.Value), "", 1, "R", true, 0, "")
					continue
				}
				doc.SetFont("Helvetica", "", 9)
				doc.SetTextColor(mutedR, mutedG, mutedB)
				doc.CellFormat(43, 7, row.Label, "", 0, "L", false, 0, "")
				doc.SetTextColor(textR, textG, textB)
				doc.CellFormat(34, 7, tr(row.Value), "", 1, "R", false, 0, "")
			}

			if inv.Notes != "" {
				doc.Ln(8)
				doc.SetFont("Helvetica", "B", 9)
				doc.SetTextColor(accR, accG, accB)
				doc.CellFormat(0, 5, "A note from us", "", 1, "L", false, 0, "")
				doc.SetFont("Helvetica", "", 9)
				doc.SetTextColor(textR, textG, textB)
				doc.MultiCell(169, 5, tr(inv.Notes), "", "L", false)
			}
		},
	}
}
