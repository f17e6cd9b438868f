package pdf

import "github.com/jung-kurt/gofpdf"

func newCorporateExecutiveTemplate() Template {
	colors := Palette{
		Primary:   "#1f2937",
		Secondary: "#f9fafb",
		Accent:    "#d1d5db",
		Text:      "#111827",
		Muted:     "#6b7280",
	}

	return Template{
		ID:          "corporate-executive",
		Name:        "Corporate Executive",
		Description: "Formal executive template with structured layout and professional borders",
		Preview:     "/templates/corporate-executive-preview.png",
		Colors:      colors,
		draw: func(doc *gofpdf.Fpdf, inv InvoiceData, money func(float64) string) {
			tr := doc.UnicodeTranslatorFromDescriptor("")
			doc.SetMargins(15, 15, 15)

			textR, textG, textB := hexToRGB(colors.Text)
			primR, primG, primB := hexToRGB(colors.Primary)
			accR, accG, accB := hexToRGB(colors.Accent)
			mutedR, mutedG, mutedB := hexToRGB(colors.Muted)
			secR, secG, secB := hexToRGB(colors.Secondary)

			// Full-width dark header band.
			doc.SetFillColor(primR, primG, primB)
			doc.Rect(0, 0, 210, 32, "F")
			doc.SetXY(15, 8)
			doc.SetFont("Helvetica", "B", 20)
			doc.SetTextColor(255, 255, 255)
			doc.CellFormat(120, 9, tr(inv.Company.Name), "", 2, "L", false, 0, "")
			doc.SetFont("Helvetica", "", 8)
			doc.SetTextColor(accR, accG, accB)
			if inv.Company.Address != "" {
				doc.CellFormat(120, 4.5, tr(inv.Company.Address), "", 2, "L", false, 0, "")
			}
			doc.SetXY(150, 10)
			doc.SetFont("Helvetica", "B", 16)
			doc.SetTextColor(255, 255, 255)
			doc.CellFormat(45, 8, "INVOICE", "", 2, "R", false, 0, "")
			doc.SetFont("Helvetica", "", 9)
			doc.SetTextColor(accR, accG, accB)
			doc.CellFormat(45, 5, tr("No. "+inv.Number), "", 2, "R", false, 0, "")

			doc.SetY(42)

			// Structured, bordered detail boxes.
			doc.SetDrawColor(accR, accG, accB)
			doc.SetLineWidth(0.3)
			top := doc.GetY()

			doc.Rect(15, top, 86, 40, "D")
			doc.SetXY(18, top+3)
			doc.SetFont("Helvetica", "B", 8)
			doc.SetTextColor(mutedR, mutedG, mutedB)
			doc.CellFormat(80, 5, "BILLED TO", "", 2, "L", false, 0, "")
			doc.SetFont("Helvetica", "B", 10)
			doc.SetTextColor(textR, textG, textB)
			doc.CellFormat(80, 5, tr(inv.Client.Name), "", 2, "L", false, 0, "")
			doc.SetFont("Helvetica", "", 8)
			doc.SetTextColor(mutedR, mutedG, mutedB)
			for _, line := range []string{inv.Client.Address, inv.Client.Email} {
				if line == "" {
					continue
				}
				doc.SetX(18)
				doc.CellFormat(80, 4.5, tr(line), "", 2, "L", false, 0, "")
			}

			doc.Rect(109, top, 86, 40, "D")
			doc.SetXY(112, top+3)
			doc.SetFont("Helvetica", "B", 8)
			doc.SetTextColor(mutedR, mutedG, mutedB)
			doc.CellFormat(80, 5, "INVOICE DETAILS", "", 2, "L", false, 0, "")
			doc.SetFont("Helvetica", "", 9)
			details := [][2]string{
				{"Issue Date", formatDate(inv.IssueDate)},
				{"Due Date", formatDate(inv.DueDate)},
				{"Currency", inv.Currency},
			}
			for _, d := range details {
				doc.SetX(112)
				doc.SetTextColor(mutedR, mutedG, mutedB)
				doc.CellFormat(40, 6, d[0], "", 0, "L", false, 0, "")
				doc.SetTextColor(textR, textG, textB)
				doc.CellFormat(40, 6, d[1], "", 1, "R", false, 0, "")
			}

			doc.SetY(top + 48)

			// Fully bordered items table.
			colW := []float64{90, 20, 35, 35}
			doc.SetFillColor(primR, primG, primB)
			doc.SetTextColor(255, 255, 255)
			doc.SetFont("Helvetica", "B", 9)
			headers := []string{"DESCRIPTION", "QTY", "UNIT PRICE", "AMOUNT"}
			aligns := []string{"L", "R", "R", "R"}
			for i, h := range headers {
				doc.CellFormat(colW[i], 9, h, "1", 0, aligns[i], true, 0, "")
			}
			doc.Ln(-1)

			doc.SetFont("Helvetica", "", 9)
			doc.SetTextColor(textR, textG, textB)
			fill := false
			for _, row := range itemRows(inv, money) {
				if fill {
					doc.SetFillColor(secR, secG, secB)
				} else {
					doc.SetFillColor(255, 255, 255)
				}
				if row.Placeholder {
					doc.CellFormat(180, 8, tr(row.Description), "1", 1, "C", true, 0, "")
				} else {
					doc.CellFormat(colW[0], 8, tr(row.Description), "1", 0, "L", true, 0, "")
					doc.CellFormat(colW[1], 8, row.Quantity, "1", 0, "R", true, 0, "")
					doc.CellFormat(colW[2], 8, tr(row.UnitPrice), "1", 0, "R", true, 0, "")
					doc.CellFormat(colW[3], 8, tr(row.Amount), "1", 1, "R", true, 0, "")
				}
				fill = !fill
			}

			// Totals in a bordered box bottom-right.
			doc.Ln(4)
			boxTop := doc.GetY()
			rows := totalsRows(inv, money)
			doc.Rect(125, boxTop, 70, float64(len(rows))*8+4, "D")
			doc.SetY(boxTop + 2)
			for _, row := range rows {
				doc.SetX(128)
				if row.Grand {
					doc.SetFont("Helvetica", "B", 11)
				} else {
					doc.SetFont("Helvetica", "", 9)
				}
				doc.SetTextColor(mutedR, mutedG, mutedB)
				doc.CellFormat(34, 8, row.Label, "", 0, "L", false, 0, "")
				doc.SetTextColor(textR, textG, textB)
				doc.CellFormat(30, 8, tr(row.Value), "", 1, "R", false, 0, "")
			}

			if inv.Notes != "" {
				doc.Ln(8)
				doc.SetFont("Helvetica", "B", 8)
				doc.SetTextColor(mutedR, mutedG, mutedB)
				doc.CellFormat(0, 5, "TERMS & NOTES", "", 1, "L", false, 0, "")
				doc.SetFont("Helvetica", "", 9)
				doc.SetTextColor(textR, textG, textB)
				doc.MultiCell(180, 5, tr(inv.Notes), "", "L", false)
			}
		},
	}
}
