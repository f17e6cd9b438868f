package pdf

import "github.com/jung-kurt/gofpdf"

func newClassicProfessionalTemplate() Template {
	colors := Palette{
		Primary:   "#1e3a8a",
		Secondary: "#f8fafc",
		Accent:    "#3b82f6",
		Text:      "#1e293b",
		Muted:     "#64748b",
	}

	return Template{
		ID:          "classic-professional",
		Name:        "Classic Professional",
		Description: "Traditional business template with centered layout and timeless design",
		Preview:     "/templates/classic-professional-preview.png",
		Colors:      colors,
		draw: func(doc *gofpdf.Fpdf, inv InvoiceData, money func(float64) string) {
			tr := doc.UnicodeTranslatorFromDescriptor("")
			doc.SetMargins(20, 20, 20)
			doc.SetY(20)

			textR, textG, textB := hexToRGB(colors.Text)
			primR, primG, primB := hexToRGB(colors.Primary)
			mutedR, mutedG, mutedB := hexToRGB(colors.Muted)

			// Centered letterhead with a double rule, serif throughout.
			doc.SetFont("Times", "B", 18)
			doc.SetTextColor(primR, primG, primB)
			doc.CellFormat(0, 9, tr(inv.Company.Name), "", 1, "C", false, 0, "")
			doc.SetFont("Times", "", 9)
			doc.SetTextColor(mutedR, mutedG, mutedB)
			for _, line := range []string{inv.Company.Address, inv.Company.Email, inv.Company.Phone} {
				if line == "" {
					continue
				}
				doc.CellFormat(0, 4.5, tr(line), "", 1, "C", false, 0, "")
			}

			doc.SetDrawColor(primR, primG, primB)
			doc.SetLineWidth(0.5)
			doc.Line(20, doc.GetY()+3, 190, doc.GetY()+3)
			doc.SetLineWidth(0.2)
			doc.Line(20, doc.GetY()+4.2, 190, doc.GetY()+4.2)

			doc.SetY(doc.GetY() + 10)
			doc.SetFont("Times", "B", 14)
			doc.SetTextColor(textR, textG, textB)
			doc.CellFormat(0, 8, "I N V O I C E", "", 1, "C", false, 0, "")

			doc.Ln(4)
			top := doc.GetY()

			// Bill To block left, invoice facts right.
			doc.SetXY(20, top)
			doc.SetFont("Times", "B", 10)
			doc.SetTextColor(primR, primG, primB)
			doc.CellFormat(80, 5, "Bill To:", "", 2, "L", false, 0, "")
			doc.SetFont("Times", "", 10)
			doc.SetTextColor(textR, textG, textB)
			doc.CellFormat(80, 5, tr(inv.Client.Name), "", 2, "L", false, 0, "")
			doc.SetFont("Times", "", 9)
			doc.SetTextColor(mutedR, mutedG, mutedB)
			for _, line := range []string{inv.Client.Address, inv.Client.Email} {
				if line == "" {
					continue
				}
				doc.CellFormat(80, 4.5, tr(line), "", 2, "L", false, 0, "")
			}

			facts := [][2]string{
				{"Invoice No:", inv.Number},
				{"Issue Date:", formatDate(inv.IssueDate)},
				{"Due Date:", formatDate(inv.DueDate)},
			}
			doc.SetXY(130, top)
			doc.SetFont("Times", "", 10)
			for _, f := range facts {
				doc.SetX(130)
				doc.SetTextColor(primR, primG, primB)
				doc.CellFormat(28, 5.5, f[0], "", 0, "L", false, 0, "")
				doc.SetTextColor(textR, textG, textB)
				doc.CellFormat(32, 5.5, tr(f[1]), "", 1, "R", false, 0, "")
			}

			doc.SetY(top + 34)

			// Traditional ruled table.
			colW := []float64{88, 20, 31, 31}
			doc.SetDrawColor(textR, textG, textB)
			doc.SetLineWidth(0.3)
			doc.SetFont("Times", "B", 10)
			doc.SetTextColor(textR, textG, textB)
			headers := []string{"Description", "Qty", "Unit Price", "Amount"}
			aligns := []string{"L", "R", "R", "R"}
			for i, h := range headers {
				doc.CellFormat(colW[i], 8, h, "TB", 0, aligns[i], false, 0, "")
			}
			doc.Ln(-1)

			doc.SetFont("Times", "", 10)
			for _, row := range itemRows(inv, money) {
				if row.Placeholder {
					doc.CellFormat(170, 7.5, tr(row.Description), "B", 1, "C", false, 0, "")
					continue
				}
				doc.CellFormat(colW[0], 7.5, tr(row.Description), "B", 0, "L", false, 0, "")
				doc.CellFormat(colW[1], 7.5, row.Quantity, "B", 0, "R", false, 0, "")
				doc.CellFormat(colW[2], 7.5, tr(row.UnitPrice), "B", 0, "R", false, 0, "")
				doc.CellFormat(colW[3], 7.5, tr(row.Amount), "B", 1, "R", false, 0, "")
			}

			doc.Ln(3)
			for _, row := range totalsRows(inv, money) {
				doc.SetX(120)
				if row.Grand {
					doc.SetFont("Times", "B", 12)
					doc.SetTextColor(primR, primG, primB)
					doc.CellFormat(40, 8, row.Label, "T", 0, "L", false, 0, "")
					doc.CellFormat(30, 8, tr(row.Value), "T", 1, "R", false, 0, "")
					continue
				}
				doc.SetFont("Times", "", 10)
				doc.SetTextColor(textR, textG, textB)
				doc.CellFormat(40, 6.5, row.Label, "", 0, "L", false, 0, "")
				doc.CellFormat(30, 6.5, tr(row.Value), "", 1, "R", false, 0, "")
			}

			if inv.Notes != "" {
				doc.Ln(8)
				doc.SetFont("Times", "B", 10)
				doc.SetTextColor(primR, primG, primB)
				doc.CellFormat(0, 5, "Notes", "", 1, "L", false, 0, "")
				doc.SetFont("Times", "", 9)
				doc.SetTextColor(textR, textG, textB)
				doc.MultiCell(170, 5, tr(inv.Notes), "", "L", false)
			}

			// Centered closing line, the classic touch.
			doc.SetY(270)
			doc.SetFont("Times", "I", 9)
			doc.SetTextColor(mutedR, mutedG, mutedB)
			doc.CellFormat(0, 5, "Thank you for your business.", "", 1, "C", false, 0, "")
		},
	}
}
