package pdf_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoxa/invoxa/internal/apperrors"
	"github.com/invoxa/invoxa/internal/pdf"
)

// plainMoney is a minimal MoneyFormatter for tests.
type plainMoney struct{}

func (plainMoney) FormatCurrency(amount float64, code string) string {
	return fmt.Sprintf("%s %.2f", code, amount)
}

func sampleInvoice() pdf.InvoiceData {
	return pdf.InvoiceData{
		Number:    "INV-000042",
		IssueDate: time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2025, time.April, 3, 0, 0, 0, 0, time.UTC),
		Currency:  "USD",
		Company:   pdf.PartyInfo{Name: "Invoxa LLC", Email: "billing@invoxa.test", Address: "1 Main St"},
		Client:    pdf.PartyInfo{Name: "Acme Corp", Email: "ap@acme.test", Address: "9 Side Ave"},
		Items: []pdf.LineItem{
			{Description: "Design work", Quantity: 10, UnitPrice: 120, Amount: 1200},
			{Description: "Hosting", Quantity: 1, UnitPrice: 50, Amount: 50},
		},
		Subtotal:  1250,
		TaxRate:   10,
		TaxAmount: 125,
		Total:     1375,
		Notes:     "Payment due within 30 days.",
	}
}

func TestRenderer_RenderProducesPDF(t *testing.T) {
	renderer := pdf.NewRenderer(pdf.NewBuiltinRegistry(), plainMoney{})

	for _, tmpl := range pdf.BuiltinTemplates() {
		data, err := renderer.Render(context.Background(), tmpl.ID, sampleInvoice())
		require.NoError(t, err, tmpl.ID)
		require.True(t, len(data) > 4, tmpl.ID)
		assert.Equal(t, "%PDF", string(data[:4]), tmpl.ID)
	}
}

func TestRenderer_EmptyAndUnknownIDFallBackToDefault(t *testing.T) {
	renderer := pdf.NewRenderer(pdf.NewBuiltinRegistry(), plainMoney{})

	data, err := renderer.Render(context.Background(), "", sampleInvoice())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))

	data, err = renderer.Render(context.Background(), "does-not-exist", sampleInvoice())
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderer_EmptyRegistry(t *testing.T) {
	registry, err := pdf.NewRegistry()
	require.NoError(t, err)
	renderer := pdf.NewRenderer(registry, plainMoney{})

	_, err = renderer.Render(context.Background(), "anything", sampleInvoice())
	require.Error(t, err)

	var loadErr *pdf.TemplateLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "anything", loadErr.TemplateID)
	assert.ErrorIs(t, err, apperrors.ErrNoTemplates)
}

func TestRenderer_ReusesDocumentForUnchangedContent(t *testing.T) {
	renderer := pdf.NewRenderer(pdf.NewBuiltinRegistry(), plainMoney{})
	inv := sampleInvoice()

	first, err := renderer.Render(context.Background(), pdf.DefaultTemplateID, inv)
	require.NoError(t, err)
	second, err := renderer.Render(context.Background(), pdf.DefaultTemplateID, inv)
	require.NoError(t, err)
	assert.True(t, &first[0] == &second[0], "unchanged invoice should reuse the previous document")

	inv.Items[0].Description = "Revised design work"
	third, err := renderer.Render(context.Background(), pdf.DefaultTemplateID, inv)
	require.NoError(t, err)
	assert.False(t, &second[0] == &third[0], "changed line items should force a fresh render")
}

func TestRenderer_DistinctInvoicesWithIdenticalItemsRenderSeparately(t *testing.T) {
	renderer := pdf.NewRenderer(pdf.NewBuiltinRegistry(), plainMoney{})

	alice := sampleInvoice()
	alice.Number = "INV-000001"
	alice.Client = pdf.PartyInfo{Name: "Alice GmbH", Email: "ap@alice.test"}

	bob := sampleInvoice()
	bob.Number = "INV-000002"
	bob.Client = pdf.PartyInfo{Name: "Bob Ltd", Email: "ap@bob.test"}

	first, err := renderer.Render(context.Background(), pdf.DefaultTemplateID, alice)
	require.NoError(t, err)
	second, err := renderer.Render(context.Background(), pdf.DefaultTemplateID, bob)
	require.NoError(t, err)

	assert.False(t, &first[0] == &second[0], "a different invoice must never be served the previous document")
	assert.NotEqual(t, first, second)
}

func TestRenderer_ItemlessInvoiceStillRenders(t *testing.T) {
	renderer := pdf.NewRenderer(pdf.NewBuiltinRegistry(), plainMoney{})
	inv := sampleInvoice()
	inv.Items = nil
	inv.Subtotal, inv.TaxRate, inv.TaxAmount, inv.Total = 0, 0, 0, 0

	data, err := renderer.Render(context.Background(), pdf.DefaultTemplateID, inv)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderer_ListTemplates(t *testing.T) {
	renderer := pdf.NewRenderer(pdf.NewBuiltinRegistry(), plainMoney{})

	templates := renderer.ListTemplates()
	require.Len(t, templates, 4)
	assert.Equal(t, pdf.DefaultTemplateID, templates[0].ID)
}
