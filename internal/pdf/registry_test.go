package pdf

import (
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoxa/invoxa/internal/apperrors"
)

func noopDraw(doc *gofpdf.Fpdf, inv InvoiceData, money func(float64) string) {}

func TestNewRegistry_PreservesInsertionOrder(t *testing.T) {
	r, err := NewRegistry(
		Template{ID: "b", Name: "B", draw: noopDraw},
		Template{ID: "a", Name: "A", draw: noopDraw},
		Template{ID: "c", Name: "C", draw: noopDraw},
	)
	require.NoError(t, err)

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
	assert.Equal(t, "c", all[2].ID)

	def, err := r.Default()
	require.NoError(t, err)
	assert.Equal(t, "b", def.ID)
}

func TestNewRegistry_RejectsDuplicateID(t *testing.T) {
	_, err := NewRegistry(
		Template{ID: "dup", Name: "First", draw: noopDraw},
		Template{ID: "dup", Name: "Second", draw: noopDraw},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestNewRegistry_RejectsInvalidTemplates(t *testing.T) {
	_, err := NewRegistry(Template{ID: "", Name: "Nameless", draw: noopDraw})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = NewRegistry(Template{ID: "no-draw", Name: "NoDraw"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRegistry_EmptyDefault(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	_, err = r.Default()
	assert.ErrorIs(t, err, apperrors.ErrNoTemplates)
	assert.Empty(t, r.All())
}

func TestBuiltinTemplates(t *testing.T) {
	r := NewBuiltinRegistry()

	all := r.All()
	require.Len(t, all, 4)
	assert.Equal(t, "modern-minimalist", all[0].ID)
	assert.Equal(t, "corporate-executive", all[1].ID)
	assert.Equal(t, "creative-designer", all[2].ID)
	assert.Equal(t, "classic-professional", all[3].ID)

	def, err := r.Default()
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplateID, def.ID)

	for _, tmpl := range all {
		assert.NotEmpty(t, tmpl.Name, tmpl.ID)
		assert.NotEmpty(t, tmpl.Description, tmpl.ID)
		assert.NotEmpty(t, tmpl.Preview, tmpl.ID)
		assert.NotEmpty(t, tmpl.Colors.Primary, tmpl.ID)
	}
}
