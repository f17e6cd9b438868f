package pdf

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/invoxa/invoxa/internal/apperrors"
)

// DefaultTemplateID is the template used when a render request names none.
const DefaultTemplateID = "modern-minimalist"

// Palette is a template's color scheme, hex-encoded ("#rrggbb").
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Text      string `json:"text"`
	Muted     string `json:"muted"`
}

// drawFunc lays one sanitized invoice projection out onto a fresh A4 document.
// money formats an amount in the invoice currency.
type drawFunc func(doc *gofpdf.Fpdf, inv InvoiceData, money func(float64) string)

// Template bundles a document layout with its palette and metadata. All
// templates share the same data contract and computed totals; they differ
// only in typography, palette and block arrangement.
type Template struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Preview     string  `json:"preview"`
	Colors      Palette `json:"colors"`
	draw        drawFunc
}

// Registry is a name-keyed collection of invoice templates. It is built once
// at the composition point and read-only thereafter; construction fails on a
// duplicate id rather than silently overwriting.
type Registry struct {
	byID  map[string]*Template
	order []string
}

// NewRegistry builds a registry from an explicit template list.
func NewRegistry(templates ...Template) (*Registry, error) {
	r := &Registry{byID: make(map[string]*Template, len(templates))}
	for i := range templates {
		t := templates[i]
		if t.ID == "" {
			return nil, fmt.Errorf("%w: template %q has empty id", apperrors.ErrValidation, t.Name)
		}
		if t.draw == nil {
			return nil, fmt.Errorf("%w: template %q has no draw function", apperrors.ErrValidation, t.ID)
		}
		if _, exists := r.byID[t.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate template id %q", apperrors.ErrDuplicate, t.ID)
		}
		r.byID[t.ID] = &t
		r.order = append(r.order, t.ID)
	}
	return r, nil
}

// BuiltinTemplates returns the four stock invoice templates in their
// canonical registration order.
func BuiltinTemplates() []Template {
	return []Template{
		newModernMinimalistTemplate(),
		newCorporateExecutiveTemplate(),
		newCreativeDesignerTemplate(),
		newClassicProfessionalTemplate(),
	}
}

// NewBuiltinRegistry builds a registry holding the stock templates. The
// builtin set has no id collisions, so construction cannot fail.
func NewBuiltinRegistry() *Registry {
	r, err := NewRegistry(BuiltinTemplates()...)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the template registered under id.
func (r *Registry) Get(id string) (*Template, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// Default returns the first registered template. It returns
// apperrors.ErrNoTemplates when the registry is empty.
func (r *Registry) Default() (*Template, error) {
	if len(r.order) == 0 {
		return nil, apperrors.ErrNoTemplates
	}
	return r.byID[r.order[0]], nil
}

// All returns every registered template in insertion order.
func (r *Registry) All() []Template {
	out := make([]Template, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, *r.byID[id])
	}
	return out
}
