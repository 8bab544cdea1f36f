package pdf

import "github.com/tilekart/tilekart-api/internal/domain/entity"

// Color is an RGB triple (0-255 per channel).
type Color struct {
	R, G, B int
}

// Theme is the immutable style configuration injected into a Renderer.
// Multiple renderers with different themes can coexist; nothing here is
// mutated after construction.
type Theme struct {
	Primary   Color // brand color: header band, total row
	Accent    Color // paid badge
	Danger    Color // overdue badge
	Gray      Color
	LightGray Color // row striping, summary box background
	White     Color
	Text      Color

	PageWidth  float64 // mm
	PageHeight float64 // mm
	Margin     float64 // mm
	BaseFont   string
}

// DefaultTheme is an A4 portrait layout with the house palette.
func DefaultTheme() Theme {
	return Theme{
		Primary:    Color{R: 13, G: 71, B: 161},
		Accent:     Color{R: 46, G: 125, B: 50},
		Danger:     Color{R: 183, G: 28, B: 28},
		Gray:       Color{R: 120, G: 120, B: 120},
		LightGray:  Color{R: 240, G: 240, B: 240},
		White:      Color{R: 255, G: 255, B: 255},
		Text:       Color{R: 33, G: 33, B: 33},
		PageWidth:  210,
		PageHeight: 297,
		Margin:     12,
		BaseFont:   "Helvetica",
	}
}

// ContentWidth is the writable width between the margins.
func (t Theme) ContentWidth() float64 {
	return t.PageWidth - 2*t.Margin
}

// StatusColor maps an invoice status to its badge fill. Unknown statuses
// fall back to the Draft color; a bad status must never abort a render.
func (t Theme) StatusColor(status string) Color {
	switch status {
	case entity.InvoiceStatusSent:
		return t.Primary
	case entity.InvoiceStatusPaid:
		return t.Accent
	case entity.InvoiceStatusOverdue:
		return t.Danger
	case entity.InvoiceStatusDraft, entity.InvoiceStatusCancelled:
		return t.Gray
	default:
		return t.Gray
	}
}
