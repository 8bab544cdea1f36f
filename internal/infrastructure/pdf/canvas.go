package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// TextStyle selects font size, weight, color and horizontal alignment for a
// single Text call. Align is "L", "C" or "R" (empty means left).
type TextStyle struct {
	Size  float64
	Bold  bool
	Color Color
	Align string
}

// Canvas is the drawing surface behind the renderer. Primitives are
// side-effecting calls against the current page; none of them moves the
// vertical cursor — that is the Cursor's job. The production implementation
// wraps gofpdf and is built fresh per render, so concurrent renders never
// share canvas state.
type Canvas interface {
	// AddPage appends a page and makes it current.
	AddPage()
	// PageCount reports how many pages exist so far.
	PageCount() int
	// SetPage makes an already-produced page current again; used by the
	// final watermark/page-number pass once the total count is known.
	SetPage(n int)

	// Text draws a single line inside a box of width w starting at (x, y).
	Text(x, y, w float64, st TextStyle, s string)
	// TextWrapped draws s wrapped to width w with the given line height and
	// returns the vertical space consumed.
	TextWrapped(x, y, w, lineH float64, st TextStyle, s string) float64
	// Rect fills a rectangle.
	Rect(x, y, w, h float64, fill Color)
	// Line draws a rule.
	Line(x1, y1, x2, y2, width float64, c Color)
	// Watermark stamps large, low-opacity diagonal text centered on the
	// current page. It must not obscure the page content.
	Watermark(text string, c Color)

	// SetMeta records document title and author.
	SetMeta(title, author string)
	// Output serializes the finished document.
	Output() ([]byte, error)
}

// ── gofpdf implementation ─────────────────────────────────────────────────────

type fpdfCanvas struct {
	doc   *gofpdf.Fpdf
	theme Theme
	tr    func(string) string
}

// newFpdfCanvas builds the production canvas. Automatic page breaks are
// disabled: the Cursor decides when a page ends.
func newFpdfCanvas(t Theme) Canvas {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	return &fpdfCanvas{
		doc:   doc,
		theme: t,
		tr:    doc.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *fpdfCanvas) AddPage()      { c.doc.AddPage() }
func (c *fpdfCanvas) PageCount() int { return c.doc.PageCount() }
func (c *fpdfCanvas) SetPage(n int) { c.doc.SetPage(n) }

func (c *fpdfCanvas) Text(x, y, w float64, st TextStyle, s string) {
	c.applyFont(st)
	align := st.Align
	if align == "" {
		align = "L"
	}
	c.doc.SetXY(x, y)
	c.doc.CellFormat(w, st.Size*0.45, c.encode(s), "", 0, align, false, 0, "")
}

func (c *fpdfCanvas) TextWrapped(x, y, w, lineH float64, st TextStyle, s string) float64 {
	c.applyFont(st)
	c.doc.SetXY(x, y)
	c.doc.MultiCell(w, lineH, c.encode(s), "", "L", false)
	return c.doc.GetY() - y
}

func (c *fpdfCanvas) Rect(x, y, w, h float64, fill Color) {
	c.doc.SetFillColor(fill.R, fill.G, fill.B)
	c.doc.Rect(x, y, w, h, "F")
}

func (c *fpdfCanvas) Line(x1, y1, x2, y2, width float64, col Color) {
	c.doc.SetDrawColor(col.R, col.G, col.B)
	c.doc.SetLineWidth(width)
	c.doc.Line(x1, y1, x2, y2)
}

func (c *fpdfCanvas) Watermark(text string, col Color) {
	pw, ph := c.doc.GetPageSize()
	c.doc.SetFont(c.theme.BaseFont, "B", 96)
	c.doc.SetTextColor(col.R, col.G, col.B)
	c.doc.SetAlpha(0.08, "Normal")
	c.doc.TransformBegin()
	c.doc.TransformRotate(45, pw/2, ph/2)
	tw := c.doc.GetStringWidth(text)
	c.doc.Text(pw/2-tw/2, ph/2, c.encode(text))
	c.doc.TransformEnd()
	c.doc.SetAlpha(1, "Normal")
}

func (c *fpdfCanvas) SetMeta(title, author string) {
	c.doc.SetTitle(title, true)
	c.doc.SetAuthor(author, true)
}

func (c *fpdfCanvas) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: serialize document: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *fpdfCanvas) applyFont(st TextStyle) {
	style := ""
	if st.Bold {
		style = "B"
	}
	c.doc.SetFont(c.theme.BaseFont, style, st.Size)
	c.doc.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
}

// encode maps strings into the cp1252 space of the PDF core fonts. The
// rupee sign has no glyph there, so it goes out as "Rs. ".
func (c *fpdfCanvas) encode(s string) string {
	return c.tr(strings.ReplaceAll(s, "₹", "Rs. "))
}
