package pdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tilekart/tilekart-api/internal/domain/entity"
	"github.com/tilekart/tilekart-api/internal/domain/money"
)

// Section geometry (mm).
const (
	lineH      = 5.0
	tableRowH  = 7.0
	tableHeadH = 8.0
	badgeW     = 32.0
	badgeH     = 8.0
	summaryW   = 84.0
)

// renderState bundles what every section needs: the canvas, the vertical
// cursor, the theme and the immutable request. Sections run in a fixed
// order and only ever append.
type renderState struct {
	c     Canvas
	cu    *Cursor
	theme Theme
	money money.Formatter
	req   RenderRequest
}

// ── 1. Header band ────────────────────────────────────────────────────────────

// drawHeader paints the brand band: business identity left, contact and tax
// registration right.
func (s *renderState) drawHeader() {
	t := s.theme
	biz := s.req.Business
	y := s.cu.Y()
	bandH := 26.0

	s.c.Rect(t.Margin, y, t.ContentWidth(), bandH, t.Primary)
	s.c.Text(t.Margin+4, y+4, 110, TextStyle{Size: 15, Bold: true, Color: t.White}, biz.LegalName)
	s.c.Text(t.Margin+4, y+12, 110, TextStyle{Size: 8, Color: t.White}, biz.Address)

	right := t.PageWidth - t.Margin - 4
	contact := []string{}
	if biz.Phone != "" {
		contact = append(contact, "Phone: "+biz.Phone)
	}
	if biz.Email != "" {
		contact = append(contact, "Email: "+biz.Email)
	}
	if biz.GSTIN != "" {
		contact = append(contact, "GSTIN: "+biz.GSTIN)
	}
	if biz.PAN != "" {
		contact = append(contact, "PAN: "+biz.PAN)
	}
	for i, line := range contact {
		s.c.Text(right-70, y+4+float64(i)*4.5, 70, TextStyle{Size: 8, Color: t.White, Align: "R"}, line)
	}

	s.cu.Advance(bandH + 6)
}

// ── 2. Title + status badge ───────────────────────────────────────────────────

func (s *renderState) drawTitleAndBadge() {
	t := s.theme
	y := s.cu.Y()

	s.c.Text(t.Margin, y, 100, TextStyle{Size: 16, Bold: true, Color: t.Primary}, "TAX INVOICE")

	status := s.req.Invoice.Status
	badgeX := t.PageWidth - t.Margin - badgeW
	s.c.Rect(badgeX, y, badgeW, badgeH, t.StatusColor(status))
	s.c.Text(badgeX, y+2, badgeW, TextStyle{Size: 9, Bold: true, Color: t.White, Align: "C"},
		strings.ToUpper(status))

	s.cu.Advance(badgeH + 6)
}

// ── 3. Metadata block ─────────────────────────────────────────────────────────

// drawMetadata renders two columns: invoice facts left, "BILL TO" right.
// Optional customer fields produce no line at all when absent.
func (s *renderState) drawMetadata() {
	t := s.theme
	inv := s.req.Invoice
	cust := s.req.Customer
	y := s.cu.Y()

	left := []string{
		"Invoice No: " + inv.InvoiceNumber,
		"Invoice Date: " + formatDate(inv.InvoiceDate),
		"Due Date: " + formatDate(inv.DueDate),
	}
	if inv.PaymentTerms != "" {
		left = append(left, "Payment Terms: "+inv.PaymentTerms)
	}
	left = append(left,
		"Status: "+inv.Status,
		"Currency: INR (₹)",
	)
	for i, line := range left {
		s.c.Text(t.Margin, y+float64(i)*lineH, 90, TextStyle{Size: 9, Color: t.Text}, line)
	}

	colX := t.Margin + 100.0
	colW := t.ContentWidth() - 100.0
	s.c.Text(colX, y, colW, TextStyle{Size: 9, Bold: true, Color: t.Primary}, "BILL TO")
	right := []string{cust.Name}
	if cust.ContactPerson != "" {
		right = append(right, "Attn: "+cust.ContactPerson)
	}
	if cust.Address != "" {
		right = append(right, cust.Address)
	}
	if locality := joinNonEmpty(", ", cust.City, cust.State, cust.PostalCode); locality != "" {
		right = append(right, locality)
	}
	if cust.Phone != "" {
		right = append(right, "Phone: "+cust.Phone)
	}
	if cust.Email != "" {
		right = append(right, "Email: "+cust.Email)
	}
	if cust.GSTIN != "" {
		right = append(right, "GSTIN: "+cust.GSTIN)
	}
	for i, line := range right {
		st := TextStyle{Size: 9, Color: t.Text}
		if i == 0 {
			st.Bold = true
		}
		s.c.Text(colX, y+lineH+float64(i)*lineH, colW, st, line)
	}

	rows := len(left)
	if rr := len(right) + 1; rr > rows {
		rows = rr
	}
	s.cu.Advance(float64(rows)*lineH + 6)
}

// ── 4. Items table ────────────────────────────────────────────────────────────

// Column widths sum to the content width (186mm on A4 with 12mm margins).
var tableCols = []struct {
	title string
	width float64
	align string
}{
	{"Item", 62, "L"},
	{"SKU", 28, "L"},
	{"Qty", 14, "C"},
	{"Unit Price", 30, "R"},
	{"Disc %", 18, "R"},
	{"Amount", 34, "R"},
}

// drawItemsTable renders one row per line item in display order. When rows
// would overflow the page the cursor breaks it and the column header is
// repeated on the continuation page. An empty item list still produces the
// header row.
func (s *renderState) drawItemsTable() {
	s.drawTableHead()
	for i, item := range s.req.Items {
		if s.cu.EnsureRoom(tableRowH) {
			s.drawTableHead()
		}
		s.drawTableRow(item, i%2 == 1)
	}
	s.cu.Advance(4)
}

func (s *renderState) drawTableHead() {
	t := s.theme
	y := s.cu.Y()
	s.c.Rect(t.Margin, y, t.ContentWidth(), tableHeadH, t.Primary)
	x := t.Margin
	for _, col := range tableCols {
		s.c.Text(x+1, y+2, col.width-2, TextStyle{Size: 9, Bold: true, Color: t.White, Align: col.align}, col.title)
		x += col.width
	}
	s.cu.Advance(tableHeadH)
}

func (s *renderState) drawTableRow(item entity.InvoiceItem, striped bool) {
	t := s.theme
	y := s.cu.Y()
	if striped {
		s.c.Rect(t.Margin, y, t.ContentWidth(), tableRowH, t.LightGray)
	}

	sku := item.SKU
	if sku == "" {
		sku = "-"
	}
	cells := []string{
		item.ProductName,
		sku,
		fmt.Sprintf("%d", item.Quantity),
		s.money.Format(item.UnitPrice),
		item.DiscountPercent.StringFixed(1) + "%",
		s.money.Format(item.LineTotal),
	}
	x := t.Margin
	for i, col := range tableCols {
		s.c.Text(x+1, y+1.5, col.width-2, TextStyle{Size: 8.5, Color: t.Text, Align: col.align}, cells[i])
		x += col.width
	}
	s.cu.Advance(tableRowH)
}

// ── 5. Summary box ────────────────────────────────────────────────────────────

// drawSummaryBox renders the right-aligned totals. The IGST line appears
// only when the amount is non-zero; CGST/SGST always print. Both families
// may show together — tax exclusivity is the caller's contract, not ours.
func (s *renderState) drawSummaryBox() {
	t := s.theme
	inv := s.req.Invoice

	type summaryLine struct {
		label string
		value decimal.Decimal
	}
	lines := []summaryLine{
		{"Subtotal", inv.Subtotal},
		{"Discount", inv.DiscountAmount},
		{"CGST", inv.CGSTAmount},
		{"SGST", inv.SGSTAmount},
	}
	if inv.IGSTAmount.IsPositive() {
		lines = append(lines, summaryLine{"IGST", inv.IGSTAmount})
	}

	boxH := float64(len(lines))*lineH + tableHeadH + 4
	s.cu.EnsureRoom(boxH + 2)
	y := s.cu.Y()
	boxX := t.PageWidth - t.Margin - summaryW

	s.c.Rect(boxX, y, summaryW, boxH, t.LightGray)
	for i, line := range lines {
		ly := y + 2 + float64(i)*lineH
		s.c.Text(boxX+3, ly, 40, TextStyle{Size: 9, Color: t.Text}, line.label)
		s.c.Text(boxX+summaryW-44, ly, 40, TextStyle{Size: 9, Color: t.Text, Align: "R"},
			s.money.Format(line.value))
	}

	totalY := y + 2 + float64(len(lines))*lineH
	s.c.Rect(boxX, totalY, summaryW, tableHeadH, t.Primary)
	s.c.Text(boxX+3, totalY+2, 40, TextStyle{Size: 10, Bold: true, Color: t.White}, "TOTAL")
	s.c.Text(boxX+summaryW-49, totalY+2, 45, TextStyle{Size: 10, Bold: true, Color: t.White, Align: "R"},
		s.money.Format(inv.TotalAmount))

	s.cu.Advance(boxH + 6)
}

// ── 6. Amount in words ────────────────────────────────────────────────────────

func (s *renderState) drawAmountInWords() {
	t := s.theme
	words := money.AmountToWords(s.req.Invoice.TotalAmount)
	text := "Amount in words: " + words + " Rupees Only"
	h := s.c.TextWrapped(t.Margin, s.cu.Y(), t.ContentWidth(), lineH,
		TextStyle{Size: 9, Bold: true, Color: t.Text}, text)
	s.cu.Advance(h + 4)
}

// ── 7. Notes / Terms ──────────────────────────────────────────────────────────

func (s *renderState) drawNotesAndTerms() {
	s.drawTextBlock("Notes", s.req.Invoice.Notes)
	s.drawTextBlock("Terms & Conditions", s.req.Invoice.Terms)
}

func (s *renderState) drawTextBlock(title, body string) {
	if body == "" {
		return
	}
	t := s.theme
	s.cu.EnsureRoom(lineH * 3)
	s.c.Text(t.Margin, s.cu.Y(), 90, TextStyle{Size: 9, Bold: true, Color: t.Primary}, title)
	s.cu.Advance(lineH)
	h := s.c.TextWrapped(t.Margin, s.cu.Y(), t.ContentWidth(), 4.5,
		TextStyle{Size: 8.5, Color: t.Gray}, body)
	s.cu.Advance(h + 4)
}

// ── 8. Signature block ────────────────────────────────────────────────────────

func (s *renderState) drawSignature() {
	t := s.theme
	s.cu.EnsureRoom(30)
	y := s.cu.Y()
	x := t.PageWidth - t.Margin - 70

	s.c.Text(x, y, 70, TextStyle{Size: 9, Bold: true, Color: t.Text, Align: "R"},
		"For "+s.req.Business.LegalName)
	s.c.Line(x+10, y+18, x+70, y+18, 0.3, t.Text)
	s.c.Text(x, y+20, 70, TextStyle{Size: 8, Color: t.Gray, Align: "R"}, "Authorized Signature")

	s.cu.Advance(26)
}

// ── 9. Footer rule + disclaimer ───────────────────────────────────────────────

func (s *renderState) drawFooter() {
	t := s.theme
	s.cu.EnsureRoom(12)
	y := s.cu.Y()
	s.c.Line(t.Margin, y, t.PageWidth-t.Margin, y, 0.3, t.Gray)
	s.c.Text(t.Margin, y+2, t.ContentWidth(), TextStyle{Size: 7.5, Color: t.Gray, Align: "C"},
		"This is a computer generated invoice and does not require a physical signature.")
	s.cu.Advance(10)
}

// ── 10 + 11. Per-page overlay: watermark and page numbers ─────────────────────

// stampOverlay runs after all content exists, when the true page count is
// known. It revisits every page: drafts get the diagonal watermark, and all
// pages get "Page i of N" bottom-right. This second traversal is what keeps
// N correct on page 1 of a multi-page invoice.
func (s *renderState) stampOverlay() {
	t := s.theme
	total := s.c.PageCount()
	draft := s.req.Invoice.Status == entity.InvoiceStatusDraft
	for p := 1; p <= total; p++ {
		s.c.SetPage(p)
		if draft {
			s.c.Watermark("DRAFT", t.Gray)
		}
		s.c.Text(t.PageWidth-t.Margin-40, t.PageHeight-8, 40,
			TextStyle{Size: 8, Color: t.Gray, Align: "R"},
			fmt.Sprintf("Page %d of %d", p, total))
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatDate renders dd/mm/yyyy; a zero time renders as a dash. Unparseable
// date strings never reach this point — the request DTO rejects them.
func formatDate(tm time.Time) string {
	if tm.IsZero() {
		return "—"
	}
	return tm.Format("02/01/2006")
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
