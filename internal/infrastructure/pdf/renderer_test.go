package pdf

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilekart/tilekart-api/internal/domain"
	"github.com/tilekart/tilekart-api/internal/domain/entity"
	"github.com/tilekart/tilekart-api/internal/domain/money"
)

// ── recording canvas ──────────────────────────────────────────────────────────

// recCanvas records every drawing call instead of producing PDF bytes, so
// tests can assert on document structure without parsing output.
type recText struct {
	page  int
	style TextStyle
	text  string
}

type recCanvas struct {
	pages      int
	current    int
	texts      []recText
	watermarks []int // pages that got a watermark
}

func (c *recCanvas) AddPage()       { c.pages++; c.current = c.pages }
func (c *recCanvas) PageCount() int { return c.pages }
func (c *recCanvas) SetPage(n int)  { c.current = n }

func (c *recCanvas) Text(_, _, _ float64, st TextStyle, s string) {
	c.texts = append(c.texts, recText{page: c.current, style: st, text: s})
}

func (c *recCanvas) TextWrapped(_, _, _, lineH float64, st TextStyle, s string) float64 {
	c.texts = append(c.texts, recText{page: c.current, style: st, text: s})
	return lineH
}

func (c *recCanvas) Rect(_, _, _, _ float64, _ Color)    {}
func (c *recCanvas) Line(_, _, _, _, _ float64, _ Color) {}

func (c *recCanvas) Watermark(_ string, _ Color) {
	c.watermarks = append(c.watermarks, c.current)
}

func (c *recCanvas) SetMeta(_, _ string)     {}
func (c *recCanvas) Output() ([]byte, error) { return []byte("%PDF-recorded"), nil }

func (c *recCanvas) textsOn(page int) []string {
	var out []string
	for _, t := range c.texts {
		if t.page == page {
			out = append(out, t.text)
		}
	}
	return out
}

func (c *recCanvas) countContaining(sub string) int {
	n := 0
	for _, t := range c.texts {
		if strings.Contains(t.text, sub) {
			n++
		}
	}
	return n
}

func (c *recCanvas) hasContaining(sub string) bool { return c.countContaining(sub) > 0 }

func (c *recCanvas) hasExact(s string) bool {
	for _, t := range c.texts {
		if t.text == s {
			return true
		}
	}
	return false
}

// ── fixtures ──────────────────────────────────────────────────────────────────

func testBusiness() *entity.BusinessProfile {
	return &entity.BusinessProfile{
		ID:        "bp-1",
		CompanyID: "co-1",
		LegalName: "Shree Tiles & Ceramics",
		Address:   "12 MG Road, Pune, Maharashtra 411001",
		Phone:     "+91 98220 11223",
		Email:     "sales@shreetiles.example",
		GSTIN:     "27AABCS1234A1Z5",
		PAN:       "AABCS1234A",
	}
}

func testCustomer() *entity.Customer {
	return &entity.Customer{
		ID:        "cust-1",
		CompanyID: "co-1",
		Name:      "Patil Constructions",
		Address:   "Site Office, Baner",
		City:      "Pune",
		State:     "Maharashtra",
		Phone:     "+91 98765 43210",
		Email:     "accounts@patil.example",
		GSTIN:     "27AABCP9876B1Z2",
	}
}

func testInvoice(status string) *entity.Invoice {
	return &entity.Invoice{
		ID:             "inv-1",
		CompanyID:      "co-1",
		CustomerID:     "cust-1",
		InvoiceNumber:  "INV-2026-0042",
		InvoiceDate:    time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		PaymentTerms:   "Net 30",
		Status:         status,
		Subtotal:       decimal.NewFromInt(1000),
		DiscountAmount: decimal.Zero,
		CGSTAmount:     decimal.NewFromInt(90),
		SGSTAmount:     decimal.NewFromInt(90),
		IGSTAmount:     decimal.Zero,
		TotalAmount:    decimal.NewFromInt(1180),
	}
}

func testItems(n int) []entity.InvoiceItem {
	items := make([]entity.InvoiceItem, n)
	for i := range items {
		items[i] = entity.InvoiceItem{
			ID:          fmt.Sprintf("item-%d", i+1),
			InvoiceID:   "inv-1",
			ProductName: fmt.Sprintf("Vitrified Tile 600x600 Lot %d", i+1),
			SKU:         fmt.Sprintf("VT-600-%03d", i+1),
			Quantity:    10,
			UnitPrice:   decimal.NewFromInt(100),
			LineTotal:   decimal.NewFromInt(1000),
			Position:    i,
		}
	}
	return items
}

func testRequest(status string, itemCount int) RenderRequest {
	return RenderRequest{
		Invoice:  testInvoice(status),
		Customer: testCustomer(),
		Business: testBusiness(),
		Items:    testItems(itemCount),
	}
}

// renderRecorded runs the pipeline against a recording canvas.
func renderRecorded(t *testing.T, req RenderRequest) *recCanvas {
	t.Helper()
	rec := &recCanvas{}
	r := &Renderer{
		theme:     DefaultTheme(),
		money:     money.NewINRFormatter(),
		newCanvas: func(Theme) Canvas { return rec },
	}
	_, err := r.Render(req)
	require.NoError(t, err)
	return rec
}

// ── validation ────────────────────────────────────────────────────────────────

func TestRenderRejectsIncompleteRequests(t *testing.T) {
	r := NewRenderer(DefaultTheme(), money.NewINRFormatter())

	cases := []struct {
		name   string
		mutate func(*RenderRequest)
	}{
		{"nil invoice", func(req *RenderRequest) { req.Invoice = nil }},
		{"nil customer", func(req *RenderRequest) { req.Customer = nil }},
		{"nil business", func(req *RenderRequest) { req.Business = nil }},
		{"empty invoice number", func(req *RenderRequest) { req.Invoice.InvoiceNumber = "" }},
		{"empty customer name", func(req *RenderRequest) { req.Customer.Name = "" }},
		{"empty legal name", func(req *RenderRequest) { req.Business.LegalName = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := testRequest(entity.InvoiceStatusSent, 2)
			tc.mutate(&req)
			_, err := r.Render(req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

// ── watermark and badge ───────────────────────────────────────────────────────

func TestDraftGetsWatermarkOnEveryPage(t *testing.T) {
	rec := renderRecorded(t, testRequest(entity.InvoiceStatusDraft, 60))

	require.Greater(t, rec.pages, 1, "60 items should paginate")
	assert.Len(t, rec.watermarks, rec.pages)
	for p := 1; p <= rec.pages; p++ {
		assert.Contains(t, rec.watermarks, p)
	}
}

func TestNonDraftStatusesGetNoWatermark(t *testing.T) {
	for _, status := range []string{
		entity.InvoiceStatusSent,
		entity.InvoiceStatusPaid,
		entity.InvoiceStatusOverdue,
		entity.InvoiceStatusCancelled,
		"something-unknown",
	} {
		t.Run(status, func(t *testing.T) {
			rec := renderRecorded(t, testRequest(status, 2))
			assert.Empty(t, rec.watermarks)
		})
	}
}

func TestStatusBadgeIsUppercased(t *testing.T) {
	rec := renderRecorded(t, testRequest(entity.InvoiceStatusOverdue, 1))
	assert.True(t, rec.hasContaining("OVERDUE"))
}

func TestUnknownStatusFallsBackToGray(t *testing.T) {
	th := DefaultTheme()
	assert.Equal(t, th.Gray, th.StatusColor("something-unknown"))
	assert.NotEqual(t, th.Gray, th.StatusColor(entity.InvoiceStatusPaid))
}

// ── pagination ────────────────────────────────────────────────────────────────

func TestLongInvoicePaginatesWithRepeatedHeaders(t *testing.T) {
	rec := renderRecorded(t, testRequest(entity.InvoiceStatusSent, 60))

	require.Greater(t, rec.pages, 1)

	// the "Unit Price" column title appears once per table header; 60 rows
	// cannot fit on one page, so the header must repeat at least once
	heads := rec.countContaining("Unit Price")
	assert.GreaterOrEqual(t, heads, 2, "continuation pages repeat the column header")

	// all 60 rows survive, in order
	assert.True(t, rec.hasContaining("Lot 1"))
	assert.True(t, rec.hasContaining("Lot 60"))
}

func TestPageNumbersKnowTheRealTotal(t *testing.T) {
	rec := renderRecorded(t, testRequest(entity.InvoiceStatusSent, 60))

	total := rec.pages
	require.Greater(t, total, 1)
	for p := 1; p <= total; p++ {
		want := fmt.Sprintf("Page %d of %d", p, total)
		assert.Contains(t, rec.textsOn(p), want)
	}
	// page 1 must already carry the final count, not "Page 1 of 1"
	assert.NotContains(t, rec.textsOn(1), "Page 1 of 1")
}

func TestSinglePageInvoiceSaysPageOneOfOne(t *testing.T) {
	rec := renderRecorded(t, testRequest(entity.InvoiceStatusSent, 3))
	require.Equal(t, 1, rec.pages)
	assert.Contains(t, rec.textsOn(1), "Page 1 of 1")
}

// ── items table ───────────────────────────────────────────────────────────────

func TestEmptyItemListStillDrawsHeaderRow(t *testing.T) {
	rec := renderRecorded(t, testRequest(entity.InvoiceStatusSent, 0))
	assert.Equal(t, 1, rec.countContaining("Unit Price"))
	assert.Equal(t, 1, rec.pages)
}

func TestMissingSKURendersDash(t *testing.T) {
	req := testRequest(entity.InvoiceStatusSent, 1)
	req.Items[0].SKU = ""
	rec := renderRecorded(t, req)
	assert.True(t, rec.hasExact("-"))
	assert.False(t, rec.hasContaining("VT-600-001"))
}

// ── metadata ──────────────────────────────────────────────────────────────────

func TestOptionalCustomerFieldsProduceNoLines(t *testing.T) {
	req := testRequest(entity.InvoiceStatusSent, 1)
	req.Customer = &entity.Customer{ID: "cust-2", CompanyID: "co-1", Name: "Walk-in Buyer"}
	rec := renderRecorded(t, req)

	assert.True(t, rec.hasContaining("Walk-in Buyer"))
	assert.False(t, rec.hasContaining("accounts@patil.example"))
	assert.False(t, rec.hasContaining("Attn:"))
	assert.Zero(t, rec.countContaining("GSTIN: 27AABCP"))
}

func TestZeroDueDateRendersDash(t *testing.T) {
	req := testRequest(entity.InvoiceStatusSent, 1)
	req.Invoice.DueDate = time.Time{}
	rec := renderRecorded(t, req)
	assert.True(t, rec.hasContaining("Due Date: —"))
}

func TestMetadataShowsDatesAsDDMMYYYY(t *testing.T) {
	rec := renderRecorded(t, testRequest(entity.InvoiceStatusSent, 1))
	assert.True(t, rec.hasContaining("Invoice Date: 15/08/2026"))
	assert.True(t, rec.hasContaining("Due Date: 14/09/2026"))
}

// ── summary box ───────────────────────────────────────────────────────────────

func TestSummaryShowsGSTSplitAndTotal(t *testing.T) {
	rec := renderRecorded(t, testRequest(entity.InvoiceStatusSent, 1))

	assert.True(t, rec.hasContaining("CGST"))
	assert.True(t, rec.hasContaining("SGST"))
	assert.False(t, rec.hasContaining("IGST"), "zero IGST stays off the invoice")
	assert.True(t, rec.hasContaining("₹1,180.00"))
	assert.True(t, rec.hasContaining("TOTAL"))
}

func TestInterstateInvoiceShowsIGSTLine(t *testing.T) {
	req := testRequest(entity.InvoiceStatusSent, 1)
	req.Invoice.CGSTAmount = decimal.Zero
	req.Invoice.SGSTAmount = decimal.Zero
	req.Invoice.IGSTAmount = decimal.NewFromInt(180)
	rec := renderRecorded(t, req)

	assert.True(t, rec.hasContaining("IGST"))
	assert.True(t, rec.hasContaining("₹180.00"))
}

// ── amount in words ───────────────────────────────────────────────────────────

func TestAmountInWordsLine(t *testing.T) {
	rec := renderRecorded(t, testRequest(entity.InvoiceStatusSent, 1))
	assert.True(t, rec.hasContaining("Amount in words: One Thousand One Hundred Eighty Rupees Only"))
}

// ── notes, terms, signature ───────────────────────────────────────────────────

func TestNotesAndTermsSkippedWhenEmpty(t *testing.T) {
	rec := renderRecorded(t, testRequest(entity.InvoiceStatusSent, 1))
	assert.False(t, rec.hasContaining("Notes"))
	assert.False(t, rec.hasContaining("Terms & Conditions"))
}

func TestNotesAndTermsRenderedWhenPresent(t *testing.T) {
	req := testRequest(entity.InvoiceStatusSent, 1)
	req.Invoice.Notes = "Delivery within 7 working days."
	req.Invoice.Terms = "Goods once sold will not be taken back."
	rec := renderRecorded(t, req)

	assert.True(t, rec.hasContaining("Delivery within 7 working days."))
	assert.True(t, rec.hasContaining("Goods once sold will not be taken back."))
}

func TestSignatureNamesTheBusiness(t *testing.T) {
	rec := renderRecorded(t, testRequest(entity.InvoiceStatusSent, 1))
	assert.True(t, rec.hasContaining("For Shree Tiles & Ceramics"))
	assert.True(t, rec.hasContaining("Authorized Signature"))
}

// ── document artifact ─────────────────────────────────────────────────────────

func TestRenderProducesRealPDFBytes(t *testing.T) {
	r := NewRenderer(DefaultTheme(), money.NewINRFormatter())
	doc, err := r.Render(testRequest(entity.InvoiceStatusDraft, 25))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(doc.Bytes()), "%PDF"))
	assert.Equal(t, "invoice_INV-2026-0042.pdf", doc.Filename)
}

func TestDocumentDataURI(t *testing.T) {
	r := NewRenderer(DefaultTheme(), money.NewINRFormatter())
	doc, err := r.Render(testRequest(entity.InvoiceStatusSent, 1))
	require.NoError(t, err)

	uri := doc.DataURI()
	assert.True(t, strings.HasPrefix(uri, "data:application/pdf;base64,"))
	assert.Greater(t, len(uri), len("data:application/pdf;base64,"))
}

func TestDocumentWriteFile(t *testing.T) {
	r := NewRenderer(DefaultTheme(), money.NewINRFormatter())
	doc, err := r.Render(testRequest(entity.InvoiceStatusSent, 1))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, doc.WriteFile(path))

	err = doc.WriteFile(filepath.Join(t.TempDir(), "no-such-dir", "out.pdf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDocumentWrite))
}
