// Package pdf renders the printable tax invoice.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER BAND: legal name + address  │  phone/email/GSTIN    │
//	│  TAX INVOICE                        │  [STATUS BADGE]       │
//	│  Invoice no/dates/terms             │  BILL TO: customer    │
//	│  TABLE: Item | SKU | Qty | Unit Price | Disc % | Amount     │
//	│                                   ┌───────────────────────┐ │
//	│                                   │ Subtotal/Discount/GST │ │
//	│                                   │ TOTAL                 │ │
//	│                                   └───────────────────────┘ │
//	│  Amount in words ... Rupees Only                            │
//	│  Notes / Terms / Signature / footer rule                    │
//	│  (DRAFT watermark + "Page i of N" stamped per page)         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/tilekart/tilekart-api/internal/application/billing"
	"github.com/tilekart/tilekart-api/internal/domain"
	"github.com/tilekart/tilekart-api/internal/domain/entity"
	"github.com/tilekart/tilekart-api/internal/domain/money"
)

// RenderRequest carries everything one invoice document needs. It is
// immutable for the duration of the render.
type RenderRequest struct {
	Invoice  *entity.Invoice
	Customer *entity.Customer
	Business *entity.BusinessProfile
	Items    []entity.InvoiceItem
}

// Renderer sequences the section renderers into a finished document. The
// theme and money formatter are fixed at construction; every Render call
// builds its own canvas and cursor, so concurrent renders do not interfere.
type Renderer struct {
	theme     Theme
	money     money.Formatter
	newCanvas func(Theme) Canvas
}

var _ billing.InvoicePDFGenerator = (*Renderer)(nil)

// NewRenderer builds a renderer backed by gofpdf.
func NewRenderer(theme Theme, formatter money.Formatter) *Renderer {
	return &Renderer{theme: theme, money: formatter, newCanvas: newFpdfCanvas}
}

// Render validates the request and runs the section pipeline. Rendering is
// fail-fast: the first invalid precondition aborts before anything is drawn.
func (r *Renderer) Render(req RenderRequest) (*Document, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	c := r.newCanvas(r.theme)
	c.SetMeta("Tax Invoice "+req.Invoice.InvoiceNumber, req.Business.LegalName)

	s := &renderState{
		c:     c,
		cu:    newCursor(c, r.theme),
		theme: r.theme,
		money: r.money,
		req:   req,
	}
	s.drawHeader()
	s.drawTitleAndBadge()
	s.drawMetadata()
	s.drawItemsTable()
	s.drawSummaryBox()
	s.drawAmountInWords()
	s.drawNotesAndTerms()
	s.drawSignature()
	s.drawFooter()
	s.stampOverlay()

	raw, err := c.Output()
	if err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", req.Invoice.InvoiceNumber, err)
	}
	return &Document{
		bytes:    raw,
		Filename: fmt.Sprintf("invoice_%s.pdf", req.Invoice.InvoiceNumber),
	}, nil
}

// GenerateInvoicePDF adapts Render to the billing port.
func (r *Renderer) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	business *entity.BusinessProfile,
	customer *entity.Customer,
	items []entity.InvoiceItem,
) (billing.InvoiceDocument, error) {
	return r.Render(RenderRequest{
		Invoice:  invoice,
		Customer: customer,
		Business: business,
		Items:    items,
	})
}

func validateRequest(req RenderRequest) error {
	switch {
	case req.Invoice == nil:
		return domain.MissingField("invoice")
	case req.Customer == nil:
		return domain.MissingField("customer")
	case req.Business == nil:
		return domain.MissingField("business_profile")
	case req.Invoice.InvoiceNumber == "":
		return domain.MissingField("invoice_number")
	case req.Customer.Name == "":
		return domain.MissingField("customer_name")
	case req.Business.LegalName == "":
		return domain.MissingField("business_legal_name")
	}
	return nil
}

// ── Document ──────────────────────────────────────────────────────────────────

// Document is the finished, write-once artifact.
type Document struct {
	bytes    []byte
	Filename string
}

// Bytes returns the raw PDF bytes.
func (d *Document) Bytes() []byte { return d.bytes }

// DataURI returns a base64 data URI suitable for HTTP responses and
// <a download> links; no filesystem involved.
func (d *Document) DataURI() string {
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(d.bytes)
}

// WriteFile persists the document. Failures come back as ErrDocumentWrite
// so callers can tell an I/O problem from bad input.
func (d *Document) WriteFile(path string) error {
	if err := os.WriteFile(path, d.bytes, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrDocumentWrite, path, err)
	}
	return nil
}
