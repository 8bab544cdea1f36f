package billing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilekart/tilekart-api/internal/application/billing"
	"github.com/tilekart/tilekart-api/internal/domain"
	"github.com/tilekart/tilekart-api/internal/domain/entity"
)

// ── in-memory fakes ───────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	items    map[string][]entity.InvoiceItem
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice, items []entity.InvoiceItem) error {
	r.invoices[inv.ID] = inv
	r.items[inv.ID] = items
	return nil
}
func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) { return r.invoices[id], nil }
func (r *fakeInvoiceRepo) GetItemsByInvoiceID(id string) ([]entity.InvoiceItem, error) {
	return r.items[id], nil
}
func (r *fakeInvoiceRepo) ListByCompany(string, int, int) ([]*entity.Invoice, error) {
	return nil, nil
}
func (r *fakeInvoiceRepo) UpdateStatus(id, status string) error {
	if inv := r.invoices[id]; inv != nil {
		inv.Status = status
	}
	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error          { r.customers[c.ID] = c; return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) { return r.customers[id], nil }
func (r *fakeCustomerRepo) ListByCompany(string, int, int) ([]*entity.Customer, error) {
	return nil, nil
}
func (r *fakeCustomerRepo) Update(*entity.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(string) error           { return nil }

type fakeProfileRepo struct {
	profile *entity.BusinessProfile
}

func (r *fakeProfileRepo) GetByCompanyID(string) (*entity.BusinessProfile, error) {
	return r.profile, nil
}
func (r *fakeProfileRepo) Upsert(p *entity.BusinessProfile) error { r.profile = p; return nil }

type fakeDocument struct{ raw []byte }

func (d *fakeDocument) Bytes() []byte          { return d.raw }
func (d *fakeDocument) DataURI() string        { return "data:application/pdf;base64,ZmFrZQ==" }
func (d *fakeDocument) WriteFile(string) error { return nil }

type fakePDFGen struct{ calls int }

func (g *fakePDFGen) GenerateInvoicePDF(
	_ context.Context, _ *entity.Invoice, _ *entity.BusinessProfile,
	_ *entity.Customer, _ []entity.InvoiceItem,
) (billing.InvoiceDocument, error) {
	g.calls++
	return &fakeDocument{raw: []byte("%PDF-fake")}, nil
}

type fakeXMLExporter struct{}

func (fakeXMLExporter) ExportInvoiceXML(
	_ *entity.Invoice, _ *entity.BusinessProfile, _ *entity.Customer, _ []entity.InvoiceItem,
) ([]byte, error) {
	return []byte("<Invoice/>"), nil
}

// ── fixtures ──────────────────────────────────────────────────────────────────

func newFixture() (*billing.DocumentUseCase, *fakePDFGen) {
	invRepo := &fakeInvoiceRepo{
		invoices: map[string]*entity.Invoice{
			"inv-1": {ID: "inv-1", CompanyID: "co-1", CustomerID: "cust-1", InvoiceNumber: "INV-001", Status: entity.InvoiceStatusSent},
		},
		items: map[string][]entity.InvoiceItem{
			"inv-1": {{ID: "item-1", InvoiceID: "inv-1", ProductName: "Tile", Quantity: 1}},
		},
	}
	custRepo := &fakeCustomerRepo{
		customers: map[string]*entity.Customer{
			"cust-1": {ID: "cust-1", CompanyID: "co-1", Name: "Patil Constructions"},
		},
	}
	profRepo := &fakeProfileRepo{
		profile: &entity.BusinessProfile{ID: "bp-1", CompanyID: "co-1", LegalName: "Shree Tiles"},
	}
	pdfGen := &fakePDFGen{}
	uc := billing.NewDocumentUseCase(invRepo, custRepo, profRepo, pdfGen, fakeXMLExporter{})
	return uc, pdfGen
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestDownloadInvoicePDF(t *testing.T) {
	uc, pdfGen := newFixture()

	doc, filename, err := uc.DownloadInvoicePDF(context.Background(), "co-1", "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "invoice_INV-001.pdf", filename)
	assert.Equal(t, []byte("%PDF-fake"), doc.Bytes())
	assert.Equal(t, 1, pdfGen.calls)
}

func TestDownloadInvoicePDFUnknownInvoice(t *testing.T) {
	uc, pdfGen := newFixture()

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "co-1", "inv-missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Zero(t, pdfGen.calls, "no render happens for a missing invoice")
}

func TestDownloadInvoicePDFForeignCompany(t *testing.T) {
	uc, _ := newFixture()

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "co-other", "inv-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrForbidden))
}

func TestExportInvoiceXML(t *testing.T) {
	uc, _ := newFixture()

	raw, filename, err := uc.ExportInvoiceXML(context.Background(), "co-1", "inv-1")
	require.NoError(t, err)
	assert.Equal(t, "invoice_INV-001.xml", filename)
	assert.Equal(t, []byte("<Invoice/>"), raw)
}
