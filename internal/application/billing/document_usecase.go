package billing

import (
	"context"
	"fmt"

	"github.com/tilekart/tilekart-api/internal/domain"
	"github.com/tilekart/tilekart-api/internal/domain/entity"
	"github.com/tilekart/tilekart-api/internal/domain/repository"
)

// DocumentUseCase produces the downloadable representations of an invoice:
// the printable PDF and the UBL XML export.
type DocumentUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	profileRepo  repository.BusinessProfileRepository
	pdfGen       InvoicePDFGenerator
	xmlExporter  InvoiceXMLExporter
}

// NewDocumentUseCase wires the usecase with its dependencies.
func NewDocumentUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	profileRepo repository.BusinessProfileRepository,
	pdfGen InvoicePDFGenerator,
	xmlExporter InvoiceXMLExporter,
) *DocumentUseCase {
	return &DocumentUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		profileRepo:  profileRepo,
		pdfGen:       pdfGen,
		xmlExporter:  xmlExporter,
	}
}

// DownloadInvoicePDF loads the full invoice bundle and renders the PDF.
//
// Returns:
//   - (document, filename, nil) on success
//   - domain.ErrNotFound when the invoice does not exist
//   - domain.ErrForbidden when it belongs to another company
func (uc *DocumentUseCase) DownloadInvoicePDF(
	ctx context.Context,
	companyID, invoiceID string,
) (InvoiceDocument, string, error) {
	inv, cust, profile, items, err := uc.loadBundle(companyID, invoiceID)
	if err != nil {
		return nil, "", err
	}

	doc, err := uc.pdfGen.GenerateInvoicePDF(ctx, inv, profile, cust, items)
	if err != nil {
		return nil, "", fmt.Errorf("invoice pdf: %w", err)
	}
	return doc, fmt.Sprintf("invoice_%s.pdf", inv.InvoiceNumber), nil
}

// ExportInvoiceXML loads the bundle and builds the UBL export document.
func (uc *DocumentUseCase) ExportInvoiceXML(
	_ context.Context,
	companyID, invoiceID string,
) ([]byte, string, error) {
	inv, cust, profile, items, err := uc.loadBundle(companyID, invoiceID)
	if err != nil {
		return nil, "", err
	}

	raw, err := uc.xmlExporter.ExportInvoiceXML(inv, profile, cust, items)
	if err != nil {
		return nil, "", fmt.Errorf("invoice xml: %w", err)
	}
	return raw, fmt.Sprintf("invoice_%s.xml", inv.InvoiceNumber), nil
}

// loadBundle fetches invoice, customer, business profile and items, and
// enforces company ownership.
func (uc *DocumentUseCase) loadBundle(companyID, invoiceID string) (
	*entity.Invoice, *entity.Customer, *entity.BusinessProfile, []entity.InvoiceItem, error,
) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load invoice: %w", err)
	}
	if inv == nil {
		return nil, nil, nil, nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, nil, nil, nil, domain.ErrForbidden
	}

	cust, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load customer: %w", err)
	}
	if cust == nil {
		return nil, nil, nil, nil, fmt.Errorf("%w: customer %s", domain.ErrNotFound, inv.CustomerID)
	}

	profile, err := uc.profileRepo.GetByCompanyID(companyID)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load business profile: %w", err)
	}
	if profile == nil {
		return nil, nil, nil, nil, fmt.Errorf("%w: business profile for company %s", domain.ErrNotFound, companyID)
	}

	items, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("load invoice items: %w", err)
	}
	return inv, cust, profile, items, nil
}
