package billing

import (
	"context"

	"github.com/tilekart/tilekart-api/internal/domain/entity"
)

// InvoiceDocument is a rendered, write-once invoice artifact. It can be
// streamed as bytes, embedded as a base64 data URI, or saved to disk.
type InvoiceDocument interface {
	Bytes() []byte
	DataURI() string
	WriteFile(path string) error
}

// InvoicePDFGenerator renders the printable invoice. Implemented by the
// gofpdf-backed renderer in infrastructure/pdf and injected at startup.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		business *entity.BusinessProfile,
		customer *entity.Customer,
		items []entity.InvoiceItem,
	) (InvoiceDocument, error)
}

// InvoiceXMLExporter builds the UBL-style XML export of an invoice.
type InvoiceXMLExporter interface {
	ExportInvoiceXML(
		invoice *entity.Invoice,
		business *entity.BusinessProfile,
		customer *entity.Customer,
		items []entity.InvoiceItem,
	) ([]byte, error)
}
