package purchasing

import (
	"context"

	"github.com/tilekart/tilekart-api/internal/domain/entity"
)

// POPDFGenerator renders the printable purchase order. Implemented by the
// maroto-backed generator in infrastructure/pdf.
type POPDFGenerator interface {
	GeneratePOPDF(
		ctx context.Context,
		po *entity.PurchaseOrder,
		business *entity.BusinessProfile,
		supplier *entity.Supplier,
		items []entity.PurchaseOrderItem,
	) ([]byte, error)
}
