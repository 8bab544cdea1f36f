package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tilekart/tilekart-api/internal/application/dto"
	"github.com/tilekart/tilekart-api/internal/domain"
	"github.com/tilekart/tilekart-api/internal/domain/entity"
	"github.com/tilekart/tilekart-api/internal/domain/repository"
)

var validStatuses = map[string]bool{
	entity.InvoiceStatusDraft:     true,
	entity.InvoiceStatusSent:      true,
	entity.InvoiceStatusPaid:      true,
	entity.InvoiceStatusOverdue:   true,
	entity.InvoiceStatusCancelled: true,
}

// InvoiceUseCase covers the invoice CRUD surface. Totals arrive
// pre-computed from the caller and are stored as given — the same trust
// boundary the renderer honors.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewInvoiceUseCase wires the usecase.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

// CreateInvoice validates the request, checks customer ownership and
// persists header plus items in one transaction.
func (uc *InvoiceUseCase) CreateInvoice(_ context.Context, companyID string, in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	if in.InvoiceNumber == "" {
		return nil, domain.MissingField("invoice_number")
	}
	if in.CustomerID == "" {
		return nil, domain.MissingField("customer_id")
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusDraft
	}
	if !validStatuses[status] {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}

	invoiceDate, err := dto.ParseDate("invoice_date", in.InvoiceDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := dto.ParseDate("due_date", in.DueDate)
	if err != nil {
		return nil, err
	}

	cust, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("load customer: %w", err)
	}
	if cust == nil {
		return nil, domain.ErrNotFound
	}
	if cust.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:             uuid.NewString(),
		CompanyID:      companyID,
		CustomerID:     in.CustomerID,
		InvoiceNumber:  in.InvoiceNumber,
		InvoiceDate:    invoiceDate,
		DueDate:        dueDate,
		PaymentTerms:   in.PaymentTerms,
		Status:         status,
		Subtotal:       in.Subtotal,
		DiscountAmount: in.DiscountAmount,
		CGSTAmount:     in.CGSTAmount,
		SGSTAmount:     in.SGSTAmount,
		IGSTAmount:     in.IGSTAmount,
		TotalAmount:    in.TotalAmount,
		Notes:          in.Notes,
		Terms:          in.Terms,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	items := make([]entity.InvoiceItem, 0, len(in.Items))
	for i, it := range in.Items {
		if it.ProductName == "" {
			return nil, fmt.Errorf("%w: item %d has no product_name", domain.ErrInvalidInput, i+1)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d quantity must be positive", domain.ErrInvalidInput, i+1)
		}
		items = append(items, entity.InvoiceItem{
			ID:              uuid.NewString(),
			InvoiceID:       inv.ID,
			ProductName:     it.ProductName,
			SKU:             it.SKU,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			TaxRate:         it.TaxRate,
			TaxAmount:       it.TaxAmount,
			DiscountAmount:  it.DiscountAmount,
			LineTotal:       it.LineTotal,
			Position:        i,
		})
	}

	if err := uc.invoiceRepo.Create(inv, items); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return inv, nil
}

// GetInvoice returns one invoice with ownership enforced.
func (uc *InvoiceUseCase) GetInvoice(_ context.Context, companyID, id string) (*entity.Invoice, []entity.InvoiceItem, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, nil, fmt.Errorf("load invoice: %w", err)
	}
	if inv == nil {
		return nil, nil, domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return nil, nil, domain.ErrForbidden
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, nil, fmt.Errorf("load invoice items: %w", err)
	}
	return inv, items, nil
}

// ListInvoices pages through the company's invoices.
func (uc *InvoiceUseCase) ListInvoices(_ context.Context, companyID string, limit, offset int) ([]*entity.Invoice, error) {
	return uc.invoiceRepo.ListByCompany(companyID, limit, offset)
}

// UpdateStatus moves an invoice through its lifecycle.
func (uc *InvoiceUseCase) UpdateStatus(_ context.Context, companyID, id, status string) error {
	if !validStatuses[status] {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("load invoice: %w", err)
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if inv.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return uc.invoiceRepo.UpdateStatus(id, status)
}
