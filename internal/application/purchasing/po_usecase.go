package purchasing

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

// POUseCase covers purchase orders: creation, lookup and the printable
// document handed to suppliers.
type POUseCase struct {
	poRepo       repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	profileRepo  repository.BusinessProfileRepository
	pdfGen       POPDFGenerator
}

// NewPOUseCase wires the usecase.
func NewPOUseCase(
	poRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	profileRepo repository.BusinessProfileRepository,
	pdfGen POPDFGenerator,
) *POUseCase {
	return &POUseCase{poRepo: poRepo, supplierRepo: supplierRepo, profileRepo: profileRepo, pdfGen: pdfGen}
}

// Create validates and persists a purchase order with its lines.
func (uc *POUseCase) Create(_ context.Context, companyID string, in dto.CreatePORequest) (*entity.PurchaseOrder, error) {
	if in.PONumber == "" {
		return nil, domain.MissingField("po_number")
	}
	if in.SupplierID == "" {
		return nil, domain.MissingField("supplier_id")
	}
	orderDate, err := dto.ParseDate("order_date", in.OrderDate)
	if err != nil {
		return nil, err
	}
	expectedDate, err := dto.ParseDate("expected_date", in.ExpectedDate)
	if err != nil {
		return nil, err
	}

	sup, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("load supplier: %w", err)
	}
	if sup == nil {
		return nil, domain.ErrNotFound
	}
	if sup.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	po := &entity.PurchaseOrder{
		ID:           uuid.NewString(),
		CompanyID:    companyID,
		SupplierID:   in.SupplierID,
		PONumber:     in.PONumber,
		OrderDate:    orderDate,
		ExpectedDate: expectedDate,
		Status:       entity.POStatusDraft,
		Subtotal:     in.Subtotal,
		TaxAmount:    in.TaxAmount,
		TotalAmount:  in.TotalAmount,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	items := make([]entity.PurchaseOrderItem, 0, len(in.Items))
	for i, it := range in.Items {
		if it.ProductName == "" {
			return nil, fmt.Errorf("%w: item %d has no product_name", domain.ErrInvalidInput, i+1)
		}
		items = append(items, entity.PurchaseOrderItem{
			ID:          uuid.NewString(),
			POID:        po.ID,
			ProductName: it.ProductName,
			SKU:         it.SKU,
			Quantity:    it.Quantity,
			UnitCost:    it.UnitCost,
			LineTotal:   it.LineTotal,
			Position:    i,
		})
	}

	if err := uc.poRepo.Create(po, items); err != nil {
		return nil, fmt.Errorf("create purchase order: %w", err)
	}
	return po, nil
}

// Get returns one purchase order with its lines, ownership enforced.
func (uc *POUseCase) Get(_ context.Context, companyID, id string) (*entity.PurchaseOrder, []entity.PurchaseOrderItem, error) {
	po, err := uc.poRepo.GetByID(id)
	if err != nil {
		return nil, nil, fmt.Errorf("load purchase order: %w", err)
	}
	if po == nil {
		return nil, nil, domain.ErrNotFound
	}
	if po.CompanyID != companyID {
		return nil, nil, domain.ErrForbidden
	}
	items, err := uc.poRepo.GetItemsByPOID(id)
	if err != nil {
		return nil, nil, fmt.Errorf("load purchase order items: %w", err)
	}
	return po, items, nil
}

// List pages through the company's purchase orders.
func (uc *POUseCase) List(_ context.Context, companyID string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	return uc.poRepo.ListByCompany(companyID, limit, offset)
}

// DownloadPOPDF renders the purchase order document for a supplier.
func (uc *POUseCase) DownloadPOPDF(ctx context.Context, companyID, id string) ([]byte, string, error) {
	po, items, err := uc.Get(ctx, companyID, id)
	if err != nil {
		return nil, "", err
	}
	sup, err := uc.supplierRepo.GetByID(po.SupplierID)
	if err != nil || sup == nil {
		return nil, "", fmt.Errorf("load supplier: %w", err)
	}
	profile, err := uc.profileRepo.GetByCompanyID(companyID)
	if err != nil {
		return nil, "", fmt.Errorf("load business profile: %w", err)
	}
	if profile == nil {
		return nil, "", fmt.Errorf("%w: business profile for company %s", domain.ErrNotFound, companyID)
	}

	raw, err := uc.pdfGen.GeneratePOPDF(ctx, po, profile, sup, items)
	if err != nil {
		return nil, "", fmt.Errorf("purchase order pdf: %w", err)
	}
	return raw, fmt.Sprintf("po_%s.pdf", po.PONumber), nil
}
