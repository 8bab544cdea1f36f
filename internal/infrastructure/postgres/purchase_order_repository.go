package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tilekart/tilekart-api/internal/domain"
	"github.com/tilekart/tilekart-api/internal/domain/entity"
	"github.com/tilekart/tilekart-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo persists purchase orders and lines. Like InvoiceRepo it
// holds the pool so Create can write header and items atomically.
type PurchaseOrderRepo struct {
	pool *pgxpool.Pool
}

// NewPurchaseOrderRepository builds the adapter.
func NewPurchaseOrderRepository(pool *pgxpool.Pool) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{pool: pool}
}

// Create persists the header and all items in one transaction.
func (r *PurchaseOrderRepo) Create(po *entity.PurchaseOrder, items []entity.PurchaseOrderItem) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	headerQuery := `
		INSERT INTO purchase_orders (id, company_id, supplier_id, po_number, order_date,
		                             expected_date, status, subtotal, tax_amount, total_amount,
		                             notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = tx.Exec(ctx, headerQuery,
		po.ID, po.CompanyID, po.SupplierID, po.PONumber,
		nullIfZeroTime(po.OrderDate), nullIfZeroTime(po.ExpectedDate),
		po.Status, po.Subtotal, po.TaxAmount, po.TotalAmount,
		po.Notes, po.CreatedAt, po.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}

	itemQuery := `
		INSERT INTO purchase_order_items (id, po_id, product_name, sku, quantity,
		                                  unit_cost, line_total, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, it := range items {
		_, err = tx.Exec(ctx, itemQuery,
			it.ID, it.POID, it.ProductName, it.SKU, it.Quantity,
			it.UnitCost, it.LineTotal, it.Position,
		)
		if err != nil {
			return fmt.Errorf("insert purchase order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

const poColumns = `id, company_id, supplier_id, po_number,
	COALESCE(order_date, 'epoch'::timestamptz), COALESCE(expected_date, 'epoch'::timestamptz),
	status, subtotal, tax_amount, total_amount, notes, created_at, updated_at`

func scanPO(row pgx.Row) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := row.Scan(
		&po.ID, &po.CompanyID, &po.SupplierID, &po.PONumber,
		&po.OrderDate, &po.ExpectedDate, &po.Status,
		&po.Subtotal, &po.TaxAmount, &po.TotalAmount,
		&po.Notes, &po.CreatedAt, &po.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	normalizeEpoch(&po.OrderDate)
	normalizeEpoch(&po.ExpectedDate)
	return &po, nil
}

// GetByID returns a purchase order header, or (nil, nil) when absent.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders WHERE id = $1`
	po, err := scanPO(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return po, nil
}

// GetItemsByPOID returns the order lines in display order.
func (r *PurchaseOrderRepo) GetItemsByPOID(poID string) ([]entity.PurchaseOrderItem, error) {
	query := `
		SELECT id, po_id, product_name, sku, quantity, unit_cost, line_total, position
		FROM purchase_order_items WHERE po_id = $1 ORDER BY position`
	rows, err := r.pool.Query(context.Background(), query, poID)
	if err != nil {
		return nil, fmt.Errorf("list purchase order items: %w", err)
	}
	defer rows.Close()
	var list []entity.PurchaseOrderItem
	for rows.Next() {
		var it entity.PurchaseOrderItem
		if err := rows.Scan(
			&it.ID, &it.POID, &it.ProductName, &it.SKU, &it.Quantity,
			&it.UnitCost, &it.LineTotal, &it.Position,
		); err != nil {
			return nil, fmt.Errorf("scan purchase order item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// ListByCompany pages through purchase orders, newest first.
func (r *PurchaseOrderRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + `
		FROM purchase_orders WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.PurchaseOrder
	for rows.Next() {
		po, err := scanPO(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, po)
	}
	return list, rows.Err()
}

// UpdateStatus moves the order through its lifecycle.
func (r *PurchaseOrderRepo) UpdateStatus(id, status string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE purchase_orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update purchase order status: %w", err)
	}
	return nil
}
