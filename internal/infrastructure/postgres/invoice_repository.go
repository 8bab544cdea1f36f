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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo persists invoice headers and lines. It holds the pool rather
// than a Querier because Create writes header and items atomically.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository builds the adapter.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// Create persists the header and all items in one transaction.
func (r *InvoiceRepo) Create(invoice *entity.Invoice, items []entity.InvoiceItem) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	headerQuery := `
		INSERT INTO invoices (id, company_id, customer_id, invoice_number, invoice_date, due_date,
		                      payment_terms, status, subtotal, discount_amount, cgst_amount,
		                      sgst_amount, igst_amount, total_amount, notes, terms, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = tx.Exec(ctx, headerQuery,
		invoice.ID, invoice.CompanyID, invoice.CustomerID, invoice.InvoiceNumber,
		nullIfZeroTime(invoice.InvoiceDate), nullIfZeroTime(invoice.DueDate),
		invoice.PaymentTerms, invoice.Status, invoice.Subtotal, invoice.DiscountAmount,
		invoice.CGSTAmount, invoice.SGSTAmount, invoice.IGSTAmount, invoice.TotalAmount,
		invoice.Notes, invoice.Terms, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}

	itemQuery := `
		INSERT INTO invoice_items (id, invoice_id, product_id, product_name, sku, quantity,
		                           unit_price, discount_percent, tax_rate, tax_amount,
		                           discount_amount, line_total, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	for _, it := range items {
		_, err = tx.Exec(ctx, itemQuery,
			it.ID, it.InvoiceID, nullIfEmpty(it.ProductID), it.ProductName, it.SKU,
			it.Quantity, it.UnitPrice, it.DiscountPercent, it.TaxRate,
			it.TaxAmount, it.DiscountAmount, it.LineTotal, it.Position,
		)
		if err != nil {
			return fmt.Errorf("insert invoice item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID returns the invoice header, or (nil, nil) when absent.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, company_id, customer_id, invoice_number,
		       COALESCE(invoice_date, 'epoch'::timestamptz), COALESCE(due_date, 'epoch'::timestamptz),
		       payment_terms, status, subtotal, discount_amount, cgst_amount,
		       sgst_amount, igst_amount, total_amount, notes, terms, created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&inv.ID, &inv.CompanyID, &inv.CustomerID, &inv.InvoiceNumber,
		&inv.InvoiceDate, &inv.DueDate, &inv.PaymentTerms, &inv.Status,
		&inv.Subtotal, &inv.DiscountAmount, &inv.CGSTAmount,
		&inv.SGSTAmount, &inv.IGSTAmount, &inv.TotalAmount,
		&inv.Notes, &inv.Terms, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	normalizeEpoch(&inv.InvoiceDate)
	normalizeEpoch(&inv.DueDate)
	return &inv, nil
}

// GetItemsByInvoiceID returns the invoice lines in display order.
func (r *InvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, COALESCE(product_id, ''), product_name, sku, quantity,
		       unit_price, discount_percent, tax_rate, tax_amount, discount_amount,
		       line_total, position
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position`
	rows, err := r.pool.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []entity.InvoiceItem
	for rows.Next() {
		var it entity.InvoiceItem
		if err := rows.Scan(
			&it.ID, &it.InvoiceID, &it.ProductID, &it.ProductName, &it.SKU, &it.Quantity,
			&it.UnitPrice, &it.DiscountPercent, &it.TaxRate, &it.TaxAmount,
			&it.DiscountAmount, &it.LineTotal, &it.Position,
		); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// ListByCompany pages through invoice headers, newest first.
func (r *InvoiceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT id, company_id, customer_id, invoice_number,
		       COALESCE(invoice_date, 'epoch'::timestamptz), COALESCE(due_date, 'epoch'::timestamptz),
		       payment_terms, status, subtotal, discount_amount, cgst_amount,
		       sgst_amount, igst_amount, total_amount, notes, terms, created_at, updated_at
		FROM invoices WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.CompanyID, &inv.CustomerID, &inv.InvoiceNumber,
			&inv.InvoiceDate, &inv.DueDate, &inv.PaymentTerms, &inv.Status,
			&inv.Subtotal, &inv.DiscountAmount, &inv.CGSTAmount,
			&inv.SGSTAmount, &inv.IGSTAmount, &inv.TotalAmount,
			&inv.Notes, &inv.Terms, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		normalizeEpoch(&inv.InvoiceDate)
		normalizeEpoch(&inv.DueDate)
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// UpdateStatus moves the invoice through its lifecycle.
func (r *InvoiceRepo) UpdateStatus(id, status string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE invoices SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return nil
}
