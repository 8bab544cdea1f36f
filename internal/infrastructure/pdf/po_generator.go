package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tilekart/tilekart-api/internal/application/purchasing"
	"github.com/tilekart/tilekart-api/internal/domain/entity"
	"github.com/tilekart/tilekart-api/internal/domain/money"
)

// ── palette ───────────────────────────────────────────────────────────────────

var (
	poColorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	poColorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── generator ─────────────────────────────────────────────────────────────────

// POGenerator implements purchasing.POPDFGenerator using Maroto v2. Purchase
// orders are a simpler document than the tax invoice, so the row-based layout
// fits without a cursor.
type POGenerator struct {
	money money.Formatter
}

// amount formats a value for the core fonts, which have no rupee glyph.
func (g *POGenerator) amount(d decimal.Decimal) string {
	return strings.ReplaceAll(g.money.Format(d), "₹", "Rs. ")
}

var _ purchasing.POPDFGenerator = (*POGenerator)(nil)

// NewPOGenerator builds the generator.
func NewPOGenerator(formatter money.Formatter) *POGenerator {
	return &POGenerator{money: formatter}
}

// GeneratePOPDF renders the purchase order and returns its bytes.
func (g *POGenerator) GeneratePOPDF(
	_ context.Context,
	po *entity.PurchaseOrder,
	business *entity.BusinessProfile,
	supplier *entity.Supplier,
	items []entity.PurchaseOrderItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Purchase Order "+po.PONumber, true).
		WithAuthor(business.LegalName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(po, business))
	m.AddRows(line.NewRow(1, props.Line{Color: poColorPrimary, Thickness: 0.5}))
	m.AddRows(g.supplierRow(supplier))
	m.AddRows(line.NewRow(1, props.Line{Color: poColorPrimary, Thickness: 0.3}))

	m.AddRows(g.tableHeaderRow())
	for _, r := range g.itemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: poColorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(po))

	if po.Notes != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Notes: "+po.Notes, props.Text{Size: 8, Color: poColorGray, Top: 2}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate purchase order: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── sections ──────────────────────────────────────────────────────────────────

// headerRow: business identity left, PO number and dates right.
func (g *POGenerator) headerRow(po *entity.PurchaseOrder, business *entity.BusinessProfile) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(business.LegalName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: poColorPrimary, Top: 1,
			}),
			text.New(business.Address, props.Text{Size: 8, Top: 9, Color: poColorGray}),
			text.New("GSTIN: "+business.GSTIN, props.Text{Size: 8, Top: 14, Color: poColorGray}),
		),
		col.New(5).Add(
			text.New("PURCHASE ORDER", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: poColorPrimary, Top: 1,
			}),
			text.New(po.PONumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Ordered: "+formatDate(po.OrderDate), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: poColorGray,
			}),
			text.New("Expected: "+formatDate(po.ExpectedDate), props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: poColorGray,
			}),
		),
	)
}

// supplierRow: who the order is sent to.
func (g *POGenerator) supplierRow(supplier *entity.Supplier) core.Row {
	contact := joinNonEmpty("   |   ",
		supplier.ContactPerson, supplier.Phone, supplier.Email)
	return row.New(16).Add(
		col.New(12).Add(
			text.New("SUPPLIER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: poColorPrimary, Top: 1,
			}),
			text.New(supplier.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(contact, props.Text{Size: 8, Top: 12, Color: poColorGray}),
		),
	)
}

func (g *POGenerator) tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: poColorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Item", 5, align.Left),
		h("SKU", 2, align.Left),
		h("Qty", 1, align.Center),
		h("Unit Cost", 2, align.Right),
		h("Amount", 2, align.Right),
	)
}

func (g *POGenerator) itemRows(items []entity.PurchaseOrderItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		sku := it.SKU
		if sku == "" {
			sku = "-"
		}
		result = append(result, row.New(7).Add(
			col.New(5).Add(text.New(it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(sku,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(g.amount(it.UnitCost),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(g.amount(it.LineTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func (g *POGenerator) totalsRow(po *entity.PurchaseOrder) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grand := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: poColorPrimary, Right: 1,
		})
	}

	return row.New(22).Add(
		col.New(6),
		col.New(3).Add(
			label("Subtotal:"),
			label("Tax:"),
			grand("TOTAL:"),
		),
		col.New(3).Add(
			value(g.amount(po.Subtotal)),
			value(g.amount(po.TaxAmount)),
			grand(g.amount(po.TotalAmount)),
		),
	)
}
