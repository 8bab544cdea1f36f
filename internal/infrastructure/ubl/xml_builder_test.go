package ubl_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tilekart/tilekart-api/internal/domain/entity"
	"github.com/tilekart/tilekart-api/internal/infrastructure/ubl"
)

func exportFixture(t *testing.T, invoice *entity.Invoice) *etree.Document {
	t.Helper()
	business := &entity.BusinessProfile{
		LegalName: "Shree Tiles & Ceramics",
		Address:   "12 MG Road, Pune",
		GSTIN:     "27AABCS1234A1Z5",
		Email:     "sales@shreetiles.example",
	}
	customer := &entity.Customer{
		Name:  "Patil Constructions",
		City:  "Pune",
		GSTIN: "27AABCP9876B1Z2",
	}
	items := []entity.InvoiceItem{
		{ProductName: "Vitrified Tile 600x600", SKU: "VT-600-001", Quantity: 10,
			UnitPrice: decimal.NewFromInt(100), LineTotal: decimal.NewFromInt(1000)},
	}

	raw, err := ubl.NewXMLBuilder().ExportInvoiceXML(invoice, business, customer, items)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(raw))
	return doc
}

func sentInvoice() *entity.Invoice {
	return &entity.Invoice{
		InvoiceNumber: "INV-2026-0042",
		InvoiceDate:   time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		Status:        entity.InvoiceStatusSent,
		Subtotal:      decimal.NewFromInt(1000),
		CGSTAmount:    decimal.NewFromInt(90),
		SGSTAmount:    decimal.NewFromInt(90),
		IGSTAmount:    decimal.Zero,
		TotalAmount:   decimal.NewFromInt(1180),
	}
}

func TestExportCarriesInvoiceHeader(t *testing.T) {
	doc := exportFixture(t, sentInvoice())

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Invoice", root.Tag)
	assert.Equal(t, "INV-2026-0042", root.FindElement("cbc:ID").Text())
	assert.Equal(t, "2026-08-15", root.FindElement("cbc:IssueDate").Text())
	assert.Equal(t, "2026-09-14", root.FindElement("cbc:DueDate").Text())
	assert.Equal(t, "INR", root.FindElement("cbc:DocumentCurrencyCode").Text())
	assert.Equal(t, "1", root.FindElement("cbc:LineCountNumeric").Text())
}

func TestExportCarriesParties(t *testing.T) {
	doc := exportFixture(t, sentInvoice())

	supplier := doc.FindElement("//cac:AccountingSupplierParty/cac:Party")
	require.NotNil(t, supplier)
	assert.Equal(t, "Shree Tiles & Ceramics", supplier.FindElement("cac:PartyName/cbc:Name").Text())
	assert.Equal(t, "27AABCS1234A1Z5", supplier.FindElement("cac:PartyTaxScheme/cbc:CompanyID").Text())

	customer := doc.FindElement("//cac:AccountingCustomerParty/cac:Party")
	require.NotNil(t, customer)
	assert.Equal(t, "Patil Constructions", customer.FindElement("cac:PartyName/cbc:Name").Text())
}

func TestExportTaxSubtotals(t *testing.T) {
	doc := exportFixture(t, sentInvoice())

	taxTotal := doc.FindElement("//cac:TaxTotal")
	require.NotNil(t, taxTotal)
	assert.Equal(t, "180.00", taxTotal.FindElement("cbc:TaxAmount").Text())

	var schemes []string
	for _, sub := range taxTotal.FindElements("cac:TaxSubtotal") {
		schemes = append(schemes, sub.FindElement("cac:TaxCategory/cac:TaxScheme/cbc:Name").Text())
	}
	assert.Equal(t, []string{"CGST", "SGST"}, schemes, "zero IGST stays out of the export")
}

func TestExportIncludesIGSTWhenPositive(t *testing.T) {
	inv := sentInvoice()
	inv.CGSTAmount = decimal.Zero
	inv.SGSTAmount = decimal.Zero
	inv.IGSTAmount = decimal.NewFromInt(180)
	doc := exportFixture(t, inv)

	var igst *etree.Element
	for _, sub := range doc.FindElements("//cac:TaxSubtotal") {
		if sub.FindElement("cac:TaxCategory/cac:TaxScheme/cbc:Name").Text() == "IGST" {
			igst = sub
		}
	}
	require.NotNil(t, igst)
	assert.Equal(t, "180.00", igst.FindElement("cbc:TaxAmount").Text())
}

func TestExportInvoiceLines(t *testing.T) {
	doc := exportFixture(t, sentInvoice())

	line := doc.FindElement("//cac:InvoiceLine")
	require.NotNil(t, line)
	assert.Equal(t, "1", line.FindElement("cbc:ID").Text())
	assert.Equal(t, "10", line.FindElement("cbc:InvoicedQuantity").Text())
	assert.Equal(t, "1000.00", line.FindElement("cbc:LineExtensionAmount").Text())
	assert.Equal(t, "Vitrified Tile 600x600", line.FindElement("cac:Item/cbc:Name").Text())
	assert.Equal(t, "VT-600-001", line.FindElement("cac:Item/cac:SellersItemIdentification/cbc:ID").Text())
	assert.Equal(t, "100.00", line.FindElement("cac:Price/cbc:PriceAmount").Text())

	amount := line.FindElement("cbc:LineExtensionAmount")
	assert.Equal(t, "INR", amount.SelectAttrValue("currencyID", ""))
}

func TestExportRejectsNilInputs(t *testing.T) {
	_, err := ubl.NewXMLBuilder().ExportInvoiceXML(nil, nil, nil, nil)
	require.Error(t, err)
}
