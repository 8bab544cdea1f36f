// Package ubl builds the UBL 2.1 XML export of an invoice. The export is a
// plain, unsigned document meant for accountants and GST filing tools.
package ubl

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/tilekart/tilekart-api/internal/application/billing"
	"github.com/tilekart/tilekart-api/internal/domain"
	"github.com/tilekart/tilekart-api/internal/domain/entity"
)

// UBL 2.1 namespaces.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"

	currencyCode = "INR"
)

// XMLBuilder implements billing.InvoiceXMLExporter with etree.
type XMLBuilder struct{}

var _ billing.InvoiceXMLExporter = (*XMLBuilder)(nil)

// NewXMLBuilder creates the builder.
func NewXMLBuilder() *XMLBuilder { return &XMLBuilder{} }

// ExportInvoiceXML produces the indented UBL document.
func (b *XMLBuilder) ExportInvoiceXML(
	invoice *entity.Invoice,
	business *entity.BusinessProfile,
	customer *entity.Customer,
	items []entity.InvoiceItem,
) ([]byte, error) {
	if invoice == nil || business == nil || customer == nil {
		return nil, domain.MissingField("invoice, business or customer")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	cbc(root, "UBLVersionID", "2.1")
	cbc(root, "ID", invoice.InvoiceNumber)
	cbc(root, "IssueDate", invoice.InvoiceDate.Format("2006-01-02"))
	if !invoice.DueDate.IsZero() {
		cbc(root, "DueDate", invoice.DueDate.Format("2006-01-02"))
	}
	cbc(root, "InvoiceTypeCode", "380")
	if invoice.Notes != "" {
		cbc(root, "Note", invoice.Notes)
	}
	cbc(root, "DocumentCurrencyCode", currencyCode)
	cbc(root, "LineCountNumeric", strconv.Itoa(len(items)))

	b.writeSupplierParty(root, business)
	b.writeCustomerParty(root, customer)
	b.writeTaxTotal(root, invoice)
	b.writeMonetaryTotal(root, invoice)
	for i, item := range items {
		b.writeInvoiceLine(root, i+1, item)
	}

	doc.Indent(2)
	raw, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("ubl: serialize invoice %s: %w", invoice.InvoiceNumber, err)
	}
	return raw, nil
}

// ── parties ───────────────────────────────────────────────────────────────────

func (b *XMLBuilder) writeSupplierParty(root *etree.Element, business *entity.BusinessProfile) {
	party := root.CreateElement("cac:AccountingSupplierParty").CreateElement("cac:Party")
	cbc(party.CreateElement("cac:PartyName"), "Name", business.LegalName)
	if business.GSTIN != "" {
		scheme := party.CreateElement("cac:PartyTaxScheme")
		cbc(scheme, "CompanyID", business.GSTIN)
		cbc(scheme.CreateElement("cac:TaxScheme"), "Name", "GST")
	}
	if business.Address != "" {
		addr := party.CreateElement("cac:PostalAddress")
		cbc(addr.CreateElement("cac:AddressLine"), "Line", business.Address)
	}
	if business.Phone != "" || business.Email != "" {
		contact := party.CreateElement("cac:Contact")
		if business.Phone != "" {
			cbc(contact, "Telephone", business.Phone)
		}
		if business.Email != "" {
			cbc(contact, "ElectronicMail", business.Email)
		}
	}
}

func (b *XMLBuilder) writeCustomerParty(root *etree.Element, customer *entity.Customer) {
	party := root.CreateElement("cac:AccountingCustomerParty").CreateElement("cac:Party")
	cbc(party.CreateElement("cac:PartyName"), "Name", customer.Name)
	if customer.GSTIN != "" {
		scheme := party.CreateElement("cac:PartyTaxScheme")
		cbc(scheme, "CompanyID", customer.GSTIN)
		cbc(scheme.CreateElement("cac:TaxScheme"), "Name", "GST")
	}
	if customer.Address != "" || customer.City != "" {
		addr := party.CreateElement("cac:PostalAddress")
		if customer.Address != "" {
			cbc(addr.CreateElement("cac:AddressLine"), "Line", customer.Address)
		}
		if customer.City != "" {
			cbc(addr, "CityName", customer.City)
		}
		if customer.State != "" {
			cbc(addr, "CountrySubentity", customer.State)
		}
		if customer.PostalCode != "" {
			cbc(addr, "PostalZone", customer.PostalCode)
		}
	}
}

// ── totals and lines ──────────────────────────────────────────────────────────

// writeTaxTotal emits one subtotal per tax family. Zero IGST is omitted the
// same way the printed invoice omits it.
func (b *XMLBuilder) writeTaxTotal(root *etree.Element, invoice *entity.Invoice) {
	taxTotal := root.CreateElement("cac:TaxTotal")
	total := invoice.CGSTAmount.Add(invoice.SGSTAmount).Add(invoice.IGSTAmount)
	amount(taxTotal, "TaxAmount", total)

	sub := func(name string, d decimal.Decimal) {
		s := taxTotal.CreateElement("cac:TaxSubtotal")
		amount(s, "TaxAmount", d)
		cbc(s.CreateElement("cac:TaxCategory").CreateElement("cac:TaxScheme"), "Name", name)
	}
	sub("CGST", invoice.CGSTAmount)
	sub("SGST", invoice.SGSTAmount)
	if invoice.IGSTAmount.IsPositive() {
		sub("IGST", invoice.IGSTAmount)
	}
}

func (b *XMLBuilder) writeMonetaryTotal(root *etree.Element, invoice *entity.Invoice) {
	total := root.CreateElement("cac:LegalMonetaryTotal")
	amount(total, "LineExtensionAmount", invoice.Subtotal)
	amount(total, "AllowanceTotalAmount", invoice.DiscountAmount)
	amount(total, "PayableAmount", invoice.TotalAmount)
}

func (b *XMLBuilder) writeInvoiceLine(root *etree.Element, n int, item entity.InvoiceItem) {
	line := root.CreateElement("cac:InvoiceLine")
	cbc(line, "ID", strconv.Itoa(n))
	qty := line.CreateElement("cbc:InvoicedQuantity")
	qty.SetText(strconv.Itoa(item.Quantity))
	amount(line, "LineExtensionAmount", item.LineTotal)

	goods := line.CreateElement("cac:Item")
	cbc(goods, "Name", item.ProductName)
	if item.SKU != "" {
		cbc(goods.CreateElement("cac:SellersItemIdentification"), "ID", item.SKU)
	}

	price := line.CreateElement("cac:Price")
	amount(price, "PriceAmount", item.UnitPrice)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func cbc(parent *etree.Element, name, value string) {
	parent.CreateElement("cbc:" + name).SetText(value)
}

func amount(parent *etree.Element, name string, d decimal.Decimal) {
	el := parent.CreateElement("cbc:" + name)
	el.CreateAttr("currencyID", currencyCode)
	el.SetText(d.StringFixed(2))
}
