package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tilekart/tilekart-api/internal/application/billing"
	"github.com/tilekart/tilekart-api/internal/application/dto"
)

// InvoiceHandler handles invoice HTTP requests (protected).
type InvoiceHandler struct {
	invoiceUC  *billing.InvoiceUseCase
	documentUC *billing.DocumentUseCase
}

// NewInvoiceHandler builds the handler.
func NewInvoiceHandler(invoiceUC *billing.InvoiceUseCase, documentUC *billing.DocumentUseCase) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC, documentUC: documentUC}
}

// Create POST /api/invoices
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	invoice, err := h.invoiceUC.CreateInvoice(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// GetByID GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	invoice, items, err := h.invoiceUC.GetInvoice(c.Context(), companyID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"invoice": invoice, "items": items})
}

// List GET /api/invoices?limit=20&offset=0
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.invoiceUC.ListInvoices(c.Context(), companyID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// UpdateStatus PATCH /api/invoices/:id/status
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	var in dto.UpdateInvoiceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.invoiceUC.UpdateStatus(c.Context(), companyID, id, in.Status); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DownloadPDF GET /api/invoices/:id/pdf[?format=base64]
//
// The default response streams the PDF bytes with a download disposition;
// format=base64 returns a JSON body with a data URI for web clients.
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	doc, filename, err := h.documentUC.DownloadInvoicePDF(c.Context(), companyID, id)
	if err != nil {
		return respondError(c, err)
	}
	if c.Query("format") == "base64" {
		return c.JSON(fiber.Map{"filename": filename, "data_uri": doc.DataURI()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(doc.Bytes())
}

// DownloadXML GET /api/invoices/:id/xml
func (h *InvoiceHandler) DownloadXML(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	raw, filename, err := h.documentUC.ExportInvoiceXML(c.Context(), companyID, id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(raw)
}
