package http

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tilekart/tilekart-api/internal/application/dto"
	"github.com/tilekart/tilekart-api/internal/application/purchasing"
)

// PurchaseOrderHandler handles purchase order HTTP requests (protected).
type PurchaseOrderHandler struct {
	uc *purchasing.POUseCase
}

// NewPurchaseOrderHandler builds the handler.
func NewPurchaseOrderHandler(uc *purchasing.POUseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc}
}

// Create POST /api/purchase-orders
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
	}
	var in dto.CreatePORequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	po, err := h.uc.Create(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(po)
}

// GetByID GET /api/purchase-orders/:id
func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	po, items, err := h.uc.Get(c.Context(), companyID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"purchase_order": po, "items": items})
}

// List GET /api/purchase-orders?limit=20&offset=0
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	list, err := h.uc.List(c.Context(), companyID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// DownloadPDF GET /api/purchase-orders/:id/pdf
func (h *PurchaseOrderHandler) DownloadPDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	id := c.Params("id")
	raw, filename, err := h.uc.DownloadPOPDF(c.Context(), companyID, id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(raw)
}
