package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tilekart/tilekart-api/internal/application/billing"
	"github.com/tilekart/tilekart-api/internal/application/dto"
)

// ProfileHandler handles the business profile (protected).
type ProfileHandler struct {
	uc *billing.ProfileUseCase
}

// NewProfileHandler builds the handler.
func NewProfileHandler(uc *billing.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Get GET /api/business-profile
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	profile, err := h.uc.Get(c.Context(), companyID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// Upsert PUT /api/business-profile
func (h *ProfileHandler) Upsert(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	var in dto.BusinessProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	profile, err := h.uc.Upsert(c.Context(), companyID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}
