package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/dto"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/purchases"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
)

// PurchaseHandler maneja el historial de compras y las boletas.
type PurchaseHandler struct {
	uc *purchases.UseCase
}

// NewPurchaseHandler construye el handler de compras.
func NewPurchaseHandler(uc *purchases.UseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Mine godoc
// @Summary      Mis compras
// @Tags         purchases
// @Produce      json
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/purchases/mine [get]
func (h *PurchaseHandler) Mine(c *fiber.Ctx) error {
	list, err := h.uc.ListForUser(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toPurchaseResponses(list))
}

// ListAll godoc
// @Summary      Listar todas las compras (admin)
// @Tags         purchases
// @Produce      json
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/purchases [get]
func (h *PurchaseHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toPurchaseResponses(list))
}

// Receipt godoc
// @Summary      Boleta de una compra en PDF
// @Tags         purchases
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la compra"
// @Success      200  {file}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id}/receipt [get]
func (h *PurchaseHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.uc.Receipt(c.Context(), id, GetUserID(c), GetRole(c))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compra no encontrada"})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la compra pertenece a otro usuario"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="boleta-%s.pdf"`, id))
	return c.Send(pdfBytes)
}
