package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/doctors"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/dto"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
)

// DoctorHandler maneja el directorio de médicos.
type DoctorHandler struct {
	uc *doctors.UseCase
}

// NewDoctorHandler construye el handler de médicos.
func NewDoctorHandler(uc *doctors.UseCase) *DoctorHandler {
	return &DoctorHandler{uc: uc}
}

// List godoc
// @Summary      Listar médicos
// @Tags         doctors
// @Produce      json
// @Param        specialty  query  string  false  "filtrar por especialidad"
// @Success      200  {array}  dto.DoctorResponse
// @Router       /api/doctors [get]
func (h *DoctorHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("specialty"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toDoctorResponses(list))
}

// GetByID godoc
// @Summary      Obtener médico
// @Tags         doctors
// @Produce      json
// @Param        id  path  string  true  "ID del médico"
// @Success      200  {object}  dto.DoctorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/doctors/{id} [get]
func (h *DoctorHandler) GetByID(c *fiber.Ctx) error {
	doctor, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "médico no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toDoctorResponse(doctor))
}

// Create godoc
// @Summary      Crear médico (admin)
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveDoctorRequest  true  "name, specialty, schedule"
// @Success      201   {object}  dto.DoctorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/doctors [post]
func (h *DoctorHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveDoctorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doctor, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y specialty son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toDoctorResponse(doctor))
}

// Update godoc
// @Summary      Editar médico (admin)
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del médico"
// @Param        body  body  dto.SaveDoctorRequest  true  "name, specialty, schedule"
// @Success      200   {object}  dto.DoctorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/doctors/{id} [put]
func (h *DoctorHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveDoctorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	doctor, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "médico no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y specialty son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toDoctorResponse(doctor))
}

// Delete godoc
// @Summary      Eliminar médico (admin)
// @Tags         doctors
// @Produce      json
// @Param        id  path  string  true  "ID del médico"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/doctors/{id} [delete]
func (h *DoctorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "médico no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Médico eliminado."})
}
