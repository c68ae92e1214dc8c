package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/booking"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/dto"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
)

// AppointmentHandler maneja la reserva y gestión de citas.
type AppointmentHandler struct {
	uc *booking.UseCase
}

// NewAppointmentHandler construye el handler de citas.
func NewAppointmentHandler(uc *booking.UseCase) *AppointmentHandler {
	return &AppointmentHandler{uc: uc}
}

// Book godoc
// @Summary      Agendar cita
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BookAppointmentRequest  true  "doctor_id, date, time"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/appointments [post]
func (h *AppointmentHandler) Book(c *fiber.Ctx) error {
	var in dto.BookAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if _, err := h.uc.Book(GetUserID(c), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrPastBooking),
			errors.Is(err, domain.ErrSundayBooking),
			errors.Is(err, domain.ErrHolidayBooking):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "BOOKING_RULE", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "médico no encontrado"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "doctor_id, date (2006-01-02) y time (15:04) son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Cita agendada exitosamente."})
}

// Mine godoc
// @Summary      Mis citas
// @Tags         appointments
// @Produce      json
// @Success      200  {array}  dto.AppointmentResponse
// @Router       /api/appointments/mine [get]
func (h *AppointmentHandler) Mine(c *fiber.Ctx) error {
	list, err := h.uc.ListForUser(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toAppointmentResponses(list))
}

// ListAll godoc
// @Summary      Listar todas las citas (admin)
// @Tags         appointments
// @Produce      json
// @Param        doctor_id  query  string  false  "filtrar por médico"
// @Success      200  {array}  dto.AppointmentResponse
// @Router       /api/appointments [get]
func (h *AppointmentHandler) ListAll(c *fiber.Ctx) error {
	list, err := h.uc.ListAll(c.Query("doctor_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toAppointmentResponses(list))
}

// Cancel godoc
// @Summary      Cancelar cita
// @Tags         appointments
// @Produce      json
// @Param        id  path  string  true  "ID de la cita"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Cita cancelada exitosamente."})
}

// Delete godoc
// @Summary      Eliminar cita (admin)
// @Tags         appointments
// @Produce      json
// @Param        id  path  string  true  "ID de la cita"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Error: Cita no encontrada."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Cita eliminada exitosamente."})
}
