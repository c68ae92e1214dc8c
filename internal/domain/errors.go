package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el correo electrónico ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConstraint         = errors.New("violación de integridad referencial")

	// Reglas de reserva de citas.
	ErrSundayBooking  = errors.New("no se pueden reservar citas los domingos")
	ErrHolidayBooking = errors.New("no se pueden reservar citas en días feriados")
	ErrPastBooking    = errors.New("no se pueden reservar citas en fechas pasadas")

	// Reglas del carrito y pago.
	ErrEmptyCart           = errors.New("el carrito está vacío")
	ErrInsufficientPayment = errors.New("monto insuficiente")
	ErrInsufficientStock   = errors.New("stock insuficiente")
)
