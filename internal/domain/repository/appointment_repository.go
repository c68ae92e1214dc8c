package repository

import "github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"

// AppointmentRepository puerto de persistencia para citas.
// Las vistas unidas (cita + médico) vienen ordenadas por fecha y hora descendente.
type AppointmentRepository interface {
	Create(appointment *entity.Appointment) error
	// Cancel marca la cita como cancelada. Cancelar dos veces deja el mismo
	// estado; no es error que la fila ya estuviera cancelada.
	Cancel(id string) error
	Delete(id string) error
	GetByID(id string) (*entity.Appointment, error)

	ListForUser(userID string) ([]*entity.AppointmentWithDoctor, error)
	ListForDoctor(doctorID string) ([]*entity.AppointmentWithDoctor, error)
	ListAll() ([]*entity.AppointmentWithDoctor, error)
}
