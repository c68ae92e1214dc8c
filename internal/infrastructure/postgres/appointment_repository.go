package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/repository"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/livequery"
)

var _ repository.AppointmentRepository = (*AppointmentRepo)(nil)

// AppointmentRepo implementación del puerto AppointmentRepository sobre PostgreSQL.
type AppointmentRepo struct {
	q   Querier
	bus *livequery.Bus
}

// NewAppointmentRepository construye el adaptador de persistencia para citas.
func NewAppointmentRepository(q Querier, bus *livequery.Bus) *AppointmentRepo {
	return &AppointmentRepo{q: q, bus: bus}
}

// Create persiste una nueva cita.
func (r *AppointmentRepo) Create(appointment *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, user_id, doctor_id, date, time, is_cancelled)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		appointment.ID, appointment.UserID, appointment.DoctorID,
		appointment.Date, appointment.Time, appointment.IsCancelled,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConstraint
		}
		return fmt.Errorf("insert appointment: %w", err)
	}
	r.bus.Notify("appointments")
	return nil
}

// Cancel marca la cita como cancelada. Sobre una cita ya cancelada o
// inexistente no hace nada y no es error.
func (r *AppointmentRepo) Cancel(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE appointments SET is_cancelled = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}
	r.bus.Notify("appointments")
	return nil
}

// Delete elimina la cita de forma definitiva.
func (r *AppointmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	r.bus.Notify("appointments")
	return nil
}

// GetByID obtiene una cita por ID. (nil, nil) si no existe.
func (r *AppointmentRepo) GetByID(id string) (*entity.Appointment, error) {
	query := `SELECT id, user_id, doctor_id, date, time, is_cancelled FROM appointments WHERE id = $1`
	var a entity.Appointment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.UserID, &a.DoctorID, &a.Date, &a.Time, &a.IsCancelled,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &a, nil
}

const joinedQuery = `
	SELECT a.id, a.user_id, a.doctor_id, a.date, a.time, a.is_cancelled,
	       d.id, d.name, d.specialty, d.schedule
	FROM appointments a
	JOIN doctors d ON d.id = a.doctor_id`

const joinedOrder = ` ORDER BY a.date DESC, a.time DESC`

// ListForUser citas del usuario con su médico, más recientes primero.
func (r *AppointmentRepo) ListForUser(userID string) ([]*entity.AppointmentWithDoctor, error) {
	return r.listJoined(joinedQuery+` WHERE a.user_id = $1`+joinedOrder, userID)
}

// ListForDoctor citas de un médico, más recientes primero.
func (r *AppointmentRepo) ListForDoctor(doctorID string) ([]*entity.AppointmentWithDoctor, error) {
	return r.listJoined(joinedQuery+` WHERE a.doctor_id = $1`+joinedOrder, doctorID)
}

// ListAll todas las citas con su médico, más recientes primero.
func (r *AppointmentRepo) ListAll() ([]*entity.AppointmentWithDoctor, error) {
	return r.listJoined(joinedQuery + joinedOrder)
}

func (r *AppointmentRepo) listJoined(query string, args ...any) ([]*entity.AppointmentWithDoctor, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var out []*entity.AppointmentWithDoctor
	for rows.Next() {
		var v entity.AppointmentWithDoctor
		err := rows.Scan(
			&v.Appointment.ID, &v.Appointment.UserID, &v.Appointment.DoctorID,
			&v.Appointment.Date, &v.Appointment.Time, &v.Appointment.IsCancelled,
			&v.Doctor.ID, &v.Doctor.Name, &v.Doctor.Specialty, &v.Doctor.Schedule,
		)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		out = append(out, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}
	return out, nil
}
