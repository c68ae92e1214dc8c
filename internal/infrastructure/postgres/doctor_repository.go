package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/repository"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/livequery"
)

var _ repository.DoctorRepository = (*DoctorRepo)(nil)

// DoctorRepo implementación del puerto DoctorRepository sobre PostgreSQL.
// Tras cada escritura avisa al bus de consultas vivas.
type DoctorRepo struct {
	q   Querier
	bus *livequery.Bus
}

// NewDoctorRepository construye el adaptador de persistencia para médicos.
func NewDoctorRepository(q Querier, bus *livequery.Bus) *DoctorRepo {
	return &DoctorRepo{q: q, bus: bus}
}

// Create persiste un nuevo médico.
func (r *DoctorRepo) Create(doctor *entity.Doctor) error {
	query := `INSERT INTO doctors (id, name, specialty, schedule) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, doctor.ID, doctor.Name, doctor.Specialty, doctor.Schedule)
	if err != nil {
		return fmt.Errorf("insert doctor: %w", err)
	}
	r.bus.Notify("doctors")
	return nil
}

// Update actualiza un médico existente.
func (r *DoctorRepo) Update(doctor *entity.Doctor) error {
	query := `UPDATE doctors SET name = $2, specialty = $3, schedule = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, doctor.ID, doctor.Name, doctor.Specialty, doctor.Schedule)
	if err != nil {
		return fmt.Errorf("update doctor: %w", err)
	}
	r.bus.Notify("doctors")
	return nil
}

// Delete elimina un médico. Las citas asociadas caen en cascada.
func (r *DoctorRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete doctor: %w", err)
	}
	r.bus.Notify("doctors", "appointments")
	return nil
}

// GetByID obtiene un médico por ID. (nil, nil) si no existe.
func (r *DoctorRepo) GetByID(id string) (*entity.Doctor, error) {
	query := `SELECT id, name, specialty, schedule FROM doctors WHERE id = $1`
	var d entity.Doctor
	err := r.q.QueryRow(context.Background(), query, id).Scan(&d.ID, &d.Name, &d.Specialty, &d.Schedule)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return &d, nil
}

// List lista todos los médicos ordenados por nombre.
func (r *DoctorRepo) List() ([]*entity.Doctor, error) {
	return r.list(`SELECT id, name, specialty, schedule FROM doctors ORDER BY name ASC`)
}

// ListBySpecialty lista los médicos de una especialidad ordenados por nombre.
func (r *DoctorRepo) ListBySpecialty(specialty string) ([]*entity.Doctor, error) {
	return r.list(`SELECT id, name, specialty, schedule FROM doctors WHERE specialty = $1 ORDER BY name ASC`, specialty)
}

func (r *DoctorRepo) list(query string, args ...any) ([]*entity.Doctor, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	defer rows.Close()

	var out []*entity.Doctor
	for rows.Next() {
		var d entity.Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &d.Schedule); err != nil {
			return nil, fmt.Errorf("scan doctor: %w", err)
		}
		out = append(out, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate doctors: %w", err)
	}
	return out, nil
}
