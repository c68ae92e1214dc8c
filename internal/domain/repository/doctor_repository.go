package repository

import "github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"

// DoctorRepository puerto de persistencia para médicos.
// Los listados siempre vienen ordenados por nombre ascendente.
type DoctorRepository interface {
	Create(doctor *entity.Doctor) error
	Update(doctor *entity.Doctor) error
	Delete(id string) error
	GetByID(id string) (*entity.Doctor, error)
	List() ([]*entity.Doctor, error)
	ListBySpecialty(specialty string) ([]*entity.Doctor, error)
}
