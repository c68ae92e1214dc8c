// Package doctors gestiona el directorio de médicos: altas y ediciones
// de admin, listados por especialidad y suscripciones vivas.
package doctors

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/dto"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/repository"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/livequery"
)

// UseCase casos de uso del directorio de médicos.
type UseCase struct {
	doctorRepo repository.DoctorRepository
	bus        *livequery.Bus
	collator   *collate.Collator
}

// NewUseCase construye el caso de uso del directorio.
func NewUseCase(doctorRepo repository.DoctorRepository, bus *livequery.Bus) *UseCase {
	return &UseCase{
		doctorRepo: doctorRepo,
		bus:        bus,
		collator:   collate.New(language.Spanish),
	}
}

func (uc *UseCase) sortByName(list []*entity.Doctor) {
	sort.SliceStable(list, func(i, j int) bool {
		return uc.collator.CompareString(list[i].Name, list[j].Name) < 0
	})
}

func validateDoctor(in dto.SaveDoctorRequest) error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Specialty) == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

// Create da de alta un médico. Nombre y especialidad obligatorios.
func (uc *UseCase) Create(in dto.SaveDoctorRequest) (*entity.Doctor, error) {
	if err := validateDoctor(in); err != nil {
		return nil, err
	}
	doctor := &entity.Doctor{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Specialty: strings.TrimSpace(in.Specialty),
		Schedule:  in.Schedule,
	}
	if err := uc.doctorRepo.Create(doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// Update edita un médico existente. ErrNotFound si no existe.
func (uc *UseCase) Update(id string, in dto.SaveDoctorRequest) (*entity.Doctor, error) {
	if err := validateDoctor(in); err != nil {
		return nil, err
	}
	doctor, err := uc.doctorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, domain.ErrNotFound
	}
	doctor.Name = strings.TrimSpace(in.Name)
	doctor.Specialty = strings.TrimSpace(in.Specialty)
	doctor.Schedule = in.Schedule
	if err := uc.doctorRepo.Update(doctor); err != nil {
		return nil, err
	}
	return doctor, nil
}

// Delete elimina un médico. ErrNotFound si no existe.
func (uc *UseCase) Delete(id string) error {
	doctor, err := uc.doctorRepo.GetByID(id)
	if err != nil {
		return err
	}
	if doctor == nil {
		return domain.ErrNotFound
	}
	return uc.doctorRepo.Delete(id)
}

// GetByID devuelve un médico. ErrNotFound si no existe.
func (uc *UseCase) GetByID(id string) (*entity.Doctor, error) {
	doctor, err := uc.doctorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, domain.ErrNotFound
	}
	return doctor, nil
}

// List directorio completo, o filtrado por especialidad si no está vacía.
// Ordenado por nombre con colación española.
func (uc *UseCase) List(specialty string) ([]*entity.Doctor, error) {
	var (
		list []*entity.Doctor
		err  error
	)
	if specialty = strings.TrimSpace(specialty); specialty != "" {
		list, err = uc.doctorRepo.ListBySpecialty(specialty)
	} else {
		list, err = uc.doctorRepo.List()
	}
	if err != nil {
		return nil, err
	}
	uc.sortByName(list)
	return list, nil
}

// Watch suscripción viva al directorio completo.
func (uc *UseCase) Watch() (*livequery.Subscription[[]*entity.Doctor], error) {
	return livequery.Watch(uc.bus, []string{"doctors"}, func() ([]*entity.Doctor, error) {
		return uc.List("")
	})
}
