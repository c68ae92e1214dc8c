package doctors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/dto"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/livequery"
)

type fakeDoctorRepo struct {
	doctors map[string]*entity.Doctor
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[string]*entity.Doctor)}
}

func (r *fakeDoctorRepo) Create(d *entity.Doctor) error {
	cp := *d
	r.doctors[d.ID] = &cp
	return nil
}

func (r *fakeDoctorRepo) Update(d *entity.Doctor) error {
	cp := *d
	r.doctors[d.ID] = &cp
	return nil
}

func (r *fakeDoctorRepo) Delete(id string) error { delete(r.doctors, id); return nil }

func (r *fakeDoctorRepo) GetByID(id string) (*entity.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDoctorRepo) List() ([]*entity.Doctor, error) {
	var out []*entity.Doctor
	for _, d := range r.doctors {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeDoctorRepo) ListBySpecialty(specialty string) ([]*entity.Doctor, error) {
	var out []*entity.Doctor
	for _, d := range r.doctors {
		if d.Specialty == specialty {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func seedDirectory(t *testing.T, uc *UseCase) {
	t.Helper()
	for _, in := range []dto.SaveDoctorRequest{
		{Name: "Dr. Carlos Ruiz", Specialty: "Cardiología", Schedule: "L-V 8-16"},
		{Name: "Dra. Laura Flores", Specialty: "Dermatología", Schedule: "M-J 10-18"},
		{Name: "Dr. Ana Gómez", Specialty: "Pediatría", Schedule: "L-V 9-17"},
	} {
		_, err := uc.Create(in)
		require.NoError(t, err)
	}
}

func TestListSortsByName(t *testing.T) {
	uc := NewUseCase(newFakeDoctorRepo(), livequery.NewBus())
	seedDirectory(t, uc)

	list, err := uc.List("")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Dr. Ana Gómez", list[0].Name)
	assert.Equal(t, "Dr. Carlos Ruiz", list[1].Name)
	assert.Equal(t, "Dra. Laura Flores", list[2].Name)
}

func TestListBySpecialty(t *testing.T) {
	uc := NewUseCase(newFakeDoctorRepo(), livequery.NewBus())
	seedDirectory(t, uc)

	list, err := uc.List("Pediatría")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Dr. Ana Gómez", list[0].Name)
}

func TestCreateValidation(t *testing.T) {
	uc := NewUseCase(newFakeDoctorRepo(), livequery.NewBus())

	_, err := uc.Create(dto.SaveDoctorRequest{Name: "Dr. X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.SaveDoctorRequest{Specialty: "Pediatría"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateAndDelete(t *testing.T) {
	uc := NewUseCase(newFakeDoctorRepo(), livequery.NewBus())

	created, err := uc.Create(dto.SaveDoctorRequest{Name: "Dr. Ana Gómez", Specialty: "Pediatría", Schedule: "L-V 9-17"})
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, dto.SaveDoctorRequest{Name: "Dra. Ana Gómez", Specialty: "Pediatría", Schedule: "L-V 10-18"})
	require.NoError(t, err)
	assert.Equal(t, "Dra. Ana Gómez", updated.Name)

	require.NoError(t, uc.Delete(created.ID))
	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
