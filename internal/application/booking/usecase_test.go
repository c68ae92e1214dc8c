package booking

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/dto"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/livequery"
)

type fakeApptRepo struct {
	appts   map[string]*entity.Appointment
	doctors *fakeDoctorRepo
}

func (r *fakeApptRepo) Create(a *entity.Appointment) error {
	cp := *a
	r.appts[a.ID] = &cp
	return nil
}

func (r *fakeApptRepo) Cancel(id string) error {
	if a, ok := r.appts[id]; ok {
		a.IsCancelled = true
	}
	return nil
}

func (r *fakeApptRepo) Delete(id string) error {
	delete(r.appts, id)
	return nil
}

func (r *fakeApptRepo) GetByID(id string) (*entity.Appointment, error) {
	a, ok := r.appts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApptRepo) joined(filter func(*entity.Appointment) bool) []*entity.AppointmentWithDoctor {
	var out []*entity.AppointmentWithDoctor
	for _, a := range r.appts {
		if !filter(a) {
			continue
		}
		doc := r.doctors.doctors[a.DoctorID]
		out = append(out, &entity.AppointmentWithDoctor{Appointment: *a, Doctor: *doc})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].Time > out[j].Time
	})
	return out
}

func (r *fakeApptRepo) ListForUser(userID string) ([]*entity.AppointmentWithDoctor, error) {
	return r.joined(func(a *entity.Appointment) bool { return a.UserID == userID }), nil
}

func (r *fakeApptRepo) ListForDoctor(doctorID string) ([]*entity.AppointmentWithDoctor, error) {
	return r.joined(func(a *entity.Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (r *fakeApptRepo) ListAll() ([]*entity.AppointmentWithDoctor, error) {
	return r.joined(func(*entity.Appointment) bool { return true }), nil
}

type fakeDoctorRepo struct {
	doctors map[string]*entity.Doctor
}

func (r *fakeDoctorRepo) Create(d *entity.Doctor) error { r.doctors[d.ID] = d; return nil }
func (r *fakeDoctorRepo) Update(d *entity.Doctor) error { r.doctors[d.ID] = d; return nil }
func (r *fakeDoctorRepo) Delete(id string) error        { delete(r.doctors, id); return nil }

func (r *fakeDoctorRepo) GetByID(id string) (*entity.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, nil
	}
	return d, nil
}

func (r *fakeDoctorRepo) List() ([]*entity.Doctor, error) { return nil, nil }

func (r *fakeDoctorRepo) ListBySpecialty(string) ([]*entity.Doctor, error) { return nil, nil }

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }

func newBookingFixture() (*UseCase, *fakeApptRepo, *livequery.Bus) {
	doctors := &fakeDoctorRepo{doctors: map[string]*entity.Doctor{
		"doc-1": {ID: "doc-1", Name: "Dr. Ana Gómez", Specialty: "Pediatría", Schedule: "L-V 9-17"},
	}}
	users := &fakeUserRepo{users: map[string]*entity.User{
		"user-1": {ID: "user-1", Name: "Ana", Email: "ana@example.com", Role: entity.RoleUser},
	}}
	appts := &fakeApptRepo{appts: make(map[string]*entity.Appointment), doctors: doctors}
	bus := livequery.NewBus()
	uc := NewUseCase(appts, doctors, users, bus)
	// Lunes 2 de marzo de 2026, 08:00.
	uc.now = func() time.Time {
		return time.Date(2026, 3, 2, 8, 0, 0, 0, time.Local)
	}
	return uc, appts, bus
}

func TestBook(t *testing.T) {
	uc, appts, _ := newBookingFixture()

	appt, err := uc.Book("user-1", dto.BookAppointmentRequest{DoctorID: "doc-1", Date: "2026-03-03", Time: "10:00"})
	require.NoError(t, err)
	require.NotNil(t, appt)

	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, "user-1", appt.UserID)
	assert.False(t, appt.IsCancelled)

	stored, err := appts.GetByID(appt.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestBookRejectsPastDate(t *testing.T) {
	uc, _, _ := newBookingFixture()

	_, err := uc.Book("user-1", dto.BookAppointmentRequest{DoctorID: "doc-1", Date: "2026-03-01", Time: "10:00"})
	assert.ErrorIs(t, err, domain.ErrPastBooking)

	// Mismo día pero hora ya pasada.
	_, err = uc.Book("user-1", dto.BookAppointmentRequest{DoctorID: "doc-1", Date: "2026-03-02", Time: "07:00"})
	assert.ErrorIs(t, err, domain.ErrPastBooking)
}

func TestBookRejectsSunday(t *testing.T) {
	uc, _, _ := newBookingFixture()

	// 2026-03-08 es domingo.
	_, err := uc.Book("user-1", dto.BookAppointmentRequest{DoctorID: "doc-1", Date: "2026-03-08", Time: "10:00"})
	assert.ErrorIs(t, err, domain.ErrSundayBooking)
}

func TestBookRejectsHoliday(t *testing.T) {
	uc, _, _ := newBookingFixture()

	// Fiestas Patrias.
	_, err := uc.Book("user-1", dto.BookAppointmentRequest{DoctorID: "doc-1", Date: "2026-07-28", Time: "10:00"})
	assert.ErrorIs(t, err, domain.ErrHolidayBooking)
}

func TestBookUnknownDoctor(t *testing.T) {
	uc, _, _ := newBookingFixture()

	_, err := uc.Book("user-1", dto.BookAppointmentRequest{DoctorID: "no-existe", Date: "2026-03-03", Time: "10:00"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookInvalidInput(t *testing.T) {
	uc, _, _ := newBookingFixture()

	_, err := uc.Book("user-1", dto.BookAppointmentRequest{DoctorID: "doc-1", Date: "03/03/2026", Time: "10:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Book("user-1", dto.BookAppointmentRequest{DoctorID: "doc-1", Date: "2026-03-03"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCancelIsIdempotent(t *testing.T) {
	uc, appts, _ := newBookingFixture()

	appt, err := uc.Book("user-1", dto.BookAppointmentRequest{DoctorID: "doc-1", Date: "2026-03-03", Time: "10:00"})
	require.NoError(t, err)

	require.NoError(t, uc.Cancel(appt.ID))
	require.NoError(t, uc.Cancel(appt.ID))

	stored, err := appts.GetByID(appt.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsCancelled)
}

func TestDeleteNotFound(t *testing.T) {
	uc, _, _ := newBookingFixture()

	err := uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWatchUser(t *testing.T) {
	uc, _, bus := newBookingFixture()

	sub, err := uc.WatchUser("user-1")
	require.NoError(t, err)
	defer sub.Cancel()

	initial := <-sub.Updates()
	assert.Empty(t, initial)

	_, err = uc.Book("user-1", dto.BookAppointmentRequest{DoctorID: "doc-1", Date: "2026-03-03", Time: "10:00"})
	require.NoError(t, err)
	bus.Notify("appointments")

	select {
	case snapshot := <-sub.Updates():
		require.Len(t, snapshot, 1)
		assert.Equal(t, "Dr. Ana Gómez", snapshot[0].Doctor.Name)
	case <-time.After(time.Second):
		t.Fatal("no llegó la instantánea tras la escritura")
	}
}

func TestWatchOrdersMostRecentFirst(t *testing.T) {
	uc, _, _ := newBookingFixture()

	_, err := uc.Book("user-1", dto.BookAppointmentRequest{DoctorID: "doc-1", Date: "2026-03-03", Time: "09:00"})
	require.NoError(t, err)
	_, err = uc.Book("user-1", dto.BookAppointmentRequest{DoctorID: "doc-1", Date: "2026-03-04", Time: "10:00"})
	require.NoError(t, err)
	_, err = uc.Book("user-1", dto.BookAppointmentRequest{DoctorID: "doc-1", Date: "2026-03-03", Time: "11:00"})
	require.NoError(t, err)

	list, err := uc.ListForUser("user-1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "2026-03-04", list[0].Date)
	assert.Equal(t, "11:00", list[1].Time)
	assert.Equal(t, "09:00", list[2].Time)
}
