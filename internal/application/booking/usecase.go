package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/dto"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/repository"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/livequery"
)

// UseCase casos de uso de citas: reserva con validación de calendario,
// cancelación, eliminación y listados vivos.
type UseCase struct {
	apptRepo   repository.AppointmentRepository
	doctorRepo repository.DoctorRepository
	userRepo   repository.UserRepository
	bus        *livequery.Bus
	now        func() time.Time
}

// NewUseCase construye el caso de uso de citas.
func NewUseCase(
	apptRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	userRepo repository.UserRepository,
	bus *livequery.Bus,
) *UseCase {
	return &UseCase{
		apptRepo:   apptRepo,
		doctorRepo: doctorRepo,
		userRepo:   userRepo,
		bus:        bus,
		now:        time.Now,
	}
}

// Book reserva una cita para el usuario. Rechaza fechas pasadas, domingos
// y feriados; exige que el usuario y el médico existan.
func (uc *UseCase) Book(userID string, in dto.BookAppointmentRequest) (*entity.Appointment, error) {
	if in.DoctorID == "" || in.Date == "" || in.Time == "" {
		return nil, domain.ErrInvalidInput
	}
	date, err := time.ParseInLocation(entity.AppointmentDateLayout, in.Date, time.Local)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	at, err := time.Parse(entity.AppointmentTimeLayout, in.Time)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	slot := time.Date(date.Year(), date.Month(), date.Day(), at.Hour(), at.Minute(), 0, 0, time.Local)

	if slot.Before(uc.now()) {
		return nil, domain.ErrPastBooking
	}
	if date.Weekday() == time.Sunday {
		return nil, domain.ErrSundayBooking
	}
	if isHoliday(date) {
		return nil, domain.ErrHolidayBooking
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	doctor, err := uc.doctorRepo.GetByID(in.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, domain.ErrNotFound
	}

	appt := &entity.Appointment{
		ID:       uuid.New().String(),
		UserID:   userID,
		DoctorID: in.DoctorID,
		Date:     in.Date,
		Time:     in.Time,
	}
	if err := uc.apptRepo.Create(appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// Cancel marca la cita como cancelada. La fila conserva su historial;
// cancelar una cita ya cancelada no es error.
func (uc *UseCase) Cancel(id string) error {
	return uc.apptRepo.Cancel(id)
}

// Delete elimina la cita de forma definitiva. ErrNotFound si no existe.
func (uc *UseCase) Delete(id string) error {
	appt, err := uc.apptRepo.GetByID(id)
	if err != nil {
		return err
	}
	if appt == nil {
		return domain.ErrNotFound
	}
	return uc.apptRepo.Delete(id)
}

// ListForUser citas del usuario con su médico, más recientes primero.
func (uc *UseCase) ListForUser(userID string) ([]*entity.AppointmentWithDoctor, error) {
	return uc.apptRepo.ListForUser(userID)
}

// ListAll todas las citas con su médico, opcionalmente filtradas por médico.
func (uc *UseCase) ListAll(doctorID string) ([]*entity.AppointmentWithDoctor, error) {
	if doctorID != "" {
		return uc.apptRepo.ListForDoctor(doctorID)
	}
	return uc.apptRepo.ListAll()
}

// WatchUser suscripción viva a las citas del usuario. Re-emite ante
// cambios en citas o médicos (el nombre del médico es parte de la vista).
func (uc *UseCase) WatchUser(userID string) (*livequery.Subscription[[]*entity.AppointmentWithDoctor], error) {
	return livequery.Watch(uc.bus, []string{"appointments", "doctors"}, func() ([]*entity.AppointmentWithDoctor, error) {
		return uc.apptRepo.ListForUser(userID)
	})
}

// WatchAdmin suscripción viva a todas las citas, o a las de un médico si
// doctorID no está vacío.
func (uc *UseCase) WatchAdmin(doctorID string) (*livequery.Subscription[[]*entity.AppointmentWithDoctor], error) {
	return livequery.Watch(uc.bus, []string{"appointments", "doctors"}, func() ([]*entity.AppointmentWithDoctor, error) {
		return uc.ListAll(doctorID)
	})
}
