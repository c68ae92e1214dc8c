package entity

// Formatos de fecha y hora de citas tal como se persisten.
// El orden lexicográfico coincide con el cronológico.
const (
	AppointmentDateLayout = "2006-01-02"
	AppointmentTimeLayout = "15:04"
)

// Appointment representa una cita médica. IsCancelled es de un solo sentido:
// una cita cancelada nunca vuelve a estar activa por flujo normal.
type Appointment struct {
	ID          string
	UserID      string
	DoctorID    string
	Date        string // AppointmentDateLayout
	Time        string // AppointmentTimeLayout
	IsCancelled bool
}

// AppointmentWithDoctor es la vista unida cita + médico para listados.
// Toda fila devuelta tiene médico: si el médico fue eliminado, la cita
// desapareció por cascada en el esquema.
type AppointmentWithDoctor struct {
	Appointment
	Doctor Doctor
}
