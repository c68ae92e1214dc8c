package dto

// BookAppointmentRequest reserva de cita. Date en formato 2006-01-02; Time en 15:04.
type BookAppointmentRequest struct {
	DoctorID string `json:"doctor_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
}

// AppointmentResponse cita con su médico (vista unida).
type AppointmentResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	IsCancelled bool           `json:"is_cancelled"`
	Doctor      DoctorResponse `json:"doctor"`
}
