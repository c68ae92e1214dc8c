package dto

// SaveDoctorRequest alta o edición de un médico (solo admin).
type SaveDoctorRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Schedule  string `json:"schedule"`
}

// DoctorResponse representación de un médico.
type DoctorResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Schedule  string `json:"schedule"`
}
