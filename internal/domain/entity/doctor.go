package entity

// Doctor representa un médico de la clínica. Specialty se usa como dimensión
// de filtro en listados; Schedule es texto libre ("L-V 9-17").
type Doctor struct {
	ID        string
	Name      string
	Specialty string
	Schedule  string
}
