package entity

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa un usuario de la clínica (paciente o administrador).
type User struct {
	ID           string
	Name         string
	Email        string // clave de negocio única
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	DNI          string
	Role         string // user, admin
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
