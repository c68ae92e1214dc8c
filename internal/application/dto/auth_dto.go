package dto

// RegisterRequest datos de registro de un usuario.
type RegisterRequest struct {
	Name     string `json:"name"`
	DNI      string `json:"dni"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest edición de perfil. Password vacío mantiene la actual.
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	DNI      string `json:"dni"`
	Password string `json:"password"`
}

// UserResponse representación pública de un usuario (sin credencial).
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	DNI   string `json:"dni"`
	Role  string `json:"role"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
