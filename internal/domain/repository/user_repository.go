package repository

import "github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Las búsquedas devuelven (nil, nil) cuando no hay fila: ausencia no es error.
type UserRepository interface {
	Create(user *entity.User) error
	Update(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
