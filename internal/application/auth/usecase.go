package auth

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/application/dto"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/repository"
	"github.com/SalcedoCAMP/ProyectoClinica/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro, login y edición de perfil.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario con rol "user": hashea el password con bcrypt y
// persiste. Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UseCase) Register(in dto.RegisterRequest) (*entity.User, error) {
	if in.Name == "" || in.DNI == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		DNI:          in.DNI,
		Role:         entity.RoleUser,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Credenciales incorrectas (usuario inexistente o password que no coincide)
// devuelven siempre ErrInvalidCredentials, sin distinguir el caso.
func (uc *UseCase) Login(in dto.LoginRequest) (string, *entity.User, error) {
	if in.Email == "" || in.Password == "" {
		return "", nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Get devuelve el usuario por ID. ErrUserNotFound si no existe.
func (uc *UseCase) Get(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile edita nombre, DNI y opcionalmente el password del usuario.
// El email es clave de negocio y no se modifica por este flujo.
func (uc *UseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.DNI != "" {
		user.DNI = in.DNI
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
