// Package session mantiene el estado observable de "usuario actual".
// Lo posee la capa de presentación: se fija en login/registro y se limpia
// en logout. Los servicios del núcleo reciben userID/rol explícitos y
// nunca leen este estado directamente.
package session

import (
	"sync"

	"github.com/SalcedoCAMP/ProyectoClinica/internal/domain/entity"
)

// State contenedor del usuario autenticado actual.
type State struct {
	mu       sync.RWMutex
	user     *entity.User
	watchers []func(old, new *entity.User)
}

// NewState construye el estado de sesión, inicialmente sin autenticar.
func NewState() *State {
	return &State{}
}

// Set fija el usuario actual y notifica a los observadores.
func (s *State) Set(user *entity.User) {
	s.mu.Lock()
	old := s.user
	s.user = user
	watchers := append(s.watchers[:0:0], s.watchers...)
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(old, user)
	}
}

// Clear limpia la sesión (logout).
func (s *State) Clear() {
	s.Set(nil)
}

// Current devuelve el usuario actual, o nil si no hay sesión.
func (s *State) Current() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// OnChange registra un observador que recibe el usuario anterior y el nuevo
// en cada cambio de sesión. Se invoca fuera del lock.
func (s *State) OnChange(fn func(old, new *entity.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}
