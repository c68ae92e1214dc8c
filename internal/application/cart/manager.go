package cart

import "sync"

// Manager mantiene un carrito por usuario. Los carritos viven en memoria;
// al cerrar sesión se descartan con Drop.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewManager construye el gestor de carritos.
func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// Get devuelve el carrito del usuario, creándolo si no existe.
func (m *Manager) Get(userID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[userID]
	if !ok {
		c = New()
		m.carts[userID] = c
	}
	return c
}

// Drop descarta el carrito del usuario.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, userID)
}
