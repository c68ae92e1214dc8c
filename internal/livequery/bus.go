// Package livequery implementa consultas vivas sobre el almacén: una
// suscripción entrega una instantánea inicial y re-emite el resultado
// completo cada vez que se confirma una escritura que toca alguna de las
// tablas observadas. La cancelación es explícita y determinista: después
// de Cancel no se observa ninguna emisión más.
package livequery

import "sync"

// Bus recibe avisos de cambio por tabla y los reparte a los observadores.
// Los repositorios (o el TxRunner, tras el commit) llaman Notify.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*listener
}

type listener struct {
	tables map[string]struct{}
	signal chan struct{} // cap 1: los avisos se coalescen
}

// NewBus construye el bus de cambios.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]*listener)}
}

// Notify avisa que las tablas indicadas cambiaron. Nunca bloquea: si un
// observador todavía tiene un aviso pendiente, los avisos se funden en uno.
// Un bus nil es un no-op, útil para repositorios atados a una transacción.
func (b *Bus) Notify(tables ...string) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, l := range b.subs {
		for _, t := range tables {
			if _, ok := l.tables[t]; ok {
				select {
				case l.signal <- struct{}{}:
				default:
				}
				break
			}
		}
	}
}

func (b *Bus) register(tables []string) (int, chan struct{}) {
	l := &listener{
		tables: make(map[string]struct{}, len(tables)),
		signal: make(chan struct{}, 1),
	}
	for _, t := range tables {
		l.tables[t] = struct{}{}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.subs[id] = l
	return id, l.signal
}

func (b *Bus) unregister(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, id)
}
