package livequery

import "sync"

// Subscription es una consulta viva sobre un resultado T. Updates entrega
// la instantánea inicial y una nueva instantánea tras cada escritura
// confirmada sobre las tablas observadas, coalescendo resultados no
// consumidos (el observador siempre ve el estado más reciente).
type Subscription[T any] struct {
	updates chan T
	stop    chan struct{}
	done    chan struct{}

	mu     sync.Mutex
	closed bool

	unregister func()
}

// Watch crea una suscripción: ejecuta fetch para la instantánea inicial y
// vuelve a ejecutarlo tras cada aviso sobre tables. Si el fetch inicial
// falla, no se crea la suscripción.
func Watch[T any](bus *Bus, tables []string, fetch func() (T, error)) (*Subscription[T], error) {
	initial, err := fetch()
	if err != nil {
		return nil, err
	}

	id, signal := bus.register(tables)
	s := &Subscription[T]{
		updates:    make(chan T, 1),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		unregister: func() { bus.unregister(id) },
	}
	s.updates <- initial

	go s.loop(signal, fetch)
	return s, nil
}

// Updates es el canal de instantáneas. No se cierra; el fin de la
// suscripción se decide con Cancel.
func (s *Subscription[T]) Updates() <-chan T {
	return s.updates
}

// Cancel detiene las emisiones y libera recursos. Al retornar, está
// garantizado que no habrá más emisiones. Es seguro llamarlo varias veces.
func (s *Subscription[T]) Cancel() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.stop)
	s.mu.Unlock()

	s.unregister()
	<-s.done
}

func (s *Subscription[T]) loop(signal chan struct{}, fetch func() (T, error)) {
	defer close(s.done)
	for {
		select {
		case <-s.stop:
			return
		case <-signal:
			snapshot, err := fetch()
			if err != nil {
				// La próxima escritura vuelve a disparar el fetch.
				continue
			}
			s.emit(snapshot)
		}
	}
}

// emit publica la instantánea salvo que la suscripción esté cancelada.
// Descarta la instantánea pendiente no consumida antes de publicar.
func (s *Subscription[T]) emit(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case <-s.updates:
	default:
	}
	s.updates <- v
}
