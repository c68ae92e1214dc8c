package livequery

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, sub *Subscription[int]) int {
	t.Helper()
	select {
	case v := <-sub.Updates():
		return v
	case <-time.After(time.Second):
		t.Fatal("no llegó ninguna instantánea")
		return 0
	}
}

func TestWatchEmitsInitialSnapshot(t *testing.T) {
	bus := NewBus()
	sub, err := Watch(bus, []string{"t"}, func() (int, error) { return 42, nil })
	require.NoError(t, err)
	defer sub.Cancel()

	assert.Equal(t, 42, recv(t, sub))
}

func TestWatchInitialFetchError(t *testing.T) {
	bus := NewBus()
	boom := errors.New("boom")
	sub, err := Watch(bus, []string{"t"}, func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, sub)
}

func TestWatchReemitsOnNotify(t *testing.T) {
	bus := NewBus()
	var mu sync.Mutex
	value := 1
	fetch := func() (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return value, nil
	}

	sub, err := Watch(bus, []string{"t"}, fetch)
	require.NoError(t, err)
	defer sub.Cancel()

	assert.Equal(t, 1, recv(t, sub))

	mu.Lock()
	value = 2
	mu.Unlock()
	bus.Notify("t")

	assert.Equal(t, 2, recv(t, sub))
}

func TestWatchIgnoresOtherTables(t *testing.T) {
	bus := NewBus()
	calls := 0
	var mu sync.Mutex
	fetch := func() (int, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return calls, nil
	}

	sub, err := Watch(bus, []string{"t"}, fetch)
	require.NoError(t, err)
	defer sub.Cancel()

	recv(t, sub)
	bus.Notify("otra")

	select {
	case v := <-sub.Updates():
		t.Fatalf("no debía haber emisión, llegó %d", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatchCoalescesPendingSnapshots(t *testing.T) {
	bus := NewBus()
	var mu sync.Mutex
	value := 0
	fetch := func() (int, error) {
		mu.Lock()
		defer mu.Unlock()
		return value, nil
	}

	sub, err := Watch(bus, []string{"t"}, fetch)
	require.NoError(t, err)
	defer sub.Cancel()

	// Sin consumir la instantánea inicial, varias escrituras seguidas.
	for i := 1; i <= 5; i++ {
		mu.Lock()
		value = i
		mu.Unlock()
		bus.Notify("t")
	}

	// El observador termina viendo el estado más reciente.
	deadline := time.After(time.Second)
	for {
		select {
		case v := <-sub.Updates():
			if v == 5 {
				return
			}
		case <-deadline:
			t.Fatal("nunca llegó la instantánea final")
		}
	}
}

func TestCancelStopsEmissions(t *testing.T) {
	bus := NewBus()
	sub, err := Watch(bus, []string{"t"}, func() (int, error) { return 7, nil })
	require.NoError(t, err)

	recv(t, sub)
	sub.Cancel()

	bus.Notify("t")
	select {
	case v, ok := <-sub.Updates():
		if ok {
			t.Fatalf("emisión después de Cancel: %d", v)
		}
	case <-time.After(50 * time.Millisecond):
	}

	// Cancel repetido es seguro.
	sub.Cancel()
}

func TestNotifyOnNilBusIsNoop(t *testing.T) {
	var bus *Bus
	bus.Notify("t")
}
