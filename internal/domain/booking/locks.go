package booking

import "sync"

// BarberLocks serializes the overlap-check-then-insert sequence per barber
// name, closing the double-booking race inside a single process. The
// database exclusion constraint backs this up across processes.
type BarberLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewBarberLocks() *BarberLocks {
	return &BarberLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the mutex for the barber and returns the unlock func.
func (l *BarberLocks) Lock(barber string) func() {
	l.mu.Lock()
	m, ok := l.locks[barber]
	if !ok {
		m = &sync.Mutex{}
		l.locks[barber] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
