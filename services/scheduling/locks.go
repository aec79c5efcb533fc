package scheduling

import "sync"

// TherapistLocks is a keyed mutex table. Lock acquires the mutex for one
// therapist and returns the matching unlock func.
type TherapistLocks struct {
	mu    sync.Mutex
	locks map[string]*therapistLock
}

type therapistLock struct {
	mu   sync.Mutex
	refs int
}

func NewTherapistLocks() *TherapistLocks {
	return &TherapistLocks{locks: make(map[string]*therapistLock)}
}

// Lock blocks until the per-therapist mutex is held. Entries are dropped once
// the last holder releases, keeping the table bounded by in-flight requests.
func (t *TherapistLocks) Lock(therapistID string) (unlock func()) {
	t.mu.Lock()
	l, ok := t.locks[therapistID]
	if !ok {
		l = &therapistLock{}
		t.locks[therapistID] = l
	}
	l.refs++
	t.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		t.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(t.locks, therapistID)
		}
		t.mu.Unlock()
	}
}
