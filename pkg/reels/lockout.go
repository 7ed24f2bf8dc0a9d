package reels

import (
	"sync"
	"time"
)

// LockoutStore persists a lockout expiry across client restarts, the way
// the web client keeps it in local storage. Purely a UX aid; the server
// enforces the real limit.
type LockoutStore interface {
	Get(key string) (time.Time, bool)
	Set(key string, until time.Time)
	Remove(key string)
}

type memoryLockoutStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func NewMemoryLockoutStore() LockoutStore {
	return &memoryLockoutStore{entries: map[string]time.Time{}}
}

func (s *memoryLockoutStore) Get(key string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.entries[key]
	return until, ok
}

func (s *memoryLockoutStore) Set(key string, until time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = until
}

func (s *memoryLockoutStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Lockout disables a form for the rate-limit window after the server
// answers 429, and reports the remaining countdown.
type Lockout struct {
	store  LockoutStore
	key    string
	window time.Duration
	now    func() time.Time
}

func NewLockout(store LockoutStore, key string, window time.Duration) *Lockout {
	return &Lockout{store: store, key: key, window: window, now: time.Now}
}

// Trip starts (or restarts) the lockout window.
func (l *Lockout) Trip() {
	l.store.Set(l.key, l.now().Add(l.window))
}

// Remaining reports whether the lockout is active and how long is left.
// An expired entry is cleaned up on read.
func (l *Lockout) Remaining() (time.Duration, bool) {
	until, ok := l.store.Get(l.key)
	if !ok {
		return 0, false
	}
	left := until.Sub(l.now())
	if left <= 0 {
		l.store.Remove(l.key)
		return 0, false
	}
	return left, true
}

func (l *Lockout) Clear() {
	l.store.Remove(l.key)
}
