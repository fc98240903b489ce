package ratelimit

import (
	"sync"
	"time"
)

// MemoryStore is the default in-process Store: a mutex-guarded map. State is
// scoped to one running process and is not shared, so under a multi-process
// deployment each process enforces the policy independently.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string]Window
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[string]Window)}
}

func (s *MemoryStore) Get(key string) (Window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[key]
	return w, ok
}

func (s *MemoryStore) Set(key string, w Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows[key] = w
}

func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.windows, key)
}

// Purge drops every window whose reset time has passed, regardless of key.
func (s *MemoryStore) Purge(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, w := range s.windows {
		if !now.Before(w.ResetAt) {
			delete(s.windows, k)
		}
	}
}

// Len reports the number of live windows. Intended for tests.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.windows)
}
