package content

import "sync"

// Store holds the current content for concurrent readers. Replacing it bumps
// the version so clients can tell reloads apart.
type Store struct {
	mu      sync.RWMutex
	current *Content
	version uint64
}

// NewStore returns a store seeded with c.
func NewStore(c *Content) *Store {
	return &Store{current: c, version: 1}
}

// Get returns the current content and its version. Callers must not modify
// the returned value.
func (s *Store) Get() (*Content, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.version
}

// Set replaces the content and returns the new version.
func (s *Store) Set(c *Content) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = c
	s.version++
	return s.version
}
