package cache

import (
	"sync"

	"ooskills-backend/internal/core/domain"
)

// Key addresses one cached payload: a landing page section resolved
// for one language.
type Key struct {
	Section domain.Section
	Lang    domain.Language
}

// Invalidator is the write-path view of the store, handed to the admin
// CMS handlers so they can drop stale entries without knowing how the
// cache is built.
type Invalidator interface {
	InvalidateSection(section domain.Section)
	InvalidateAll()
}

type entry struct {
	payload interface{}
	gen     uint64
}

// Store is a process-wide cache of resolved section payloads. Entries
// live until an explicit invalidation or process restart; there is no
// background expiry.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]entry
	gen     uint64
}

// NewStore creates an empty cache store
func NewStore() *Store {
	return &Store{entries: make(map[Key]entry)}
}

// GetOrCompute returns the cached payload for key, computing and storing
// it on a miss. Concurrent misses may compute twice; resolution is a pure
// read, so the duplicate work is harmless and no lock is held across compute.
// A result computed against data that an invalidation has since superseded
// is returned to the caller but never stored.
func (s *Store) GetOrCompute(key Key, compute func() (interface{}, error)) (interface{}, error) {
	s.mu.RLock()
	if e, ok := s.entries[key]; ok {
		s.mu.RUnlock()
		return e.payload, nil
	}
	startGen := s.gen
	s.mu.RUnlock()

	payload, err := compute()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	// An invalidation that completed while compute ran means the source
	// changed underneath us; storing now would pin the stale payload.
	if s.gen == startGen {
		s.entries[key] = entry{payload: payload, gen: startGen}
	}
	s.mu.Unlock()

	return payload, nil
}

// Get returns the cached payload for key, if present
func (s *Store) Get(key Key) (interface{}, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return e.payload, true
}

// InvalidateSection drops every language variant of one section
func (s *Store) InvalidateSection(section domain.Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	for key := range s.entries {
		if key.Section == section {
			delete(s.entries, key)
		}
	}
}

// InvalidateAll drops every cached entry (admin recovery path)
func (s *Store) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.entries = make(map[Key]entry)
}

// Len reports the number of cached entries
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
