package memory

import (
	"sync"
	"time"

	"github.com/cosmo-tools/astro-atlas/pkg/models/domain"
)

// Store is an in-memory report cache keyed by the engine's cache key.
// Entries expire lazily after the configured TTL; a zero TTL keeps them
// forever. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	report   domain.AstrologyReport
	storedAt time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached report for a key, if present and fresh.
func (s *Store) Get(key string) (domain.AstrologyReport, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return domain.AstrologyReport{}, false
	}
	if s.ttl > 0 && s.now().Sub(e.storedAt) > s.ttl {
		s.mu.Lock()
		// a concurrent Set may have refreshed the entry since the read
		if current, still := s.entries[key]; still && current.storedAt.Equal(e.storedAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return domain.AstrologyReport{}, false
	}
	return e.report, true
}

// Set stores a report under a key, replacing any previous entry.
func (s *Store) Set(key string, report domain.AstrologyReport) {
	s.mu.Lock()
	s.entries[key] = entry{report: report, storedAt: s.now()}
	s.mu.Unlock()
}

// Len reports how many entries are currently held, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
