package store

import (
	"sort"
	"sync"

	"github.com/alexanderramin/ulcerwise/internal/domain"
)

// MemoryLogStore is the in-memory LogRepo. The mutex only guards against
// the TUI's background commands; there is a single logical writer.
type MemoryLogStore struct {
	mu      sync.RWMutex
	entries []domain.LogEntry // insertion order
	ids     *IDGenerator
}

// NewMemoryLogStore returns an empty store.
func NewMemoryLogStore() *MemoryLogStore {
	return &MemoryLogStore{ids: NewIDGenerator()}
}

// NewID returns a fresh entry id from the store's generator.
func (s *MemoryLogStore) NewID() string {
	return s.ids.New()
}

func (s *MemoryLogStore) Append(e *domain.LogEntry) {
	if e.ID == "" {
		e.ID = s.ids.New()
	}
	s.mu.Lock()
	s.entries = append(s.entries, *e)
	s.mu.Unlock()
}

func (s *MemoryLogStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (s *MemoryLogStore) Get(id string) (domain.LogEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return domain.LogEntry{}, false
}

// List sorts by timestamp descending. Entries with equal timestamps come
// out most recently inserted first.
func (s *MemoryLogStore) List() []domain.LogEntry {
	s.mu.RLock()
	out := make([]domain.LogEntry, len(s.entries))
	for i, e := range s.entries {
		out[len(s.entries)-1-i] = e
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

func (s *MemoryLogStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryLogStore) Clear() {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
}
