// Package store holds the session's log entries in memory. Nothing is
// persisted; the collection lives as long as the process or until cleared.
package store

import "github.com/alexanderramin/ulcerwise/internal/domain"

// LogRepo is the ordered collection of entries for the active session.
type LogRepo interface {
	// Append stores e, assigning an ID when e.ID is empty.
	Append(e *domain.LogEntry)
	// Remove deletes the entry with id. It reports whether anything was
	// removed; a missing id is not an error.
	Remove(id string) bool
	// Get returns the entry with id.
	Get(id string) (domain.LogEntry, bool)
	// List returns a snapshot, newest first.
	List() []domain.LogEntry
	Len() int
	Clear()
	// NewID returns a unique id that sorts after every id issued before it.
	NewID() string
}
