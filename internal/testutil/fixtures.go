package testutil

import (
	"time"

	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/alexanderramin/ulcerwise/internal/scoring"
	"github.com/oklog/ulid/v2"
)

// Accra is the time zone fixtures use; West Africa runs on GMT.
var Accra = mustLoad("Africa/Accra")

// Lagos is UTC+1 with no daylight saving.
var Lagos = mustLoad("Africa/Lagos")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Now is the fixed instant tests treat as the present: Saturday
// 17 October 2026, 15:30 in Accra.
var Now = time.Date(2026, time.October, 17, 15, 30, 0, 0, Accra)

// NewClock returns a fixed clock at Now.
func NewClock() *scoring.FixedClock {
	return scoring.NewFixedClock(Now)
}

// Entry options
type EntryOption func(*domain.LogEntry)

func WithKind(k domain.EntryKind) EntryOption {
	return func(e *domain.LogEntry) { e.Kind = k }
}

func WithTimestamp(t time.Time) EntryOption {
	return func(e *domain.LogEntry) { e.Timestamp = t }
}

// WithImpact overrides the impact derived from kind and title.
func WithImpact(v float64) EntryOption {
	return func(e *domain.LogEntry) { e.RiskImpact = v }
}

func WithID(id string) EntryOption {
	return func(e *domain.LogEntry) { e.ID = id }
}

func WithDetails(d string) EntryOption {
	return func(e *domain.LogEntry) { e.Details = d }
}

// NewTestEntry builds a meal entry at Now. Its impact follows the scoring
// rules without a catalog unless WithImpact overrides it.
func NewTestEntry(title string, opts ...EntryOption) domain.LogEntry {
	e := domain.LogEntry{
		ID:        ulid.Make().String(),
		Timestamp: Now,
		Kind:      domain.EntryMeal,
		Title:     title,
	}
	for _, opt := range opts {
		opt(&e)
	}
	e.RiskImpact = scoring.ImpactFor(e.Kind, e.Title, nil)
	// Options are idempotent; the second pass lets WithImpact win.
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
