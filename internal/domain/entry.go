package domain

import (
	"strings"
	"time"
)

// LogEntry is a single user-logged event. ID, Timestamp and Kind never
// change after creation; entries are deleted, never edited.
type LogEntry struct {
	ID         string
	Timestamp  time.Time
	Kind       EntryKind
	Title      string
	Details    string
	RiskImpact float64
}

// NewLogEntry validates kind and title and builds an entry. The caller
// assigns ID and RiskImpact.
func NewLogEntry(kind EntryKind, title string, at time.Time) (*LogEntry, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &LogEntry{
		Timestamp: at,
		Kind:      kind,
		Title:     title,
	}, nil
}

// RiskPoints is the impact expressed in whole score points.
func (e LogEntry) RiskPoints() int {
	if e.RiskImpact >= 0 {
		return int(e.RiskImpact*100 + 0.5)
	}
	return -int(-e.RiskImpact*100 + 0.5)
}

// RaisesRisk reports whether the entry contributes to risk exposure.
func (e LogEntry) RaisesRisk() bool { return e.RiskImpact > 0 }

// LowersRisk reports whether the entry reduces the daily score.
func (e LogEntry) LowersRisk() bool { return e.RiskImpact < 0 }
