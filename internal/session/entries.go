package session

import (
	"context"
	"time"

	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/alexanderramin/ulcerwise/internal/scoring"
)

// AddEntry logs an entry stamped with the current time.
func (s *Service) AddEntry(ctx context.Context, kind domain.EntryKind, title string) (domain.LogEntry, error) {
	return s.logEntry(ctx, "add-entry", kind, title, s.clock.Now())
}

// LogAt logs an entry with an explicit timestamp.
func (s *Service) LogAt(ctx context.Context, kind domain.EntryKind, title string, at time.Time) (domain.LogEntry, error) {
	return s.logEntry(ctx, "log-at", kind, title, at)
}

func (s *Service) logEntry(ctx context.Context, name string, kind domain.EntryKind, title string, at time.Time) (entry domain.LogEntry, err error) {
	started := time.Now()
	fields := map[string]any{"kind": string(kind)}
	defer func() { s.observe(ctx, name, started, fields, err) }()

	if !s.Authenticated() {
		return domain.LogEntry{}, ErrNotAuthenticated
	}
	e, err := domain.NewLogEntry(kind, title, at)
	if err != nil {
		return domain.LogEntry{}, err
	}
	e.ID = s.logs.NewID()
	e.RiskImpact = scoring.ImpactFor(e.Kind, e.Title, s.catalog)
	s.logs.Append(e)

	fields["impact"] = e.RiskImpact
	return *e, nil
}

// DeleteEntry removes an entry. Deleting an unknown id succeeds.
func (s *Service) DeleteEntry(ctx context.Context, id string) (err error) {
	started := time.Now()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "delete-entry", started, fields, err) }()

	if !s.Authenticated() {
		return ErrNotAuthenticated
	}
	if e, ok := s.logs.Get(id); ok {
		fields["removed_kind"] = string(e.Kind)
	}
	fields["removed"] = s.logs.Remove(id)
	return nil
}

// Entries returns the history, most recent first.
func (s *Service) Entries() ([]domain.LogEntry, error) {
	if !s.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	return s.logs.List(), nil
}

// SeedDemo logs a sample meal and medication earlier today so a fresh
// session has something to show.
func (s *Service) SeedDemo(ctx context.Context) error {
	now := s.clock.Now()
	if _, err := s.LogAt(ctx, domain.EntryMedication, "Antacid", now.Add(-2*time.Hour)); err != nil {
		return err
	}
	_, err := s.LogAt(ctx, domain.EntryMeal, "Boiled Yam + Kontomire", now.Add(-time.Hour))
	return err
}
