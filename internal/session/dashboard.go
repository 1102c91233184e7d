package session

import (
	"context"
	"time"

	"github.com/alexanderramin/ulcerwise/internal/advisory"
	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/alexanderramin/ulcerwise/internal/scoring"
)

// RecentLimit is how many entries the home view lists.
const RecentLimit = 3

// Snapshot is everything the home view renders, computed in one pass.
type Snapshot struct {
	UserName string
	Score    scoring.DailyScore
	Gauge    scoring.GaugeArc
	Weekly   []scoring.WeeklyBucket
	Recent   []domain.LogEntry
	Insight  string
	Now      time.Time
}

// Dashboard derives the home view from the current log at now.
func (s *Service) Dashboard(now time.Time) (Snapshot, error) {
	profile, ok := s.Profile()
	if !ok {
		return Snapshot{}, ErrNotAuthenticated
	}
	entries := s.logs.List()
	score := scoring.Daily(entries, now)

	recent := entries
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	return Snapshot{
		UserName: profile.DisplayName(),
		Score:    score,
		Gauge:    scoring.Gauge(score.Score),
		Weekly:   scoring.Weekly(entries, now),
		Recent:   recent,
		Insight:  s.catalog.DailyInsight(now),
		Now:      now,
	}, nil
}

// Weekly returns the seven-day exposure series ending on now's day.
func (s *Service) Weekly(now time.Time) ([]scoring.WeeklyBucket, error) {
	if !s.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	return scoring.Weekly(s.logs.List(), now), nil
}

// Analyze asks the advisor about food. It never mutates session state.
func (s *Service) Analyze(ctx context.Context, food string) advisory.Result {
	started := time.Now()
	res := s.advisor.Analyze(ctx, food)
	s.observe(ctx, "analyze", started, map[string]any{"outcome": string(res.Outcome)}, nil)
	return res
}
