// Package app declares the use-case ports the presentation layer drives.
// session.Service implements all of them.
package app

import (
	"context"
	"time"

	"github.com/alexanderramin/ulcerwise/internal/advisory"
	"github.com/alexanderramin/ulcerwise/internal/auth"
	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/alexanderramin/ulcerwise/internal/scoring"
	"github.com/alexanderramin/ulcerwise/internal/session"
)

type AuthUseCase interface {
	RequestSignupCode(ctx context.Context, name, contact string) (auth.Challenge, error)
	VerifySignupCode(ctx context.Context, code string) (domain.UserProfile, error)
	Login(ctx context.Context, contact, password string) (domain.UserProfile, error)
	Logout(ctx context.Context)
	Authenticated() bool
}

type JournalUseCase interface {
	AddEntry(ctx context.Context, kind domain.EntryKind, title string) (domain.LogEntry, error)
	LogAt(ctx context.Context, kind domain.EntryKind, title string, at time.Time) (domain.LogEntry, error)
	DeleteEntry(ctx context.Context, id string) error
	Entries() ([]domain.LogEntry, error)
	SeedDemo(ctx context.Context) error
}

type InsightUseCase interface {
	Dashboard(now time.Time) (session.Snapshot, error)
	Weekly(now time.Time) ([]scoring.WeeklyBucket, error)
	Analyze(ctx context.Context, food string) advisory.Result
}

type ProfileUseCase interface {
	Profile() (domain.UserProfile, bool)
	ToggleReminders(ctx context.Context) (bool, error)
	SetLanguage(ctx context.Context, lang domain.Language) error
	SetDiagnosis(ctx context.Context, diagnosed bool) error
	RemindersEnabled() bool
}

// Session is the full application-state surface.
type Session interface {
	AuthUseCase
	JournalUseCase
	InsightUseCase
	ProfileUseCase
}

var _ Session = (*session.Service)(nil)
