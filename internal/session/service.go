// Package session owns the application state of one running UlcerWise
// process: the signed-in profile and its log. Every state change goes
// through a named command on Service.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/ulcerwise/internal/advisory"
	"github.com/alexanderramin/ulcerwise/internal/auth"
	"github.com/alexanderramin/ulcerwise/internal/catalog"
	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/alexanderramin/ulcerwise/internal/scoring"
	"github.com/alexanderramin/ulcerwise/internal/store"
	"github.com/google/uuid"
)

var (
	// ErrNotAuthenticated is returned by commands that need a profile.
	ErrNotAuthenticated = errors.New("not signed in")

	// ErrNoPendingSignup is returned by VerifySignupCode without a prior
	// RequestSignupCode.
	ErrNoPendingSignup = errors.New("no signup in progress")
)

// Service is the application state plus the commands that change it.
type Service struct {
	logs     store.LogRepo
	catalog  *catalog.Catalog
	advisor  advisory.Analyzer
	clock    scoring.Clock
	auth     auth.Mock
	observer UseCaseObserver

	mu      sync.RWMutex
	profile *domain.UserProfile
	pending *auth.Challenge
}

// New builds a signed-out Service. A nil catalog means the embedded one; a
// nil advisor answers every request as not configured.
func New(
	logs store.LogRepo,
	cat *catalog.Catalog,
	advisor advisory.Analyzer,
	clock scoring.Clock,
	observers ...UseCaseObserver,
) *Service {
	if clock == nil {
		clock = scoring.SystemClock{}
	}
	if cat == nil {
		cat = catalog.Default()
	}
	if advisor == nil {
		advisor = advisory.NewAdvisor(advisory.Config{})
	}
	return &Service{
		logs:     logs,
		catalog:  cat,
		advisor:  advisor,
		clock:    clock,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Catalog exposes the reference data the service scores against.
func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

// Clock exposes the service's time source.
func (s *Service) Clock() scoring.Clock { return s.clock }

func (s *Service) observe(ctx context.Context, name string, started time.Time, fields map[string]any, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: started,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

// RequestSignupCode starts a signup and remembers the challenge.
func (s *Service) RequestSignupCode(ctx context.Context, name, contact string) (ch auth.Challenge, err error) {
	started := time.Now()
	defer func() { s.observe(ctx, "request-signup-code", started, nil, err) }()

	ch, err = s.auth.RequestCode(name, contact)
	if err != nil {
		return auth.Challenge{}, err
	}
	s.mu.Lock()
	s.pending = &ch
	s.mu.Unlock()
	return ch, nil
}

// VerifySignupCode redeems the pending challenge and signs the user in.
func (s *Service) VerifySignupCode(ctx context.Context, code string) (profile domain.UserProfile, err error) {
	started := time.Now()
	defer func() { s.observe(ctx, "verify-signup-code", started, nil, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return domain.UserProfile{}, ErrNoPendingSignup
	}
	id, err := s.auth.VerifyCode(*s.pending, code)
	if err != nil {
		return domain.UserProfile{}, err
	}
	s.pending = nil
	s.profile = domain.NewUserProfile(uuid.New().String(), id.Name, id.Contact)
	return *s.profile, nil
}

// Login signs in with any non-blank password.
func (s *Service) Login(ctx context.Context, contact, password string) (profile domain.UserProfile, err error) {
	started := time.Now()
	defer func() { s.observe(ctx, "login", started, nil, err) }()

	id, err := s.auth.Login(contact, password)
	if err != nil {
		return domain.UserProfile{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
	s.profile = domain.NewUserProfile(uuid.New().String(), id.Name, id.Contact)
	return *s.profile, nil
}

// Logout discards the profile and every logged entry.
func (s *Service) Logout(ctx context.Context) {
	started := time.Now()
	s.mu.Lock()
	s.profile = nil
	s.pending = nil
	s.mu.Unlock()
	s.logs.Clear()
	s.observe(ctx, "logout", started, nil, nil)
}

// Authenticated reports whether a profile is active.
func (s *Service) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile != nil
}

// Profile returns a copy of the active profile.
func (s *Service) Profile() (domain.UserProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return domain.UserProfile{}, false
	}
	return *s.profile, true
}

// RemindersEnabled reports whether the active profile wants reminders.
func (s *Service) RemindersEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile != nil && s.profile.ReceivesReminders
}

// ToggleReminders flips the reminder preference and returns the new value.
func (s *Service) ToggleReminders(ctx context.Context) (enabled bool, err error) {
	started := time.Now()
	defer func() {
		s.observe(ctx, "toggle-reminders", started, map[string]any{"enabled": enabled}, err)
	}()

	err = s.updateProfile(func(p *domain.UserProfile) error {
		p.ReceivesReminders = !p.ReceivesReminders
		enabled = p.ReceivesReminders
		return nil
	})
	return enabled, err
}

// SetLanguage changes the display language preference.
func (s *Service) SetLanguage(ctx context.Context, lang domain.Language) (err error) {
	started := time.Now()
	defer func() {
		s.observe(ctx, "set-language", started, map[string]any{"language": string(lang)}, err)
	}()

	lang = domain.Language(strings.ToLower(strings.TrimSpace(string(lang))))
	if _, ok := domain.ValidLanguages[lang]; !ok {
		return domain.ErrInvalidLanguage
	}
	return s.updateProfile(func(p *domain.UserProfile) error {
		p.Language = lang
		return nil
	})
}

// SetDiagnosis records whether the user has a confirmed diagnosis.
func (s *Service) SetDiagnosis(ctx context.Context, diagnosed bool) (err error) {
	started := time.Now()
	defer func() { s.observe(ctx, "set-diagnosis", started, nil, err) }()

	return s.updateProfile(func(p *domain.UserProfile) error {
		p.HasDiagnosis = diagnosed
		return nil
	})
}

func (s *Service) updateProfile(fn func(p *domain.UserProfile) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return ErrNotAuthenticated
	}
	return fn(s.profile)
}
