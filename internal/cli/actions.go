package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/alexanderramin/ulcerwise/internal/auth"
	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	"github.com/alexanderramin/ulcerwise/internal/domain"
)

// The exec helpers run one session command from the TUI and format the
// one-line message the status area flashes afterwards.

func execRequestSignupCode(ctx context.Context, app *App, name, contact string) (auth.Challenge, error) {
	return app.Session.RequestSignupCode(ctx, name, contact)
}

func execVerifySignupCode(ctx context.Context, app *App, code string) (domain.UserProfile, error) {
	return app.Session.VerifySignupCode(ctx, code)
}

func execLogin(ctx context.Context, app *App, contact, password string) (domain.UserProfile, error) {
	return app.Session.Login(ctx, contact, password)
}

func execLogout(ctx context.Context, app *App) string {
	app.Session.Logout(ctx)
	return formatter.Dim("Signed out. Your journal was cleared.")
}

// execAddEntry logs a new entry and returns it with a confirmation line.
func execAddEntry(ctx context.Context, app *App, kind domain.EntryKind, title string) (domain.LogEntry, string, error) {
	e, err := app.Session.AddEntry(ctx, kind, title)
	if err != nil {
		return domain.LogEntry{}, "", err
	}
	return e, successText(fmt.Sprintf("Logged %s %s",
		formatter.Bold(e.Title),
		formatter.ImpactBadge(e.RiskPoints()))), nil
}

func execDeleteEntry(ctx context.Context, app *App, e domain.LogEntry) (string, error) {
	if err := app.Session.DeleteEntry(ctx, e.ID); err != nil {
		return "", err
	}
	return successText("Removed " + formatter.Bold(e.Title)), nil
}

func execToggleReminders(ctx context.Context, app *App) (string, error) {
	on, err := app.Session.ToggleReminders(ctx)
	if err != nil {
		return "", err
	}
	if on {
		return successText("Daily reminders on"), nil
	}
	return successText("Daily reminders off"), nil
}

// execCycleLanguage moves the profile to the next language in code order.
func execCycleLanguage(ctx context.Context, app *App) (string, error) {
	profile, ok := app.Session.Profile()
	if !ok {
		return "", fmt.Errorf("not signed in")
	}
	next := nextLanguage(profile.Language)
	if err := app.Session.SetLanguage(ctx, next); err != nil {
		return "", err
	}
	return successText("Language: " + domain.ValidLanguages[next]), nil
}

func nextLanguage(current domain.Language) domain.Language {
	codes := make([]string, 0, len(domain.ValidLanguages))
	for l := range domain.ValidLanguages {
		codes = append(codes, string(l))
	}
	sort.Strings(codes)
	for i, c := range codes {
		if domain.Language(c) == current {
			return domain.Language(codes[(i+1)%len(codes)])
		}
	}
	return domain.Language(codes[0])
}

func execToggleDiagnosis(ctx context.Context, app *App) (string, error) {
	profile, ok := app.Session.Profile()
	if !ok {
		return "", fmt.Errorf("not signed in")
	}
	diagnosed := !profile.HasDiagnosis
	if err := app.Session.SetDiagnosis(ctx, diagnosed); err != nil {
		return "", err
	}
	if diagnosed {
		return successText("Marked as diagnosed"), nil
	}
	return successText("Marked as not diagnosed"), nil
}
