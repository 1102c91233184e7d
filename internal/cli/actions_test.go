package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/alexanderramin/ulcerwise/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecAddEntry(t *testing.T) {
	a, _ := signedInApp(t)
	e, out, err := execAddEntry(context.Background(), a, domain.EntryMedication, "  Antacid ")
	require.NoError(t, err)
	assert.Equal(t, "Antacid", e.Title)
	assert.Contains(t, out, "Antacid")
	assert.Contains(t, out, "-15")
}

func TestExecAddEntry_SignedOut(t *testing.T) {
	a, _ := testApp(t)
	_, _, err := execAddEntry(context.Background(), a, domain.EntryMeal, "Oatmeal")
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)
}

func TestExecDeleteEntry_MissingIsFine(t *testing.T) {
	a, _ := signedInApp(t)
	out, err := execDeleteEntry(context.Background(), a, domain.LogEntry{ID: "nope", Title: "Ghost"})
	require.NoError(t, err)
	assert.Contains(t, out, "Ghost")
}

func TestNextLanguage(t *testing.T) {
	assert.Equal(t, domain.LanguageGa, nextLanguage(domain.LanguageEnglish))
	assert.Equal(t, domain.LanguageTwi, nextLanguage(domain.LanguageGa))
	assert.Equal(t, domain.LanguageEnglish, nextLanguage(domain.LanguageTwi))
	assert.Equal(t, domain.LanguageEnglish, nextLanguage("fr"))
}

func TestExecCycleLanguage_SignedOut(t *testing.T) {
	a, _ := testApp(t)
	_, err := execCycleLanguage(context.Background(), a)
	assert.Error(t, err)
}

func TestExecLogout(t *testing.T) {
	a, _ := signedInApp(t)
	out := execLogout(context.Background(), a)
	assert.Contains(t, out, "Signed out")
	assert.False(t, a.Session.Authenticated())
}
