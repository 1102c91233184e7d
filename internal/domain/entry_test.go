package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestNewLogEntry_TrimsTitle(t *testing.T) {
	e, err := NewLogEntry(EntryMeal, "  Oatmeal  ", testNow)
	require.NoError(t, err)
	assert.Equal(t, "Oatmeal", e.Title)
	assert.Equal(t, EntryMeal, e.Kind)
	assert.Equal(t, testNow, e.Timestamp)
	assert.Empty(t, e.ID)
}

func TestNewLogEntry_RejectsBlankTitle(t *testing.T) {
	_, err := NewLogEntry(EntrySymptom, "   ", testNow)
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestNewLogEntry_RejectsUnknownKind(t *testing.T) {
	_, err := NewLogEntry(EntryKind("sleep"), "Nap", testNow)
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestParseEntryKind(t *testing.T) {
	cases := map[string]EntryKind{
		"meal":       EntryMeal,
		"food":       EntryMeal,
		"symptom":    EntrySymptom,
		"med":        EntryMedication,
		"medication": EntryMedication,
		"stress":     EntryStress,
	}
	for in, want := range cases {
		got, err := ParseEntryKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseEntryKind("exercise")
	assert.ErrorIs(t, err, ErrInvalidKind)
}

func TestRiskPoints(t *testing.T) {
	assert.Equal(t, 30, LogEntry{RiskImpact: 0.30}.RiskPoints())
	assert.Equal(t, -15, LogEntry{RiskImpact: -0.15}.RiskPoints())
	assert.Equal(t, 0, LogEntry{}.RiskPoints())
}

func TestRiskTier_Valid(t *testing.T) {
	assert.True(t, TierLow.Valid())
	assert.True(t, TierMedium.Valid())
	assert.True(t, TierHigh.Valid())
	assert.False(t, RiskTier("extreme").Valid())
}

func TestUserProfile_Defaults(t *testing.T) {
	p := NewUserProfile("id-1", " Ama Mensah ", "ama@example.com")
	assert.Equal(t, "Ama Mensah", p.Name)
	assert.Equal(t, LanguageEnglish, p.Language)
	assert.True(t, p.ReceivesReminders)
	assert.False(t, p.HasDiagnosis)
	assert.Equal(t, "English (GH)", p.LanguageLabel())
}

func TestUserProfile_DisplayNameFallsBackToContact(t *testing.T) {
	p := NewUserProfile("id-2", "", "kofi@example.com")
	assert.Equal(t, "kofi", p.DisplayName())

	p = NewUserProfile("id-3", "", "+233 55 000 0000")
	assert.Equal(t, "+233 55 000 0000", p.DisplayName())
}
