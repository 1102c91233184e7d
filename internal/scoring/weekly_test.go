package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekly_EmptyIsAllZero(t *testing.T) {
	buckets := Weekly(nil, testNow)
	require.Len(t, buckets, 7)
	for _, b := range buckets {
		assert.Equal(t, 0, b.Value)
		assert.False(t, b.High)
	}
}

func TestWeekly_LabelsEndWithToday(t *testing.T) {
	buckets := Weekly(nil, testNow)
	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
	}
	// testNow is a Saturday.
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, labels)
	assert.Equal(t, StartOfDay(testNow), Today(buckets).Date)
	assert.Equal(t, StartOfDay(testNow).AddDate(0, 0, -6), buckets[0].Date)
}

func TestWeekly_ExcludesNegativeImpacts(t *testing.T) {
	entries := []domain.LogEntry{
		entry(domain.EntryMedication, -0.15, testNow),
		entry(domain.EntryMedication, -0.15, testNow.AddDate(0, 0, -2)),
	}
	for _, b := range Weekly(entries, testNow) {
		assert.Equal(t, 0, b.Value, b.Label)
	}
	// Only today's medication counts: 20 - 15.
	assert.Equal(t, 5, Daily(entries, testNow).Score)
}

func TestWeekly_SumsPositiveImpactsPerDay(t *testing.T) {
	entries := []domain.LogEntry{
		entry(domain.EntryMeal, 0.30, testNow),
		entry(domain.EntryMedication, -0.15, testNow),
		entry(domain.EntrySymptom, 0.20, testNow.AddDate(0, 0, -1)),
		entry(domain.EntryMeal, 0.15, testNow.AddDate(0, 0, -1)),
		entry(domain.EntryMeal, 0.30, testNow.AddDate(0, 0, -7)), // outside the window
	}
	buckets := Weekly(entries, testNow)

	assert.Equal(t, 30, buckets[6].Value)
	assert.False(t, buckets[6].High)
	assert.Equal(t, 35, buckets[5].Value)
	for i := 0; i < 5; i++ {
		assert.Equal(t, 0, buckets[i].Value)
	}
}

func TestWeekly_HighFlagIsStrict(t *testing.T) {
	at := testNow
	forty := []domain.LogEntry{entry(domain.EntrySymptom, 0.20, at), entry(domain.EntrySymptom, 0.20, at)}
	assert.False(t, Today(Weekly(forty, testNow)).High)

	fortyFive := append(forty, entry(domain.EntryMeal, 0.05, at))
	b := Today(Weekly(fortyFive, testNow))
	assert.Equal(t, 45, b.Value)
	assert.True(t, b.High)
}

func TestWeekly_DayWindowIsInclusiveToLastMillisecond(t *testing.T) {
	yesterday := StartOfDay(testNow).AddDate(0, 0, -1)
	lastMs := StartOfDay(testNow).Add(-time.Millisecond)

	buckets := Weekly([]domain.LogEntry{
		entry(domain.EntrySymptom, 0.20, yesterday),
		entry(domain.EntrySymptom, 0.20, lastMs),
	}, testNow)
	assert.Equal(t, 40, buckets[5].Value)
	assert.Equal(t, 0, buckets[6].Value)
}

func TestWeekly_FutureEntriesNotCharted(t *testing.T) {
	tomorrow := StartOfDay(testNow).AddDate(0, 0, 1).Add(time.Hour)
	buckets := Weekly([]domain.LogEntry{entry(domain.EntrySymptom, 0.20, tomorrow)}, testNow)
	for _, b := range buckets {
		assert.Equal(t, 0, b.Value)
	}
}

func TestGauge(t *testing.T) {
	circ := math.Pi * 80

	half := Gauge(50)
	assert.InDelta(t, circ, half.Circumference, 1e-9)
	assert.InDelta(t, circ/2, half.Progress, 1e-9)
	assert.InDelta(t, 0.5, half.Fraction, 1e-9)

	assert.Equal(t, 0.0, Gauge(-10).Progress)
	assert.InDelta(t, circ, Gauge(250).Progress, 1e-9)
}

func TestFixedClock(t *testing.T) {
	c := NewFixedClock(testNow)
	assert.Equal(t, testNow, c.Now())
	c.Advance(time.Hour)
	assert.Equal(t, testNow.Add(time.Hour), c.Now())
	c.Set(testNow)
	assert.Equal(t, testNow, c.Now())
}

func TestSystemClock_UsesLocation(t *testing.T) {
	now := SystemClock{Location: lagos}.Now()
	assert.Equal(t, lagos, now.Location())
}
