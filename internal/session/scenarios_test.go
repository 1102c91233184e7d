package session

import (
	"context"
	"testing"

	"github.com/alexanderramin/ulcerwise/internal/advisory"
	"github.com/alexanderramin/ulcerwise/internal/catalog"
	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/alexanderramin/ulcerwise/internal/scoring"
	"github.com/alexanderramin/ulcerwise/internal/store"
	"github.com/alexanderramin/ulcerwise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func todayBucket(t *testing.T, svc *Service) scoring.WeeklyBucket {
	t.Helper()
	buckets, err := svc.Weekly(testutil.Now)
	require.NoError(t, err)
	require.Len(t, buckets, scoring.WeekDays)
	return scoring.Today(buckets)
}

func TestScenario_EmptyStore(t *testing.T) {
	svc, clock, _ := signedIn(t)

	snap, err := svc.Dashboard(clock.Now())
	require.NoError(t, err)

	assert.Equal(t, 20, snap.Score.Score)
	assert.Equal(t, domain.LabelLow, snap.Score.Label)
	for _, b := range snap.Weekly {
		assert.Zero(t, b.Value, b.Label)
	}
}

func TestScenario_HighRiskMeal(t *testing.T) {
	svc, clock, _ := signedIn(t)

	_, err := svc.AddEntry(context.Background(), domain.EntryMeal, "Waakye + Shito")
	require.NoError(t, err)

	snap, err := svc.Dashboard(clock.Now())
	require.NoError(t, err)
	assert.Equal(t, 50, snap.Score.Score)
	assert.Equal(t, domain.LabelMedium, snap.Score.Label)
	assert.Equal(t, 30, todayBucket(t, svc).Value)
}

func TestScenario_MedicationOnly(t *testing.T) {
	svc, clock, _ := signedIn(t)

	_, err := svc.AddEntry(context.Background(), domain.EntryMedication, "Antacid")
	require.NoError(t, err)

	snap, err := svc.Dashboard(clock.Now())
	require.NoError(t, err)
	assert.Equal(t, 5, snap.Score.Score)
	assert.Equal(t, domain.LabelLow, snap.Score.Label)
	assert.Equal(t, 0, todayBucket(t, svc).Value)
}

func TestScenario_AddThenDeleteSymptom(t *testing.T) {
	ctx := context.Background()
	svc, clock, _ := signedIn(t)

	e, err := svc.AddEntry(ctx, domain.EntrySymptom, "Heartburn")
	require.NoError(t, err)
	snap, err := svc.Dashboard(clock.Now())
	require.NoError(t, err)
	require.Equal(t, 40, snap.Score.Score)

	require.NoError(t, svc.DeleteEntry(ctx, e.ID))

	entries, err := svc.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
	snap, err = svc.Dashboard(clock.Now())
	require.NoError(t, err)
	assert.Equal(t, 20, snap.Score.Score)
}

func TestScenario_UnknownMeal(t *testing.T) {
	svc, clock, _ := signedIn(t)

	e, err := svc.AddEntry(context.Background(), domain.EntryMeal, "Mystery Stew")
	require.NoError(t, err)

	assert.Equal(t, 0.10, e.RiskImpact)
	snap, err := svc.Dashboard(clock.Now())
	require.NoError(t, err)
	assert.Equal(t, 30, snap.Score.Score)
}

func TestScenario_DeleteMissingIDIsNoop(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := signedIn(t)
	_, err := svc.AddEntry(ctx, domain.EntryMeal, "Oatmeal")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(ctx, "does-not-exist"))

	entries, err := svc.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestScenario_MedicationOnlyWeekIsFlat(t *testing.T) {
	ctx := context.Background()
	svc, clock, _ := signedIn(t)
	for d := 0; d < 7; d++ {
		_, err := svc.LogAt(ctx, domain.EntryMedication, "Omeprazole", clock.Now().AddDate(0, 0, -d))
		require.NoError(t, err)
	}

	buckets, err := svc.Weekly(clock.Now())
	require.NoError(t, err)
	for _, b := range buckets {
		assert.Zero(t, b.Value)
		assert.False(t, b.High)
	}
}

type countingGenerator struct{ calls int }

func (c *countingGenerator) Generate(context.Context, advisory.GenerateRequest) (*advisory.GenerateResponse, error) {
	c.calls++
	return &advisory.GenerateResponse{Text: "unexpected"}, nil
}

func TestScenario_AdvisoryNotConfiguredMakesNoCall(t *testing.T) {
	gen := &countingGenerator{}
	advisor := advisory.NewAdvisor(advisory.DefaultConfig(), advisory.WithGenerator(gen))
	svc := New(store.NewMemoryLogStore(), catalog.Default(), advisor, testutil.NewClock())

	for _, food := range []string{"Waakye + Shito", "", "Mystery Stew"} {
		res := svc.Analyze(context.Background(), food)
		assert.Equal(t, advisory.OutcomeNotConfigured, res.Outcome)
		assert.Equal(t, "API Key not configured. Unable to analyze.", res.Text)
	}
	assert.Zero(t, gen.calls)
}
