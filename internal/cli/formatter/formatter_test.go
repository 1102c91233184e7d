package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/alexanderramin/ulcerwise/internal/scoring"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGauge(t *testing.T) {
	tests := []struct {
		name   string
		score  int
		label  domain.RiskLabel
		filled int
	}{
		{"empty", 0, domain.LabelLow, 0},
		{"baseline", 20, domain.LabelLow, 2},
		{"half", 50, domain.LabelMedium, 5},
		{"full", 100, domain.LabelHigh, 10},
		{"clamped above", 140, domain.LabelHigh, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderGauge(tt.score, tt.label, 10)
			assert.Equal(t, tt.filled, strings.Count(got, filledBlock))
			assert.Equal(t, 10-tt.filled, strings.Count(got, emptyBlock))
			assert.Contains(t, got, string(tt.label))
		})
	}
}

func TestRenderGauge_TinyWidth(t *testing.T) {
	got := RenderGauge(50, domain.LabelMedium, 0)
	assert.Equal(t, 2, strings.Count(got, filledBlock)+strings.Count(got, emptyBlock))
}

func TestRenderWeeklyChart(t *testing.T) {
	now := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)
	entries := []domain.LogEntry{
		{Kind: domain.EntryMeal, RiskImpact: 0.30, Timestamp: now},
		{Kind: domain.EntrySymptom, RiskImpact: 0.20, Timestamp: now},
	}
	buckets := scoring.Weekly(entries, now)

	got := RenderWeeklyChart(buckets, 5)

	lines := strings.Split(got, "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[5], "Sat")
	assert.Contains(t, lines[5], "Sun")
	assert.Contains(t, lines[6], "50")
	assert.Contains(t, lines[0], filledBlock, "a 50 bucket reaches the top row")
}

func TestRenderWeeklyChart_Empty(t *testing.T) {
	assert.Equal(t, "no data", RenderWeeklyChart(nil, 4))
}

func TestRenderWeeklyChart_AllZero(t *testing.T) {
	now := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)
	got := RenderWeeklyChart(scoring.Weekly(nil, now), 4)
	assert.NotContains(t, got, filledBlock)
}

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	got := RenderTable(
		[]string{"FOOD", "TIER"},
		[][]string{
			{"Oatmeal", TierBadge(domain.TierLow)},
			{"Waakye + Shito", TierBadge(domain.TierHigh)},
		},
	)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 4)
	col := strings.Index(lines[0], "TIER")
	assert.Equal(t, col, strings.Index(lines[2], "LOW"))
	assert.Equal(t, col, strings.Index(lines[3], "HIGH"))
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Date(2026, time.October, 17, 15, 30, 0, 0, time.UTC)
	tests := []struct {
		at   time.Time
		want string
	}{
		{now.Add(-10 * time.Second), "Just now"},
		{now.Add(-5 * time.Minute), "5m ago"},
		{now.Add(-2 * time.Hour), "2h ago"},
		{now.Add(-30 * time.Hour), "Yesterday"},
		{now.AddDate(0, 0, -5), "Oct 12, 2026"},
		{now.Add(time.Hour), "Today 16:30"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HumanTimestamp(tt.at, now))
	}
}

func TestEntryLine(t *testing.T) {
	now := time.Date(2026, time.October, 17, 15, 30, 0, 0, time.UTC)
	e := domain.LogEntry{Kind: domain.EntryMedication, Title: "Antacid", RiskImpact: -0.15, Timestamp: now.Add(-2 * time.Hour)}

	got := EntryLine(e, now)

	assert.Contains(t, got, "Antacid")
	assert.Contains(t, got, "-15")
	assert.Contains(t, got, "2h ago")
	assert.Contains(t, got, "▼")
	assert.NotContains(t, got, "▲")

	e.RiskImpact = 0.30
	assert.Contains(t, EntryLine(e, now), "▲")

	e.RiskImpact = 0
	got = EntryLine(e, now)
	assert.NotContains(t, got, "▲")
	assert.NotContains(t, got, "▼")
}

func TestImpactBadge(t *testing.T) {
	assert.Equal(t, "+30", ImpactBadge(30))
	assert.Equal(t, "-15", ImpactBadge(-15))
	assert.Equal(t, "±0", ImpactBadge(0))
}

func TestProviderLine(t *testing.T) {
	got := ProviderLine(domain.CareProvider{Name: "Community Meds", Location: "Dansoman"})
	assert.Contains(t, got, "Closed")
	assert.NotContains(t, got, "Delivery")

	got = ProviderLine(domain.CareProvider{Name: "AccraCare Pharmacy", IsOpen: true, OffersDelivery: true, Phone: "+233"})
	assert.Contains(t, got, "Open")
	assert.Contains(t, got, "Delivery")
	assert.Contains(t, got, "+233")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	got := Truncate("Beans and Plantain (Red Red)", 10)
	assert.Equal(t, 10, lipgloss.Width(got))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestHeader(t *testing.T) {
	got := Header("Recent activity")
	assert.Contains(t, got, "RECENT ACTIVITY")
	assert.Contains(t, got, strings.Repeat("─", len("RECENT ACTIVITY")))
}

func TestRenderMarkdown_KeepsText(t *testing.T) {
	got := RenderMarkdown("**High risk.** Try boiled yam instead.", 60)
	assert.Contains(t, got, "High risk.")
	assert.Contains(t, got, "boiled yam")
}
