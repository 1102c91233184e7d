package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/alexanderramin/ulcerwise/internal/session"
	"github.com/spf13/cobra"
)

// ScoreInput is the batch of titles one `score` invocation logs.
type ScoreInput struct {
	Meals       []string
	Symptoms    []string
	Medications []string
	// Entries are KIND:TITLE pairs, e.g. "med:Antacid" or "stress:Deadline".
	Entries []string
}

type scoreItem struct {
	kind  domain.EntryKind
	title string
}

func (in ScoreInput) items() ([]scoreItem, error) {
	var out []scoreItem
	add := func(kind domain.EntryKind, titles []string) {
		for _, t := range titles {
			out = append(out, scoreItem{kind: kind, title: t})
		}
	}
	add(domain.EntryMeal, in.Meals)
	add(domain.EntrySymptom, in.Symptoms)
	add(domain.EntryMedication, in.Medications)
	for _, raw := range in.Entries {
		it, err := parseScoreEntry(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

func parseScoreEntry(raw string) (scoreItem, error) {
	kindStr, title, ok := strings.Cut(raw, ":")
	if !ok {
		return scoreItem{}, fmt.Errorf("invalid --entry %q: want KIND:TITLE", raw)
	}
	kind, err := domain.ParseEntryKind(strings.ToLower(strings.TrimSpace(kindStr)))
	if err != nil {
		return scoreItem{}, fmt.Errorf("invalid --entry %q: %w", raw, err)
	}
	return scoreItem{kind: kind, title: title}, nil
}

func newScoreCmd(app *App) *cobra.Command {
	var in ScoreInput

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a day's meals, symptoms and medication without saving them",
		Example: `  ulcerwise score --meal "Waakye" --meal "Shito" --symptom "Bloating"
  ulcerwise score --med "Antacid"
  ulcerwise score --entry "stress:Exam week" --entry "food:Oatmeal"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := execScore(cmd.Context(), app, in)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&in.Meals, "meal", nil, "Meal to log (repeatable)")
	cmd.Flags().StringArrayVar(&in.Symptoms, "symptom", nil, "Symptom to log (repeatable)")
	cmd.Flags().StringArrayVar(&in.Medications, "med", nil, "Medication to log (repeatable)")
	cmd.Flags().StringArrayVar(&in.Entries, "entry", nil, "KIND:TITLE entry of any kind (repeatable)")
	return cmd
}

// execScore logs the input into a throwaway session and renders the
// resulting score, entries and weekly chart.
func execScore(ctx context.Context, a *App, in ScoreInput) (string, error) {
	if a.NewScratch == nil {
		return "", fmt.Errorf("scratch sessions are not configured")
	}
	items, err := in.items()
	if err != nil {
		return "", err
	}

	scratch := a.NewScratch()
	if _, err := scratch.Login(ctx, "score@ulcerwise.local", "scratch"); err != nil {
		return "", fmt.Errorf("open scratch session: %w", err)
	}
	defer scratch.Logout(ctx)

	for _, it := range items {
		if _, err := scratch.AddEntry(ctx, it.kind, it.title); err != nil {
			return "", fmt.Errorf("log %s %q: %w", it.kind, it.title, err)
		}
	}

	snap, err := scratch.Dashboard(a.Clock.Now())
	if err != nil {
		return "", err
	}
	entries, err := scratch.Entries()
	if err != nil {
		return "", err
	}
	return formatScore(snap, entries), nil
}

func formatScore(snap session.Snapshot, entries []domain.LogEntry) string {
	var b strings.Builder
	b.WriteString(formatter.Header("Today's risk"))
	b.WriteString("\n")
	b.WriteString(formatter.RenderGauge(snap.Score.Score, snap.Score.Label, 30))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(formatter.Dim("Nothing logged. Baseline risk only."))
		b.WriteString("\n")
	}
	for _, e := range entries {
		b.WriteString(formatter.EntryLine(e, snap.Now))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formatter.Header("Weekly exposure"))
	b.WriteString("\n")
	b.WriteString(formatter.RenderWeeklyChart(snap.Weekly, 5))
	b.WriteString("\n")
	return b.String()
}
