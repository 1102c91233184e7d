package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/alexanderramin/ulcerwise/internal/scoring"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// journalView shows the weekly exposure chart over the full history.
// The cursor selects an entry for deletion.
type journalView struct {
	state   *SharedState
	weekly  []scoring.WeeklyBucket
	entries []domain.LogEntry
	cursor  int
	err     error
}

func newJournalView(state *SharedState) *journalView {
	v := &journalView{state: state}
	v.reload()
	return v
}

func (v *journalView) ID() ViewID    { return ViewJournal }
func (v *journalView) Title() string { return "Journal" }

func (v *journalView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "move")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new entry")),
	}
}

func (v *journalView) Init() tea.Cmd { return nil }

func (v *journalView) reload() {
	app := v.state.App
	v.weekly, v.err = app.Session.Weekly(app.Clock.Now())
	if v.err != nil {
		return
	}
	v.entries, v.err = app.Session.Entries()
	v.cursor = min(v.cursor, max(len(v.entries)-1, 0))
}

func (v *journalView) selected() (domain.LogEntry, bool) {
	if v.cursor < 0 || v.cursor >= len(v.entries) {
		return domain.LogEntry{}, false
	}
	return v.entries[v.cursor], true
}

func (v *journalView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if v.cursor < len(v.entries)-1 {
				v.cursor++
			}
		case "k", "up":
			if v.cursor > 0 {
				v.cursor--
			}
		case "d":
			e, ok := v.selected()
			if !ok {
				return v, nil
			}
			out, err := execDeleteEntry(context.Background(), v.state.App, e)
			if err != nil {
				return v, outputCmd(errorText(err))
			}
			return v, tea.Batch(outputCmd(out), refreshCmd())
		}
	}
	return v, nil
}

func (v *journalView) View() string {
	if v.err != nil {
		return "\n  " + errorText(v.err) + "\n"
	}
	now := v.state.App.Clock.Now()

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n", formatter.Header("Weekly exposure"))
	b.WriteString(indent(formatter.RenderWeeklyChart(v.weekly, 5), "  "))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s %s\n", formatter.Header("History"), formatter.Dim(fmt.Sprintf("(%d)", len(v.entries))))
	if len(v.entries) == 0 {
		fmt.Fprintf(&b, "  %s\n", formatter.Dim("Your journal is empty."))
		return b.String()
	}

	visible := max(v.state.ContentHeight()-12, 3)
	start := 0
	if v.cursor >= visible {
		start = v.cursor - visible + 1
	}
	end := min(start+visible, len(v.entries))
	for i := start; i < end; i++ {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		fmt.Fprintf(&b, "%s%s\n", marker, formatter.EntryLine(v.entries[i], now))
	}
	return b.String()
}
