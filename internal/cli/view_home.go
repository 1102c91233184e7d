package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	"github.com/alexanderramin/ulcerwise/internal/session"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// homeView shows the daily gauge, the tip of the day and recent activity.
type homeView struct {
	state *SharedState
	snap  session.Snapshot
	err   error
}

func newHomeView(state *SharedState) *homeView {
	v := &homeView{state: state}
	v.reload()
	return v
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "Home" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new entry")),
		key.NewBinding(key.WithKeys("1-4"), key.WithHelp("1-4", "tabs")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) reload() {
	app := v.state.App
	v.snap, v.err = app.Session.Dashboard(app.Clock.Now())
	if v.err == nil && app.Metrics != nil {
		app.Metrics.SetDailyScore(v.snap.Score.Score)
	}
}

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(refreshViewMsg); ok {
		v.reload()
	}
	return v, nil
}

func (v *homeView) View() string {
	if v.err != nil {
		return "\n  " + errorText(v.err) + "\n"
	}
	s := v.snap

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s %s\n\n", formatter.Dim("Akwaaba,"), formatter.Bold(s.UserName))
	fmt.Fprintf(&b, "  %s\n", formatter.Header("Today's ulcer risk"))
	fmt.Fprintf(&b, "  %s\n", formatter.RenderGauge(s.Score.Score, s.Score.Label, 30))
	if s.Score.EntryCount == 0 {
		fmt.Fprintf(&b, "  %s\n", formatter.Dim("Nothing logged today. Press n to add an entry."))
	}
	b.WriteString("\n")

	b.WriteString(indent(formatter.RenderBox("Daily insight", s.Insight), "  "))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "  %s\n", formatter.Header("Recent activity"))
	if len(s.Recent) == 0 {
		fmt.Fprintf(&b, "  %s\n", formatter.Dim("No entries yet."))
	}
	for _, e := range s.Recent {
		fmt.Fprintf(&b, "  %s\n", formatter.EntryLine(e, s.Now))
	}
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
