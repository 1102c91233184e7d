package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// profileView shows the signed-in profile and its toggles.
type profileView struct {
	state *SharedState
}

func newProfileView(state *SharedState) *profileView {
	return &profileView{state: state}
}

func (v *profileView) ID() ViewID    { return ViewProfile }
func (v *profileView) Title() string { return "Profile" }

func (v *profileView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reminders")),
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "language")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "diagnosis")),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "log out")),
	}
}

func (v *profileView) Init() tea.Cmd { return nil }

func (v *profileView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	ctx := context.Background()
	app := v.state.App

	var (
		out string
		err error
	)
	switch k.String() {
	case "r":
		out, err = execToggleReminders(ctx, app)
	case "l":
		out, err = execCycleLanguage(ctx, app)
	case "d":
		out, err = execToggleDiagnosis(ctx, app)
	case "o":
		out = execLogout(ctx, app)
		return v, tea.Batch(outputCmd(out), func() tea.Msg { return loggedOutMsg{} })
	default:
		return v, nil
	}
	if err != nil {
		return v, outputCmd(errorText(err))
	}
	return v, outputCmd(out)
}

func onOff(b bool) string {
	if b {
		return formatter.StyleGreen.Render("On")
	}
	return formatter.Dim("Off")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func (v *profileView) View() string {
	p, ok := v.state.App.Session.Profile()
	if !ok {
		return "\n  " + formatter.Dim("Not signed in.") + "\n"
	}

	rows := [][]string{
		{"Name", p.DisplayName()},
		{"Contact", p.Contact},
		{"Language", p.LanguageLabel()},
		{"Daily reminders", onOff(p.ReceivesReminders)},
	}
	if feed := v.state.App.Reminders; feed != nil && p.ReceivesReminders {
		if next := feed.Next(); !next.IsZero() {
			rows = append(rows, []string{"Next reminder", next.Format("Mon 2 Jan 15:04")})
		}
	}
	rows = append(rows, []string{"Diagnosed ulcer", yesNo(p.HasDiagnosis)})

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", formatter.Header("Profile"))
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s %s\n", formatter.Dim(fmt.Sprintf("%-18s", r[0])), r[1])
	}
	return b.String()
}
