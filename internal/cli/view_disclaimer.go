package cli

import (
	"strings"

	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const disclaimerText = `UlcerWise helps you notice patterns between what you eat, how you feel
and the medication you take. It is not a diagnosis and it does not replace
advice from a doctor or pharmacist.

If you have severe pain, vomit blood or pass black stools, seek care now.`

// disclaimerView is the first screen; enter accepts and moves to sign-in.
type disclaimerView struct {
	state *SharedState
}

func newDisclaimerView(state *SharedState) *disclaimerView {
	return &disclaimerView{state: state}
}

func (v *disclaimerView) ID() ViewID    { return ViewDisclaimer }
func (v *disclaimerView) Title() string { return "Welcome" }

func (v *disclaimerView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "I understand")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *disclaimerView) Init() tea.Cmd { return nil }

func (v *disclaimerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
		return v, replaceView(newAuthView(v.state))
	}
	return v, nil
}

func (v *disclaimerView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.RenderBox("Before you start", disclaimerText))
	b.WriteString("\n")
	return b.String()
}
