package cli

import (
	"strings"

	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// authView offers sign up or log in. Both open a wizard; success arrives
// as authSucceededMsg and is handled by the appModel.
type authView struct {
	state *SharedState
}

func newAuthView(state *SharedState) *authView {
	return &authView{state: state}
}

func (v *authView) ID() ViewID    { return ViewAuth }
func (v *authView) Title() string { return "Sign in" }

func (v *authView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sign up")),
		key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log in")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *authView) Init() tea.Cmd { return nil }

func (v *authView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch k.String() {
	case "s":
		return v, pushView(newSignupWizard(v.state))
	case "l":
		return v, pushView(newLoginWizard(v.state))
	}
	return v, nil
}

func (v *authView) View() string {
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(formatter.Header("UlcerWise"))
	b.WriteString("\n  ")
	b.WriteString(formatter.Dim("Know what hurts. Log what helps."))
	b.WriteString("\n\n  ")
	b.WriteString(formatter.Bold("s") + "  Create an account")
	b.WriteString("\n  ")
	b.WriteString(formatter.Bold("l") + "  I already have an account")
	b.WriteString("\n")
	return b.String()
}
