package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// careView lists pharmacies filtered by a search box. "/" focuses the
// search; while focused the view captures all keys.
type careView struct {
	state  *SharedState
	search textinput.Model
}

func newCareView(state *SharedState) *careView {
	ti := textinput.New()
	ti.Placeholder = "Search by name or area"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	return &careView{state: state, search: ti}
}

func (v *careView) ID() ViewID          { return ViewCare }
func (v *careView) Title() string       { return "Care" }
func (v *careView) CapturesInput() bool { return v.search.Focused() }

func (v *careView) ShortHelp() []key.Binding {
	if v.search.Focused() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new entry")),
	}
}

func (v *careView) Init() tea.Cmd { return nil }

func (v *careView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		return v, cmd
	}

	if !v.search.Focused() {
		if k.String() == "/" {
			return v, v.search.Focus()
		}
		return v, nil
	}

	switch k.Type {
	case tea.KeyEnter:
		v.search.Blur()
		return v, nil
	case tea.KeyEsc:
		v.search.Reset()
		v.search.Blur()
		return v, nil
	}
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	return v, cmd
}

func (v *careView) View() string {
	cat := v.state.App.Catalog
	query := v.search.Value()

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n", formatter.Header("Pharmacies near you"))
	fmt.Fprintf(&b, "  %s\n\n", v.search.View())

	providers := cat.SearchProviders(query)
	if len(providers) == 0 {
		fmt.Fprintf(&b, "  %s\n", formatter.Dim(fmt.Sprintf("No pharmacies match %q.", query)))
	}
	for _, p := range providers {
		b.WriteString(indent(formatter.ProviderLine(p), "  "))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n  %s %s\n", formatter.Dim("Need help? Contact"), cat.SupportEmail())
	return b.String()
}
