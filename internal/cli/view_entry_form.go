package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ulcerwise/internal/advisory"
	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// minAnalyzeLen is the title length a meal must exceed before it can be
// sent for analysis.
const minAnalyzeLen = 2

const maxSuggestions = 5

// entryFormView collects the title for one new entry. Meals can be sent to
// the advisor; the reply comes back as analysisResultMsg stamped with the
// form's token.
type entryFormView struct {
	state *SharedState
	kind  domain.EntryKind
	input textinput.Model
	token int

	analyzing bool
	analysis  *advisory.Result
	err       error
}

func newEntryFormView(state *SharedState, kind domain.EntryKind) *entryFormView {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 80
	ti.ShowSuggestions = true

	cat := state.App.Catalog
	switch kind {
	case domain.EntryMeal:
		ti.Placeholder = "e.g. Jollof Rice"
		ti.SetSuggestions(cat.FoodNames())
	case domain.EntrySymptom:
		ti.Placeholder = "e.g. Bloating"
		ti.SetSuggestions(cat.SymptomSuggestions())
	default:
		ti.Placeholder = "e.g. Antacid"
	}
	ti.Focus()

	return &entryFormView{
		state: state,
		kind:  kind,
		input: ti,
		token: state.nextFormToken(),
	}
}

func (v *entryFormView) ID() ViewID    { return ViewEntryForm }
func (v *entryFormView) Title() string { return "Log " + strings.ToLower(kindLabel(v.kind)) }

func (v *entryFormView) ShortHelp() []key.Binding {
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
	}
	if v.kind == domain.EntryMeal {
		hints = append(hints, key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "AI check")))
	}
	return append(hints, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

func (v *entryFormView) Init() tea.Cmd { return textinput.Blink }

// canAnalyze reports whether the current title may be sent to the advisor.
func (v *entryFormView) canAnalyze() bool {
	return v.kind == domain.EntryMeal && len([]rune(strings.TrimSpace(v.input.Value()))) > minAnalyzeLen
}

func (v *entryFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisResultMsg:
		if msg.token != v.token {
			return v, nil
		}
		v.analyzing = false
		res := msg.result
		v.analysis = &res
		return v, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return v, tea.Batch(popView(), outputCmd(formatter.Dim("Cancelled.")))

		case tea.KeyEnter:
			e, out, err := execAddEntry(context.Background(), v.state.App, v.kind, v.input.Value())
			if err != nil {
				v.err = err
				return v, nil
			}
			return v, func() tea.Msg { return entrySavedMsg{entry: e, output: out} }

		case tea.KeyCtrlA:
			if !v.canAnalyze() || v.analyzing {
				return v, nil
			}
			v.analyzing = true
			v.analysis = nil
			return v, analyzeCmd(v.state.App, v.token, strings.TrimSpace(v.input.Value()))
		}
		v.err = nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// analyzeCmd runs the advisory call off the update loop. The advisor
// bounds it with its own timeout.
func analyzeCmd(app *App, token int, food string) tea.Cmd {
	return func() tea.Msg {
		return analysisResultMsg{token: token, result: app.Session.Analyze(context.Background(), food)}
	}
}

func (v *entryFormView) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s %s\n\n", formatter.KindIcon(v.kind), formatter.Header(v.Title()))
	fmt.Fprintf(&b, "  %s\n", v.input.View())

	if matches := v.input.MatchedSuggestions(); len(matches) > 0 && v.input.Value() != "" {
		if len(matches) > maxSuggestions {
			matches = matches[:maxSuggestions]
		}
		fmt.Fprintf(&b, "  %s\n", formatter.Dim(strings.Join(matches, " · ")))
	}

	if v.kind == domain.EntryMeal {
		if tier, ok := v.state.App.Catalog.LookupFoodRisk(v.input.Value()); ok {
			fmt.Fprintf(&b, "  %s %s\n", formatter.Dim("Catalog risk:"), formatter.TierBadge(tier))
		}
	}

	if v.err != nil {
		fmt.Fprintf(&b, "\n  %s\n", errorText(v.err))
	}

	switch {
	case v.analyzing:
		fmt.Fprintf(&b, "\n  %s\n", formatter.Dim("Analyzing…"))
	case v.analysis != nil:
		b.WriteString("\n")
		b.WriteString(v.renderAnalysis(*v.analysis))
	case v.kind == domain.EntryMeal && !v.canAnalyze():
		fmt.Fprintf(&b, "\n  %s\n", formatter.Dim("Type a few letters, then ctrl+a for an AI check."))
	}
	return b.String()
}

func (v *entryFormView) renderAnalysis(res advisory.Result) string {
	width := max(v.state.Width-4, 40)
	if res.Outcome == advisory.OutcomeOK {
		return indent(formatter.RenderMarkdown(res.Text, width), "  ")
	}
	return "  " + formatter.StyleYellow.Render(res.Text) + "\n"
}
