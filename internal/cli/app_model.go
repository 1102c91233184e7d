package cli

import (
	"strings"

	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// tabOrder is the order of the top-level tabs for the 1-4 and tab keys.
var tabOrder = []ViewID{ViewHome, ViewJournal, ViewCare, ViewProfile}

// appModel is the root bubbletea Model for the TUI. It owns the view stack
// and is the only place session state changes, one message at a time.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient output from the last action, cleared by the next key.
	lastOutput string
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	m := appModel{state: state}

	if app.Session.Authenticated() {
		m.viewStack = []View{newHomeView(state)}
	} else {
		m.viewStack = []View{newDisclaimerView(state)}
	}
	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m *appModel) newTab(id ViewID) View {
	switch id {
	case ViewJournal:
		return newJournalView(m.state)
	case ViewCare:
		return newCareView(m.state)
	case ViewProfile:
		return newProfileView(m.state)
	default:
		return newHomeView(m.state)
	}
}

// listenReminders waits for the next reminder. It is re-armed after each
// delivery and simply ends when the feed is stopped.
func (m *appModel) listenReminders() tea.Cmd {
	feed := m.state.App.Reminders
	if feed == nil {
		return nil
	}
	ch := feed.C()
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return reminderMsg{reminder: r}
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	cmds = append(cmds, m.listenReminders())
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.lastOutput = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		m.lastOutput = ""
		if len(m.viewStack) > 0 {
			m.viewStack[len(m.viewStack)-1] = msg.view
		} else {
			m.viewStack = append(m.viewStack, msg.view)
		}
		return m, msg.view.Init()

	case switchTabMsg:
		v := m.newTab(msg.id)
		m.viewStack = []View{v}
		return m, v.Init()

	case refreshViewMsg:
		// Broadcast so views under a form reload after it mutates the log.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case cmdOutputMsg:
		m.lastOutput = msg.output
		return m, nil

	case wizardCompleteMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		m.lastOutput = ""
		return m, tea.Batch(msg.nextCmd, refreshCmd())

	case authSucceededMsg:
		home := newHomeView(m.state)
		m.viewStack = []View{home}
		m.lastOutput = successText("Signed in as " + formatter.Bold(msg.profile.DisplayName()))
		return m, home.Init()

	case loggedOutMsg:
		m.state.Banner = nil
		m.viewStack = []View{newAuthView(m.state)}
		return m, nil

	case entrySavedMsg:
		if v := m.activeView(); v != nil && v.ID() == ViewEntryForm && len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		m.lastOutput = msg.output
		return m, refreshCmd()

	case analysisResultMsg:
		// Only the form that asked may see the result.
		if f, ok := m.activeView().(*entryFormView); ok && f.token == msg.token {
			updated, cmd := f.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case reminderMsg:
		r := msg.reminder
		m.state.Banner = &r
		return m, m.listenReminders()

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	m.lastOutput = ""

	// Views with their own text input get every key, including q and esc.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	root := m.viewStack[0]
	onTabs := len(m.viewStack) == 1 && isTabView(root.ID())

	switch s := msg.String(); {
	case s == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m, nil
		}
		m.state.Banner = nil
		return m, nil

	case s == "x" && m.state.Banner != nil:
		m.state.Banner = nil
		return m, nil

	case s == "n" && m.state.App.Session.Authenticated():
		v := newEntryKindWizard(m.state)
		m.viewStack = append(m.viewStack, v)
		return m, v.Init()

	case onTabs && len(s) == 1 && s >= "1" && s <= "4":
		return m, switchTab(tabOrder[s[0]-'1'])

	case onTabs && msg.Type == tea.KeyTab:
		for i, id := range tabOrder {
			if id == root.ID() {
				return m, switchTab(tabOrder[(i+1)%len(tabOrder)])
			}
		}
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if b := m.state.Banner; b != nil {
		sections = append(sections, formatter.StyleYellow.Render("⏰ "+b.Message)+"  "+formatter.Dim("x: dismiss"))
	}
	if m.lastOutput != "" {
		sections = append(sections, m.lastOutput)
	}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StyleGreen.Bold(true).Render("ulcerwise")

	var header string
	if isTabView(m.viewStack[0].ID()) {
		var tabs []string
		for i, id := range tabOrder {
			label := tabLabel(id)
			if id == m.viewStack[0].ID() {
				tabs = append(tabs, formatter.StyleHeader.Render(label))
			} else {
				tabs = append(tabs, formatter.Dim(string(rune('1'+i))+" "+label))
			}
		}
		header = title + "  " + strings.Join(tabs, "  ")
	} else {
		header = title
	}

	var crumbs []string
	for _, v := range m.viewStack[1:] {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func tabLabel(id ViewID) string {
	switch id {
	case ViewHome:
		return "Home"
	case ViewJournal:
		return "Journal"
	case ViewCare:
		return "Care"
	case ViewProfile:
		return "Profile"
	}
	return ""
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		if len(m.viewStack) > 1 && !viewCapturesInput(v) {
			hints = append(hints, formatter.Dim("esc: back"))
		}
	}

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}
