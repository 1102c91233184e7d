package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewDisclaimer ViewID = iota
	ViewAuth
	ViewHome
	ViewJournal
	ViewCare
	ViewProfile
	ViewForm
	ViewEntryForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// inputCapturer is implemented by views that own a text input and want
// every key while it is focused.
type inputCapturer interface {
	CapturesInput() bool
}

// viewCapturesInput returns true if the active view should receive all key
// events, bypassing global keybindings like q, n and the tab keys.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	switch v.ID() {
	case ViewForm, ViewEntryForm:
		return true
	}
	if c, ok := v.(inputCapturer); ok {
		return c.CapturesInput()
	}
	return false
}

// isTabView reports whether id is one of the four top-level tabs.
func isTabView(id ViewID) bool {
	switch id {
	case ViewHome, ViewJournal, ViewCare, ViewProfile:
		return true
	}
	return false
}
