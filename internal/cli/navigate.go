package cli

import (
	"github.com/alexanderramin/ulcerwise/internal/advisory"
	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/alexanderramin/ulcerwise/internal/reminder"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// cmdOutputMsg carries text output from a command execution
// to be displayed transiently in the current view.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// refreshViewMsg asks every view on the stack to reload its data.
type refreshViewMsg struct{}

type quitMsg struct{}

// authSucceededMsg resets the stack to the home tab.
type authSucceededMsg struct {
	profile domain.UserProfile
}

// loggedOutMsg resets the stack to the sign-in screen.
type loggedOutMsg struct{}

// entrySavedMsg closes the entry form and reports the new entry.
type entrySavedMsg struct {
	entry  domain.LogEntry
	output string
}

// analysisResultMsg is delivered to the entry form that asked for it.
// A result whose token no longer matches the open form is dropped.
type analysisResultMsg struct {
	token  int
	result advisory.Result
}

type reminderMsg struct {
	reminder reminder.Reminder
}

// switchTabMsg replaces the whole stack with one of the top-level tabs.
type switchTabMsg struct {
	id ViewID
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func switchTab(id ViewID) tea.Cmd {
	return func() tea.Msg { return switchTabMsg{id: id} }
}

func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

func refreshCmd() tea.Cmd {
	return func() tea.Msg { return refreshViewMsg{} }
}

// errorText formats err the way every TUI action reports failures.
func errorText(err error) string {
	return formatter.StyleRed.Render("✗ " + err.Error())
}

func successText(msg string) string {
	return formatter.StyleGreen.Render("✔") + " " + msg
}

func wizardCompleteOutput(msg string) tea.Msg {
	return wizardCompleteMsg{nextCmd: outputCmd(msg)}
}
