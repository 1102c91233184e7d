package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ulcerwise/internal/auth"
	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	"github.com/alexanderramin/ulcerwise/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ulcerwiseHuhTheme returns a huh theme using the formatter palette.
func ulcerwiseHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(ulcerwiseHuhTheme()).WithShowHelp(false)
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// newSignupWizard collects name and contact, requests a code and then
// chains into the code step.
func newSignupWizard(state *SharedState) View {
	var name, contact string

	form := newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Placeholder("Kwame Mensah").
				Value(&name).
				Validate(required("name")),
			huh.NewInput().
				Title("Phone or email").
				Placeholder("kwame@example.com").
				Value(&contact).
				Validate(required("contact")),
		),
	)

	done := func() tea.Cmd {
		ch, err := execRequestSignupCode(context.Background(), state.App, name, contact)
		if err != nil {
			return outputCmd(errorText(err))
		}
		return pushView(newVerifyCodeWizard(state, ch))
	}
	return newWizardView(state, "Sign up", form, done)
}

// newVerifyCodeWizard asks for the verification code sent to the contact.
func newVerifyCodeWizard(state *SharedState, ch auth.Challenge) View {
	var code string

	form := newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Verification code").
				Description(fmt.Sprintf("Sent to %s. %s", ch.Contact, ch.Hint)).
				CharLimit(4).
				Value(&code).
				Validate(required("code")),
		),
	)

	done := func() tea.Cmd {
		profile, err := execVerifySignupCode(context.Background(), state.App, code)
		if err != nil {
			return outputCmd(errorText(err))
		}
		return func() tea.Msg { return authSucceededMsg{profile: profile} }
	}
	return newWizardView(state, "Verify", form, done)
}

// newLoginWizard signs an existing user in with contact and password.
func newLoginWizard(state *SharedState) View {
	var contact, password string

	form := newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Phone or email").
				Value(&contact).
				Validate(required("contact")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(required("password")),
		),
	)

	done := func() tea.Cmd {
		profile, err := execLogin(context.Background(), state.App, contact, password)
		if err != nil {
			return outputCmd(errorText(err))
		}
		return func() tea.Msg { return authSucceededMsg{profile: profile} }
	}
	return newWizardView(state, "Log in", form, done)
}

// newEntryKindWizard asks what is being logged, then opens the entry form.
func newEntryKindWizard(state *SharedState) View {
	kind := domain.EntryMeal

	options := make([]huh.Option[domain.EntryKind], 0, len(domain.LoggableEntryKinds))
	for _, k := range domain.LoggableEntryKinds {
		options = append(options, huh.NewOption(formatter.KindIcon(k)+" "+kindLabel(k), k))
	}

	form := newForm(
		huh.NewGroup(
			huh.NewSelect[domain.EntryKind]().
				Title("What are you logging?").
				Options(options...).
				Value(&kind),
		),
	)

	done := func() tea.Cmd {
		return pushView(newEntryFormView(state, kind))
	}
	return newWizardView(state, "New entry", form, done)
}

func kindLabel(k domain.EntryKind) string {
	switch k {
	case domain.EntryMeal:
		return "Meal"
	case domain.EntrySymptom:
		return "Symptom"
	case domain.EntryMedication:
		return "Medication"
	case domain.EntryStress:
		return "Stress"
	}
	return string(k)
}
