package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// LabelStyle returns the style for a daily risk label.
func LabelStyle(label domain.RiskLabel) lipgloss.Style {
	switch label {
	case domain.LabelHigh:
		return StyleRed
	case domain.LabelMedium:
		return StyleYellow
	case domain.LabelLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// LabelBadge returns a colored indicator such as "● Medium Risk".
func LabelBadge(label domain.RiskLabel) string {
	return LabelStyle(label).Render("● " + string(label))
}

// TierStyle returns the style for a catalog risk tier.
func TierStyle(tier domain.RiskTier) lipgloss.Style {
	switch tier {
	case domain.TierHigh:
		return StyleRed
	case domain.TierMedium:
		return StyleYellow
	case domain.TierLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// TierBadge renders a tier as an upper-case colored word.
func TierBadge(tier domain.RiskTier) string {
	return TierStyle(tier).Render(strings.ToUpper(string(tier)))
}

// KindIcon returns the single-glyph marker used in entry lists.
func KindIcon(kind domain.EntryKind) string {
	switch kind {
	case domain.EntryMeal:
		return StyleBlue.Render("◆")
	case domain.EntrySymptom:
		return StyleRed.Render("▲")
	case domain.EntryMedication:
		return StyleGreen.Render("✚")
	case domain.EntryStress:
		return StylePurple.Render("~")
	default:
		return StyleDim.Render("·")
	}
}

// ImpactBadge renders signed score points, red when they raise risk.
func ImpactBadge(points int) string {
	switch {
	case points > 0:
		return StyleRed.Render(fmt.Sprintf("+%d", points))
	case points < 0:
		return StyleGreen.Render(fmt.Sprintf("%d", points))
	default:
		return StyleDim.Render("±0")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
