package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDate returns "Today", "Yesterday" or an absolute date relative to now.
func HumanDate(t, now time.Time) string {
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	y3, m3, d3 := now.AddDate(0, 0, -1).Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a short relative timestamp such as "2h ago".
func HumanTimestamp(t, now time.Time) string {
	diff := now.Sub(t)
	switch {
	case diff < 0:
		return HumanDate(t, now) + " " + t.Format("15:04")
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t, now)
	}
}

// EntryLine renders one history row: icon, title, trend, impact and age.
func EntryLine(e domain.LogEntry, now time.Time) string {
	return fmt.Sprintf("%s %s  %s %s  %s",
		KindIcon(e.Kind),
		StyleFg.Render(e.Title),
		trendMarker(e),
		ImpactBadge(e.RiskPoints()),
		Dim(HumanTimestamp(e.Timestamp, now)),
	)
}

func trendMarker(e domain.LogEntry) string {
	switch {
	case e.RaisesRisk():
		return StyleRed.Render("▲")
	case e.LowersRisk():
		return StyleGreen.Render("▼")
	default:
		return StyleDim.Render("·")
	}
}

// ProviderLine renders a pharmacy with open and delivery markers.
func ProviderLine(p domain.CareProvider) string {
	status := StyleRed.Render("Closed")
	if p.IsOpen {
		status = StyleGreen.Render("Open")
	}
	line := fmt.Sprintf("%s  %s  %s", Bold(p.Name), Dim(p.Location), status)
	if p.OffersDelivery {
		line += "  " + StyleBlue.Render("Delivery")
	}
	if p.Phone != "" {
		line += "\n  " + Dim(p.Phone)
	}
	return line
}

// Truncate shortens s to width visible cells, adding an ellipsis.
func Truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
