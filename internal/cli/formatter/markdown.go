package formatter

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownStyle names the glamour style used by RenderMarkdown. "auto"
// picks one from the terminal and falls back to plain ASCII without one.
// The TUI fixes it before taking over the screen so glamour never queries
// the terminal mid-session.
var MarkdownStyle = "auto"

// RenderMarkdown renders advisory text wrapped at width. Rendering failures
// fall back to the input text.
func RenderMarkdown(text string, width int) string {
	if width <= 0 {
		width = 80
	}
	style := glamour.WithAutoStyle()
	if MarkdownStyle != "auto" {
		style = glamour.WithStandardStyle(MarkdownStyle)
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return text
	}
	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
