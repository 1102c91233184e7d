package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/alexanderramin/ulcerwise/internal/scoring"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderGauge renders the daily score as a bar like [████░░░░]  50  ● Medium Risk.
// The fill follows the gauge arc fraction and the color follows the label.
func RenderGauge(score int, label domain.RiskLabel, width int) string {
	if width < 2 {
		width = 2
	}
	arc := scoring.Gauge(score)

	filled := int(arc.Fraction*float64(width) + 0.5)
	filled = min(filled, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := LabelStyle(label)
	return fmt.Sprintf("[%s] %s  %s",
		style.Render(bar),
		Bold(fmt.Sprintf("%3d", score)),
		LabelBadge(label))
}

// RenderWeeklyChart draws one vertical bar per bucket, height rows tall.
// Buckets flagged High are red; the rest are green.
func RenderWeeklyChart(buckets []scoring.WeeklyBucket, height int) string {
	if len(buckets) == 0 {
		return Dim("no data")
	}
	if height < 1 {
		height = 1
	}
	// Scale against at least the high threshold so a quiet week stays low.
	top := scoring.HighBucketAbove
	for _, b := range buckets {
		top = max(top, b.Value)
	}

	const colWidth = 5
	var b strings.Builder
	for row := height; row >= 1; row-- {
		for _, bk := range buckets {
			cells := (bk.Value*height + top - 1) / top
			cell := strings.Repeat(" ", 3)
			if bk.Value > 0 && cells >= row {
				style := StyleGreen
				if bk.High {
					style = StyleRed
				}
				cell = style.Render(strings.Repeat(filledBlock, 3))
			}
			b.WriteString(" " + cell + " ")
		}
		b.WriteString("\n")
	}
	for _, bk := range buckets {
		b.WriteString(fmt.Sprintf("%-*s", colWidth, " "+bk.Label))
	}
	b.WriteString("\n")
	for _, bk := range buckets {
		b.WriteString(Dim(fmt.Sprintf("%-*s", colWidth, fmt.Sprintf(" %d", bk.Value))))
	}
	return b.String()
}
