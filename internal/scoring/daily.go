package scoring

import (
	"math"
	"time"

	"github.com/alexanderramin/ulcerwise/internal/domain"
)

const (
	// BaselineScore is the ambient risk floor with nothing logged.
	BaselineScore = 20

	MinScore = 0
	MaxScore = 100

	// Labels move up only when the score strictly exceeds these.
	mediumAbove = 33
	highAbove   = 66
)

type DailyScore struct {
	Score      int
	Label      domain.RiskLabel
	EntryCount int
}

// Daily scores the entries logged since the start of now's calendar day.
// Entries later than now still count; the window has no upper bound.
func Daily(entries []domain.LogEntry, now time.Time) DailyScore {
	dayStart := StartOfDay(now)

	var sum float64
	count := 0
	for _, e := range entries {
		if e.Timestamp.Before(dayStart) {
			continue
		}
		sum += e.RiskImpact
		count++
	}

	score := clamp(int(math.Round(BaselineScore+100*sum)), MinScore, MaxScore)
	return DailyScore{
		Score:      score,
		Label:      LabelFor(score),
		EntryCount: count,
	}
}

// LabelFor bands a score. Boundary values belong to the lower band.
func LabelFor(score int) domain.RiskLabel {
	switch {
	case score > highAbove:
		return domain.LabelHigh
	case score > mediumAbove:
		return domain.LabelMedium
	default:
		return domain.LabelLow
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
