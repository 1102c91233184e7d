package scoring

import (
	"math"
	"time"

	"github.com/alexanderramin/ulcerwise/internal/domain"
)

const (
	// WeekDays is the number of buckets in the trend series.
	WeekDays = 7

	// HighBucketAbove flags a bucket for emphasis in the chart. It is a
	// display threshold and unrelated to the daily score bands.
	HighBucketAbove = 40
)

type WeeklyBucket struct {
	Date  time.Time // local midnight
	Label string    // short weekday name
	Value int
	High  bool
}

// Weekly aggregates positive impacts into one bucket per calendar day for
// the seven days ending with now's day, oldest first. Risk-reducing entries
// are left out: the chart tracks exposure, not the net score.
func Weekly(entries []domain.LogEntry, now time.Time) []WeeklyBucket {
	today := StartOfDay(now)
	buckets := make([]WeeklyBucket, WeekDays)

	for i := 0; i < WeekDays; i++ {
		dayStart := today.AddDate(0, 0, i-(WeekDays-1))
		dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Millisecond)

		var sum float64
		for _, e := range entries {
			if e.RiskImpact <= 0 {
				continue
			}
			if e.Timestamp.Before(dayStart) || e.Timestamp.After(dayEnd) {
				continue
			}
			sum += e.RiskImpact
		}

		value := int(math.Round(100 * sum))
		buckets[i] = WeeklyBucket{
			Date:  dayStart,
			Label: dayStart.Format("Mon"),
			Value: value,
			High:  value > HighBucketAbove,
		}
	}
	return buckets
}

// Today returns the newest bucket of a series produced by Weekly.
func Today(buckets []WeeklyBucket) WeeklyBucket {
	if len(buckets) == 0 {
		return WeeklyBucket{}
	}
	return buckets[len(buckets)-1]
}
