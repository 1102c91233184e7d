package scoring

import "math"

// GaugeRadius is the radius of the semicircular score gauge.
const GaugeRadius = 80.0

// GaugeArc describes how much of the semicircle a score fills, in the same
// terms as an SVG stroke-dasharray: Progress of Circumference.
type GaugeArc struct {
	Circumference float64
	Progress      float64
	Fraction      float64
}

// Gauge computes the arc for a score. Out-of-range scores are clamped.
func Gauge(score int) GaugeArc {
	score = clamp(score, MinScore, MaxScore)
	circ := math.Pi * GaugeRadius
	frac := float64(score) / float64(MaxScore)
	return GaugeArc{
		Circumference: circ,
		Progress:      frac * circ,
		Fraction:      frac,
	}
}
