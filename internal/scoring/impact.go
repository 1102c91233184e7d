package scoring

import "github.com/alexanderramin/ulcerwise/internal/domain"

// Fixed per-kind impacts.
const (
	MedicationImpact  = -0.15
	SymptomImpact     = 0.20
	UnknownMealImpact = 0.10
	StressImpact      = 0.0
)

// TierImpact maps every catalog tier to its meal impact.
var TierImpact = map[domain.RiskTier]float64{
	domain.TierLow:    0.00,
	domain.TierMedium: 0.15,
	domain.TierHigh:   0.30,
}

// FoodLookup resolves a meal title to its catalog tier.
type FoodLookup interface {
	LookupFoodRisk(name string) (domain.RiskTier, bool)
}

// ImpactFor assigns the risk impact of a new entry. It depends only on kind
// and, for meals, on the catalog tier of title.
func ImpactFor(kind domain.EntryKind, title string, foods FoodLookup) float64 {
	switch kind {
	case domain.EntryMedication:
		return MedicationImpact
	case domain.EntrySymptom:
		return SymptomImpact
	case domain.EntryMeal:
		if foods == nil {
			return UnknownMealImpact
		}
		tier, ok := foods.LookupFoodRisk(title)
		if !ok {
			return UnknownMealImpact
		}
		if impact, ok := TierImpact[tier]; ok {
			return impact
		}
		return UnknownMealImpact
	default:
		return StressImpact
	}
}
