package domain

// EntryKind is the closed set of things a user can log.
type EntryKind string

const (
	EntryMeal       EntryKind = "meal"
	EntrySymptom    EntryKind = "symptom"
	EntryMedication EntryKind = "medication"
	EntryStress     EntryKind = "stress"
)

// LoggableEntryKinds are the kinds offered by the new-entry form.
// Stress is displayable but not created through the form.
var LoggableEntryKinds = []EntryKind{EntryMeal, EntrySymptom, EntryMedication}

// Valid reports whether k is one of the known kinds.
func (k EntryKind) Valid() bool {
	switch k {
	case EntryMeal, EntrySymptom, EntryMedication, EntryStress:
		return true
	}
	return false
}

// ParseEntryKind accepts the canonical names plus "med" and "meds".
func ParseEntryKind(s string) (EntryKind, error) {
	switch s {
	case "meal", "food":
		return EntryMeal, nil
	case "symptom":
		return EntrySymptom, nil
	case "medication", "med", "meds":
		return EntryMedication, nil
	case "stress":
		return EntryStress, nil
	}
	return "", ErrInvalidKind
}

// RiskTier is the static classification of a catalog food.
type RiskTier string

const (
	TierLow    RiskTier = "low"
	TierMedium RiskTier = "medium"
	TierHigh   RiskTier = "high"
)

// Valid reports whether t is one of the three tiers.
func (t RiskTier) Valid() bool {
	return t == TierLow || t == TierMedium || t == TierHigh
}

// RiskLabel is the banded label attached to a daily score.
type RiskLabel string

const (
	LabelLow    RiskLabel = "Low Risk"
	LabelMedium RiskLabel = "Medium Risk"
	LabelHigh   RiskLabel = "High Risk"
)

// Language is the user's preferred display language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageTwi     Language = "twi"
	LanguageGa      Language = "ga"
)

// ValidLanguages is the canonical set of accepted language codes.
var ValidLanguages = map[Language]string{
	LanguageEnglish: "English (GH)",
	LanguageTwi:     "Twi",
	LanguageGa:      "Ga",
}
