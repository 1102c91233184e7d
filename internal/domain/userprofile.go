package domain

import "strings"

// UserProfile lives for one authenticated session and is never persisted.
type UserProfile struct {
	ID                string
	Name              string
	Contact           string
	Language          Language
	ReceivesReminders bool
	HasDiagnosis      bool
}

// NewUserProfile returns a profile with the defaults a fresh sign-in gets.
func NewUserProfile(id, name, contact string) *UserProfile {
	return &UserProfile{
		ID:                id,
		Name:              strings.TrimSpace(name),
		Contact:           strings.TrimSpace(contact),
		Language:          LanguageEnglish,
		ReceivesReminders: true,
	}
}

// DisplayName falls back to the contact when no name was given (login path).
func (p *UserProfile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	if i := strings.IndexByte(p.Contact, '@'); i > 0 {
		return p.Contact[:i]
	}
	return p.Contact
}

// LanguageLabel returns the human label for the profile's language.
func (p *UserProfile) LanguageLabel() string {
	if label, ok := ValidLanguages[p.Language]; ok {
		return label
	}
	return string(p.Language)
}
