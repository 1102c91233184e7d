package domain

import "errors"

var (
	// ErrEmptyTitle rejects an entry whose title is blank after trimming.
	ErrEmptyTitle = errors.New("entry title is required")

	// ErrInvalidKind rejects an entry kind outside the closed enumeration.
	ErrInvalidKind = errors.New("invalid entry kind")

	// ErrInvalidLanguage rejects an unsupported language code.
	ErrInvalidLanguage = errors.New("unsupported language")
)
