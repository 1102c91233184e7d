package cli

import "github.com/alexanderramin/ulcerwise/internal/reminder"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int

	// Most recent reminder, shown as a banner until dismissed.
	Banner *reminder.Reminder

	formSeq int
}

// nextFormToken hands out the identity an entry form stamps on its
// advisory requests.
func (s *SharedState) nextFormToken() int {
	s.formSeq++
	return s.formSeq
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if s.Banner != nil {
		h--
	}
	if h < 1 {
		return 1
	}
	return h
}
