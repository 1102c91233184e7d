package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/ulcerwise/internal/advisory"
)

// StubAnalyzer answers Analyze with a canned Result and records the foods
// it was asked about.
type StubAnalyzer struct {
	mu     sync.Mutex
	Result advisory.Result
	calls  []string
}

func NewStubAnalyzer(text string) *StubAnalyzer {
	return &StubAnalyzer{Result: advisory.Result{Outcome: advisory.OutcomeOK, Text: text}}
}

func (s *StubAnalyzer) Analyze(_ context.Context, food string) advisory.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, food)
	return s.Result
}

// Calls returns the foods analyzed so far.
func (s *StubAnalyzer) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}
