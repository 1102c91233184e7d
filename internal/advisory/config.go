package advisory

import (
	"strings"
	"time"
)

// Config holds everything the advisory client needs. An empty APIKey is a
// valid state: the advisor then answers with the "not configured" text.
type Config struct {
	APIKey            string
	Endpoint          string
	Model             string
	Timeout           time.Duration
	Temperature       float64
	MaxOutputTokens   int
	RequestsPerMinute int
	BreakerFailures   uint32
	BreakerCooldown   time.Duration
	LogCalls          bool
}

// DefaultConfig returns a Config with sensible defaults and no credential.
func DefaultConfig() Config {
	return Config{
		Endpoint:          "https://generativelanguage.googleapis.com",
		Model:             "gemini-3-flash-preview",
		Timeout:           10 * time.Second,
		Temperature:       0.3,
		MaxOutputTokens:   256,
		RequestsPerMinute: 30,
		BreakerFailures:   3,
		BreakerCooldown:   30 * time.Second,
	}
}

// Configured reports whether a credential is present.
func (c Config) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}
