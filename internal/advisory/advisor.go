// Package advisory asks a hosted text-generation service for a short
// ulcer-risk assessment of a food. Failures never escape: every call ends
// in a Result carrying user-facing text.
package advisory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// Outcome classifies how an Analyze call ended.
type Outcome string

const (
	OutcomeOK            Outcome = "ok"
	OutcomeEmpty         Outcome = "empty"
	OutcomeNotConfigured Outcome = "not_configured"
	OutcomeSkipped       Outcome = "skipped"
	OutcomeTimeout       Outcome = "timeout"
	OutcomeServiceError  Outcome = "service_error"
)

// AllOutcomes lists every outcome, for metric pre-registration.
var AllOutcomes = []Outcome{
	OutcomeOK, OutcomeEmpty, OutcomeNotConfigured,
	OutcomeSkipped, OutcomeTimeout, OutcomeServiceError,
}

// User-facing fallback texts.
const (
	NotConfiguredText = "API Key not configured. Unable to analyze."
	UnavailableText   = "Could not analyze this item at the moment."
	OfflineText       = "Offline: Unable to reach AI service. Please check your connection."
)

// Result is what Analyze hands back to the presentation layer.
type Result struct {
	Outcome Outcome
	Text    string
	// Err is the underlying cause for failed outcomes, kept for logging.
	Err     error
	Latency time.Duration
}

// Analyzer is the narrow surface the session and CLI depend on.
type Analyzer interface {
	Analyze(ctx context.Context, food string) Result
}

// Advisor wraps a Generator with the credential check, rate limiter,
// circuit breaker and outcome mapping.
type Advisor struct {
	cfg      Config
	gen      Generator
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker[*GenerateResponse]
	observer Observer
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithGenerator replaces the Gemini client, e.g. with a stub in tests.
func WithGenerator(g Generator) Option {
	return func(a *Advisor) { a.gen = g }
}

// WithObserver sets the call observer.
func WithObserver(o Observer) Option {
	return func(a *Advisor) { a.observer = o }
}

// NewAdvisor builds an Advisor from cfg. A nil observer is replaced by
// NoopObserver.
func NewAdvisor(cfg Config, opts ...Option) *Advisor {
	a := &Advisor{cfg: cfg, observer: NoopObserver{}}
	for _, opt := range opts {
		opt(a)
	}
	if a.observer == nil {
		a.observer = NoopObserver{}
	}
	if a.gen == nil {
		a.gen = NewGeminiClient(cfg)
	}
	if cfg.RequestsPerMinute > 0 {
		burst := cfg.RequestsPerMinute / 10
		if burst < 1 {
			burst = 1
		}
		a.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), burst)
	}
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 1
	}
	a.breaker = gobreaker.NewCircuitBreaker[*GenerateResponse](gobreaker.Settings{
		Name:    "advisory",
		Timeout: cfg.BreakerCooldown,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= failures
		},
		// A caller walking away says nothing about the service.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})
	return a
}

// Configured reports whether a credential is present.
func (a *Advisor) Configured() bool {
	return a.cfg.Configured()
}

// Analyze returns a short assessment of food. It makes at most one
// outbound request and never returns an error.
func (a *Advisor) Analyze(ctx context.Context, food string) Result {
	start := time.Now()
	res := a.analyze(ctx, strings.TrimSpace(food))
	res.Latency = time.Since(start)

	event := CallEvent{
		Outcome:   res.Outcome,
		Model:     a.cfg.Model,
		LatencyMs: res.Latency.Milliseconds(),
	}
	if res.Err != nil {
		event.ErrorCode = errorCode(res.Err)
	}
	a.observer.OnCallComplete(event)
	return res
}

func (a *Advisor) analyze(ctx context.Context, food string) Result {
	if !a.cfg.Configured() {
		return Result{Outcome: OutcomeNotConfigured, Text: NotConfiguredText, Err: ErrNotConfigured}
	}
	if food == "" {
		return Result{Outcome: OutcomeSkipped, Text: UnavailableText}
	}

	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			// Wait also fails early when the delay would pass the deadline.
			if errors.Is(ctx.Err(), context.Canceled) {
				return failure(ctx.Err())
			}
			return failure(ErrTimeout)
		}
	}

	resp, err := a.breaker.Execute(func() (*GenerateResponse, error) {
		return a.gen.Generate(ctx, GenerateRequest{
			Prompt:          FoodRiskPrompt(food),
			Temperature:     a.cfg.Temperature,
			MaxOutputTokens: a.cfg.MaxOutputTokens,
		})
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = ErrTimeout
		}
		return failure(err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return Result{Outcome: OutcomeEmpty, Text: UnavailableText, Err: ErrEmptyResponse}
	}
	return Result{Outcome: OutcomeOK, Text: text}
}

func failure(err error) Result {
	if errors.Is(err, ErrTimeout) {
		return Result{Outcome: OutcomeTimeout, Text: OfflineText, Err: err}
	}
	return Result{Outcome: OutcomeServiceError, Text: OfflineText, Err: err}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case errors.Is(err, ErrEmptyResponse):
		return "empty"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	default:
		return "service_error"
	}
}
