package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/ulcerwise/internal/advisory"
	"github.com/alexanderramin/ulcerwise/internal/session"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOnCallComplete_CountsByOutcome(t *testing.T) {
	c := New()

	c.OnCallComplete(advisory.CallEvent{Outcome: advisory.OutcomeOK, LatencyMs: 120})
	c.OnCallComplete(advisory.CallEvent{Outcome: advisory.OutcomeOK, LatencyMs: 80})
	c.OnCallComplete(advisory.CallEvent{Outcome: advisory.OutcomeNotConfigured})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.advisoryCalls.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.advisoryCalls.WithLabelValues("not_configured")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.advisoryCalls.WithLabelValues("timeout")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.advisoryLatency))
}

func TestObserveUseCase(t *testing.T) {
	c := New()
	ctx := context.Background()

	c.ObserveUseCase(ctx, session.UseCaseEvent{Name: "add-entry", Success: true, Fields: map[string]any{"kind": "meal"}})
	c.ObserveUseCase(ctx, session.UseCaseEvent{Name: "add-entry", Success: false, Fields: map[string]any{"kind": "meal"}})
	c.ObserveUseCase(ctx, session.UseCaseEvent{Name: "logout", Success: true})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.useCases.WithLabelValues("add-entry", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.useCases.WithLabelValues("add-entry", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.entriesLogged.WithLabelValues("meal")))
}

func TestSetDailyScore(t *testing.T) {
	c := New()
	c.SetDailyScore(50)
	assert.Equal(t, 50.0, testutil.ToFloat64(c.dailyScore))
}

func TestHandler_ExposesMetrics(t *testing.T) {
	c := New()
	c.OnCallComplete(advisory.CallEvent{Outcome: advisory.OutcomeServiceError})

	srv := httptest.NewServer(c.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `ulcerwise_advisory_calls_total{outcome="service_error"} 1`)
	assert.True(t, strings.Contains(string(body), "go_goroutines"))
}

func TestServe_StopsOnCancel(t *testing.T) {
	c := New()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Serve(ctx, "127.0.0.1:0", zap.NewNop()) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
