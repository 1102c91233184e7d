package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogUseCaseObserver(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	obs := NewLogUseCaseObserver(zap.New(core))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "add-entry",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"kind": "meal"},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "delete-entry",
		Err:  errors.New("boom"),
	})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "session_use_case", entries[0].Message)
	assert.Equal(t, "add-entry", entries[0].ContextMap()["use_case"])
	assert.Equal(t, "meal", entries[0].ContextMap()["kind"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestNewLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))

	a, b := &recordingUseCaseObserver{}, &recordingUseCaseObserver{}
	fan := useCaseObserverOrNoop([]UseCaseObserver{a, nil, b})
	fan.ObserveUseCase(context.Background(), UseCaseEvent{Name: "x"})

	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
}
