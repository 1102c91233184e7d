package advisory

import "go.uber.org/zap"

// CallEvent records metadata about a single Analyze invocation.
type CallEvent struct {
	Outcome   Outcome
	Model     string
	LatencyMs int64
	ErrorCode string
}

// Success reports whether the call produced service text.
func (e CallEvent) Success() bool {
	return e.Outcome == OutcomeOK
}

// Observer receives events about advisory calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes advisory call events to a zap logger.
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver creates an Observer that logs events to log.
func NewLogObserver(log *zap.Logger) *LogObserver {
	return &LogObserver{log: log.Named("advisory")}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	fields := []zap.Field{
		zap.String("outcome", string(event.Outcome)),
		zap.String("model", event.Model),
		zap.Int64("latency_ms", event.LatencyMs),
	}
	if event.Success() {
		o.log.Info("advisory_call", fields...)
		return
	}
	o.log.Warn("advisory_call", append(fields, zap.String("error_code", event.ErrorCode))...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// MultiObserver fans events out to every wrapped observer.
type MultiObserver []Observer

func (m MultiObserver) OnCallComplete(event CallEvent) {
	for _, o := range m {
		if o != nil {
			o.OnCallComplete(event)
		}
	}
}
