// Package metrics exposes process counters for advisory calls and session
// commands in Prometheus format.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/ulcerwise/internal/advisory"
	"github.com/alexanderramin/ulcerwise/internal/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "ulcerwise"

// Collector implements advisory.Observer and session.UseCaseObserver.
type Collector struct {
	reg *prometheus.Registry

	advisoryCalls   *prometheus.CounterVec
	advisoryLatency prometheus.Histogram
	useCases        *prometheus.CounterVec
	useCaseDuration *prometheus.HistogramVec
	entriesLogged   *prometheus.CounterVec
	dailyScore      prometheus.Gauge
}

var (
	_ advisory.Observer       = (*Collector)(nil)
	_ session.UseCaseObserver = (*Collector)(nil)
)

// New registers every collector on a private registry, together with the
// Go runtime and process collectors.
func New() *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		advisoryCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "advisory",
			Name:      "calls_total",
			Help:      "Advisory lookups by outcome.",
		}, []string{"outcome"}),
		advisoryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "advisory",
			Name:      "latency_seconds",
			Help:      "Latency of advisory lookups that reached the service.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
		}),
		useCases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "use_cases_total",
			Help:      "Session commands by name and result.",
		}, []string{"use_case", "success"}),
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "use_case_duration_seconds",
			Help:      "Duration of session commands.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"use_case"}),
		entriesLogged: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "log",
			Name:      "entries_total",
			Help:      "Entries logged by kind.",
		}, []string{"kind"}),
		dailyScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "daily_score",
			Help:      "Most recently rendered daily risk score.",
		}),
	}
	c.reg.MustRegister(
		c.advisoryCalls, c.advisoryLatency,
		c.useCases, c.useCaseDuration,
		c.entriesLogged, c.dailyScore,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, o := range advisory.AllOutcomes {
		c.advisoryCalls.WithLabelValues(string(o))
	}
	return c
}

// Registry returns the registry backing Handler.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

func (c *Collector) OnCallComplete(event advisory.CallEvent) {
	c.advisoryCalls.WithLabelValues(string(event.Outcome)).Inc()
	switch event.Outcome {
	case advisory.OutcomeNotConfigured, advisory.OutcomeSkipped:
	default:
		c.advisoryLatency.Observe(float64(event.LatencyMs) / 1000)
	}
}

func (c *Collector) ObserveUseCase(_ context.Context, event session.UseCaseEvent) {
	c.useCases.WithLabelValues(event.Name, strconv.FormatBool(event.Success)).Inc()
	c.useCaseDuration.WithLabelValues(event.Name).Observe(event.Duration.Seconds())
	if event.Success {
		if kind, ok := event.Fields["kind"].(string); ok {
			c.entriesLogged.WithLabelValues(kind).Inc()
		}
	}
}

// SetDailyScore records the score last shown to the user.
func (c *Collector) SetDailyScore(score int) {
	c.dailyScore.Set(float64(score))
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (c *Collector) Serve(ctx context.Context, addr string, log *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("metrics listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
