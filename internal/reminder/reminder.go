// Package reminder fires a daily nudge to log meals and symptoms.
package reminder

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultSchedule fires at 09:00 every day.
const DefaultSchedule = "0 9 * * *"

// DefaultMessage is shown when a reminder fires.
const DefaultMessage = "Time to log today's meals and how you're feeling."

// Reminder is one delivered nudge.
type Reminder struct {
	At      time.Time
	Message string
}

// Gate reports whether reminders should be delivered right now.
type Gate func() bool

// Scheduler owns a cron runner and a buffered delivery channel.
type Scheduler struct {
	cron    *cron.Cron
	out     chan Reminder
	gate    Gate
	now     func() time.Time
	message string
	log     *zap.Logger

	mu      sync.Mutex
	dropped int
	started bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithMessage overrides DefaultMessage.
func WithMessage(msg string) Option {
	return func(s *Scheduler) { s.message = msg }
}

// WithLogger sets the logger used for delivery diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(s *Scheduler) { s.log = log }
}

// WithBuffer sets the delivery channel capacity. The default is 1.
func WithBuffer(n int) Option {
	return func(s *Scheduler) { s.out = make(chan Reminder, n) }
}

// New parses schedule (standard five-field cron) in loc. Deliveries happen only
// while gate returns true; a nil gate always delivers.
func New(schedule string, loc *time.Location, gate Gate, opts ...Option) (*Scheduler, error) {
	if loc == nil {
		loc = time.Local
	}
	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		out:     make(chan Reminder, 1),
		gate:    gate,
		now:     func() time.Time { return time.Now().In(loc) },
		message: DefaultMessage,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if _, err := s.cron.AddFunc(schedule, s.Fire); err != nil {
		return nil, fmt.Errorf("parsing reminder schedule %q: %w", schedule, err)
	}
	return s, nil
}

// C delivers reminders.
func (s *Scheduler) C() <-chan Reminder { return s.out }

// Fire delivers one reminder immediately, subject to the gate. It never
// blocks: when the channel is full the reminder is dropped.
func (s *Scheduler) Fire() {
	if s.gate != nil && !s.gate() {
		return
	}
	r := Reminder{At: s.now(), Message: s.message}
	select {
	case s.out <- r:
		s.log.Debug("reminder delivered", zap.Time("at", r.At))
	default:
		s.mu.Lock()
		s.dropped++
		s.mu.Unlock()
		s.log.Debug("reminder dropped, channel full")
	}
}

// Dropped returns how many reminders were discarded.
func (s *Scheduler) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// Next returns the next scheduled fire time.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	if !entries[0].Next.IsZero() {
		return entries[0].Next
	}
	return entries[0].Schedule.Next(s.now())
}

// Start runs the cron loop in the background.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.cron.Start()
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	started := s.started
	s.started = false
	s.mu.Unlock()
	if started {
		<-s.cron.Stop().Done()
	}
}
