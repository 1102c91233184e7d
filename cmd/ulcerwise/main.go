package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/ulcerwise/internal/advisory"
	"github.com/alexanderramin/ulcerwise/internal/app"
	"github.com/alexanderramin/ulcerwise/internal/catalog"
	"github.com/alexanderramin/ulcerwise/internal/cli"
	"github.com/alexanderramin/ulcerwise/internal/config"
	"github.com/alexanderramin/ulcerwise/internal/logging"
	"github.com/alexanderramin/ulcerwise/internal/metrics"
	"github.com/alexanderramin/ulcerwise/internal/reminder"
	"github.com/alexanderramin/ulcerwise/internal/scoring"
	"github.com/alexanderramin/ulcerwise/internal/session"
	"github.com/alexanderramin/ulcerwise/internal/store"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags, err := cli.ParseGlobalFlags(os.Args[1:])
	if err != nil {
		return err
	}

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Verbose: flags.Verbose,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	clock := scoring.SystemClock{Location: loc}
	cat := catalog.Default()
	collector := metrics.New()

	// Advisory calls are counted always and logged when asked.
	observers := advisory.MultiObserver{collector}
	if cfg.Advisory.LogCalls {
		observers = append(observers, advisory.NewLogObserver(log))
	}
	advisor := advisory.NewAdvisor(cfg.AdvisoryClientConfig(), advisory.WithObserver(observers))
	if !advisor.Configured() {
		log.Info("advisory service not configured")
	}

	svc := session.New(store.NewMemoryLogStore(), cat, advisor, clock,
		session.NewLogUseCaseObserver(log), collector)

	a := &cli.App{
		Session: svc,
		Catalog: cat,
		Clock:   clock,
		Advisor: advisor,
		NewScratch: func() app.Session {
			return session.New(store.NewMemoryLogStore(), cat, advisor, clock)
		},
		Metrics: collector,
		Log:     log,
	}

	// Detect interactive terminal for the default TUI entrypoint.
	a.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	if cfg.Reminders.Enabled {
		sched, err := reminder.New(cfg.Reminders.Schedule, loc, svc.RemindersEnabled, reminder.WithLogger(log))
		if err != nil {
			return err
		}
		a.Reminders = sched
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug("starting", zap.String("timezone", loc.String()))
	return cli.NewRootCmd(a).ExecuteContext(ctx)
}
