package cli

import (
	"time"

	"github.com/alexanderramin/ulcerwise/internal/advisory"
	"github.com/alexanderramin/ulcerwise/internal/app"
	"github.com/alexanderramin/ulcerwise/internal/catalog"
	"github.com/alexanderramin/ulcerwise/internal/metrics"
	"github.com/alexanderramin/ulcerwise/internal/reminder"
	"github.com/alexanderramin/ulcerwise/internal/scoring"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ReminderFeed is the part of reminder.Scheduler the TUI needs.
type ReminderFeed interface {
	C() <-chan reminder.Reminder
	Next() time.Time
	Start()
	Stop()
}

// App holds everything CLI commands and the TUI depend on.
type App struct {
	Session app.Session
	Catalog *catalog.Catalog
	Clock   scoring.Clock
	Advisor advisory.Analyzer

	// NewScratch builds an isolated, signed-out session for one-shot
	// commands so they never touch Session.
	NewScratch func() app.Session

	// Optional.
	Metrics   *metrics.Collector
	Reminders ReminderFeed
	Log       *zap.Logger

	IsInteractive func() bool
}

func (a *App) logger() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}
	return a.Log
}

// NewRootCmd creates the top-level "ulcerwise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ulcerwise",
		Short: "Track meals, symptoms and medication against a daily ulcer-risk score",
		Long: `UlcerWise keeps a journal of meals, symptoms and medication for people
managing peptic ulcers, and turns it into a daily risk score and a weekly
exposure chart. Run without arguments in a terminal to open the app.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(cmd.Context(), app, tuiOptions{})
			}
			return cmd.Help()
		},
	}

	addGlobalFlags(root.PersistentFlags())

	root.AddCommand(
		newTUICmd(app),
		newCatalogCmd(app),
		newCareCmd(app),
		newAnalyzeCmd(app),
		newInsightCmd(app),
		newScoreCmd(app),
	)

	return root
}
