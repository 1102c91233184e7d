package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type tuiOptions struct {
	Demo        bool
	MetricsAddr string
}

func newTUICmd(app *App) *cobra.Command {
	var opts tuiOptions

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Demo, "demo", false, "Sign in as a demo user with sample entries")
	cmd.Flags().StringVar(&opts.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9464)")
	return cmd
}

// prepareTUI applies the options that must take effect before the first
// frame: the demo sign-in and seed.
func prepareTUI(ctx context.Context, app *App, opts tuiOptions) error {
	if !opts.Demo || app.Session.Authenticated() {
		return nil
	}
	if _, err := app.Session.Login(ctx, "ama@demo.ulcerwise", "demo"); err != nil {
		return fmt.Errorf("demo sign-in: %w", err)
	}
	if err := app.Session.SeedDemo(ctx); err != nil {
		return fmt.Errorf("demo seed: %w", err)
	}
	return nil
}

func runTUI(ctx context.Context, app *App, opts tuiOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := app.logger()

	if err := prepareTUI(ctx, app, opts); err != nil {
		return err
	}

	if lipgloss.HasDarkBackground() {
		formatter.MarkdownStyle = "dark"
	} else {
		formatter.MarkdownStyle = "light"
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.MetricsAddr != "" && app.Metrics != nil {
		go func() {
			if err := app.Metrics.Serve(ctx, opts.MetricsAddr, log); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	if app.Reminders != nil {
		app.Reminders.Start()
		defer app.Reminders.Stop()
	}

	log.Info("tui started", zap.Bool("demo", opts.Demo))
	p := tea.NewProgram(newAppModel(app),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stdout),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
