package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newInsightCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Show the gut-health tip of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.Clock.Now()
			day := now
			if date != "" {
				parsed, err := time.ParseInLocation("2006-01-02", date, now.Location())
				if err != nil {
					return fmt.Errorf("invalid --date %q: want YYYY-MM-DD", date)
				}
				day = parsed
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Daily insight", app.Catalog.DailyInsight(day)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show the tip for (YYYY-MM-DD, default today)")
	return cmd
}
