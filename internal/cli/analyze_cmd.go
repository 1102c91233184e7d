package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ulcerwise/internal/advisory"
	"github.com/alexanderramin/ulcerwise/internal/catalog"
	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze FOOD...",
		Short: "Ask the AI advisor how risky a food is",
		Long: `Sends the food description to the configured advisory service and prints
a short assessment. Without a credential the command explains that the
service is not configured; it never fails because the service is down.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			food := strings.Join(args, " ")
			res := app.Advisor.Analyze(cmd.Context(), food)
			fmt.Fprintln(cmd.OutOrStdout(), formatAdvice(app.Catalog, food, res, 80))
			return nil
		},
	}
}

func formatAdvice(cat *catalog.Catalog, food string, res advisory.Result, width int) string {
	var b strings.Builder
	b.WriteString(formatter.Header(food))
	b.WriteString("\n")
	if res.Outcome == advisory.OutcomeOK {
		b.WriteString(formatter.RenderMarkdown(res.Text, width))
	} else {
		b.WriteString(formatter.StyleYellow.Render(res.Text))
	}
	if tier, ok := cat.LookupFoodRisk(food); ok {
		fmt.Fprintf(&b, "\n%s %s\n", formatter.Dim("Catalog risk:"), formatter.TierBadge(tier))
	}
	return b.String()
}
