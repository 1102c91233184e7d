package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ulcerwise/internal/catalog"
	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	"github.com/alexanderramin/ulcerwise/internal/domain"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the reference foods and symptoms",
	}
	cmd.AddCommand(newCatalogFoodsCmd(app), newCatalogSymptomsCmd(app))
	return cmd
}

func newCatalogFoodsCmd(app *App) *cobra.Command {
	var tier string

	cmd := &cobra.Command{
		Use:   "foods",
		Short: "List local foods with their ulcer-risk tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			foods := app.Catalog.Foods()
			if tier != "" {
				t := domain.RiskTier(strings.ToLower(tier))
				if !t.Valid() {
					return fmt.Errorf("unknown tier %q (want low, medium or high)", tier)
				}
				foods = app.Catalog.FoodsByTier(t)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatFoods(foods))
			return nil
		},
	}

	cmd.Flags().StringVar(&tier, "tier", "", "Only show foods in this tier (low, medium, high)")
	return cmd
}

func formatFoods(foods []catalog.FoodItem) string {
	rows := make([][]string, 0, len(foods))
	for _, f := range foods {
		rows = append(rows, []string{f.Name, formatter.TierBadge(f.Tier)})
	}
	return formatter.RenderTable([]string{"FOOD", "RISK"}, rows)
}

func newCatalogSymptomsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "symptoms",
		Short: "List the suggested symptom names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, s := range app.Catalog.SymptomSuggestions() {
				fmt.Fprintf(out, "%s %s\n", formatter.KindIcon(domain.EntrySymptom), s)
			}
			return nil
		},
	}
}
