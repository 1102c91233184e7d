package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ulcerwise/internal/catalog"
	"github.com/alexanderramin/ulcerwise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCareCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "care [QUERY...]",
		Short: "Find pharmacies by name or area",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatCare(app.Catalog, strings.Join(args, " ")))
			return nil
		},
	}
}

func formatCare(cat *catalog.Catalog, query string) string {
	var b strings.Builder
	providers := cat.SearchProviders(query)
	if len(providers) == 0 {
		fmt.Fprintf(&b, "%s\n", formatter.Dim(fmt.Sprintf("No pharmacies match %q.", query)))
	}
	for _, p := range providers {
		b.WriteString(formatter.ProviderLine(p))
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n%s %s\n", formatter.Dim("Need help? Contact"), cat.SupportEmail())
	return b.String()
}
