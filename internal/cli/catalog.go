package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/bptracker/internal/ports/primary"
	"github.com/example/bptracker/internal/wire"
)

// CatalogCmd returns the catalog command
func CatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List known blueprint types, items and their materials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printCatalog(cmd.OutOrStdout(), wire.CatalogService())
			return nil
		},
	}
}

func printCatalog(out io.Writer, cat primary.CatalogService) {
	heading := color.New(color.FgCyan, color.Bold)
	for _, category := range cat.Categories() {
		heading.Fprintf(out, "%s\n", category)
		for _, item := range cat.Items(category) {
			materials, _ := cat.Materials(item)
			fmt.Fprintf(out, "  %-16s %s\n", item, strings.Join(materials, ", "))
		}
	}
}
