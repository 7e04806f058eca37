package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/bptracker/internal/cli"
	"github.com/example/bptracker/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "bptracker",
		Short:   "Blueprint Tracker - track learned crafting blueprints and material needs",
		Version: version.String(),
		Long: `bptracker records crafting blueprints with their usage counts and per-craft
material costs in a plain text file, and totals the materials needed across
all of them. Run without arguments for the interactive menu.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.DetectAndStoreActor()
		},
		RunE: cli.RunMenu,
	}

	rootCmd.AddCommand(cli.CatalogCmd())
	rootCmd.AddCommand(cli.HistoryCmd())

	// Developer tools
	rootCmd.AddCommand(cli.DebugCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
