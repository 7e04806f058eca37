package cli

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/example/bptracker/internal/ports/primary"
	"github.com/example/bptracker/internal/wire"
)

// DebugCmd returns the debug command
func DebugCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debug",
		Short: "Debug and diagnostic commands",
		Long:  `Tools for inspecting the blueprint store and configuration.`,
	}

	cmd.AddCommand(debugRecordsCmd())
	cmd.AddCommand(debugConfigCmd())

	return cmd
}

func debugRecordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "Dump how every stored line parses",
		Long: `Parse each line of the blueprint store and dump the resulting record,
or the reason the line was rejected.

Useful for finding lines that "View Total Materials Needed" skips.

Examples:
  bptracker debug records`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inspections, err := wire.BlueprintService().InspectRecords(NewContext())
			if err != nil {
				return err
			}
			dumpInspections(cmd.OutOrStdout(), inspections)
			return nil
		},
	}
}

func debugConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Store:   %s\n", cfg.StorePath)
			if cfg.HistoryEnabled() {
				fmt.Fprintf(out, "History: %s\n", cfg.HistoryPath)
			} else {
				fmt.Fprintln(out, "History: disabled")
			}
			fmt.Fprintf(out, "Actor:   %s\n", GetActorID())
			return nil
		},
	}
}

func dumpInspections(out io.Writer, inspections []*primary.RecordInspection) {
	if len(inspections) == 0 {
		fmt.Fprintln(out, "Blueprint store is empty.")
		return
	}

	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
	for _, insp := range inspections {
		fmt.Fprintf(out, "--- line %d: %s\n", insp.Number, insp.Line)
		if insp.Err != "" {
			fmt.Fprintf(out, "error: %s\n", insp.Err)
			continue
		}
		cfg.Fdump(out, insp.Record)
	}
}
