package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/bptracker/internal/ports/primary"
	"github.com/example/bptracker/internal/wire"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show blueprint add/delete history",
	Long:  "Show the audit trail of blueprints added and deleted (newest first, default 50)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		limit, _ := cmd.Flags().GetInt("limit")
		action, _ := cmd.Flags().GetString("action")
		item, _ := cmd.Flags().GetString("item")

		if limit <= 0 {
			limit = 50
		}

		svc, err := wire.HistoryService()
		if err != nil {
			return err
		}

		entries, err := svc.ListHistory(ctx, primary.HistoryFilters{
			Action: action,
			Item:   item,
			Limit:  limit,
		})
		if err != nil {
			return fmt.Errorf("failed to fetch history: %w", err)
		}

		printHistoryEntries(cmd.OutOrStdout(), entries)
		return nil
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old history entries",
	Long:  "Delete history entries older than the specified number of days (default 30)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := NewContext()
		days, _ := cmd.Flags().GetInt("days")

		if days <= 0 {
			days = 30
		}

		svc, err := wire.HistoryService()
		if err != nil {
			return err
		}

		count, err := svc.PruneHistory(ctx, days)
		if err != nil {
			return fmt.Errorf("failed to prune history: %w", err)
		}

		out := cmd.OutOrStdout()
		if count == 0 {
			fmt.Fprintf(out, "No history entries older than %d days found.\n", days)
		} else {
			fmt.Fprintf(out, "✓ Pruned %d history entries older than %d days.\n", count, days)
		}
		return nil
	},
}

func printHistoryEntries(out io.Writer, entries []*primary.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No history entries found.")
		return
	}

	fmt.Fprintf(out, "Found %d history entries:\n\n", len(entries))
	for _, e := range entries {
		printHistoryEntry(out, e)
	}
}

func printHistoryEntry(out io.Writer, entry *primary.HistoryEntry) {
	// Format: timestamp | actor | action | line
	actorStr := entry.ActorID
	if actorStr == "" {
		actorStr = "-"
	}

	fmt.Fprintf(out, "%s | %-12s | %s | %s\n",
		formatTimestamp(entry.CreatedAt),
		actorStr,
		actionLabel(entry.Action),
		entry.Line,
	)
}

func actionLabel(action string) string {
	switch action {
	case "add":
		return color.New(color.FgGreen).Sprint("+ add   ")
	case "delete":
		return color.New(color.FgRed).Sprint("- delete")
	default:
		return "? " + action
	}
}

func formatTimestamp(ts string) string {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04:05")
}

// HistoryCmd returns the history command with all subcommands attached.
func HistoryCmd() *cobra.Command {
	historyCmd.Flags().IntP("limit", "n", 50, "Number of entries to show")
	historyCmd.Flags().String("action", "", "Filter by action (add or delete)")
	historyCmd.Flags().String("item", "", "Filter by item name")

	historyPruneCmd.Flags().Int("days", 30, "Delete entries older than N days")

	historyCmd.AddCommand(historyPruneCmd)

	return historyCmd
}
