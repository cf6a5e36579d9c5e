package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-layers/internal/platform/tui"
	"github.com/vovakirdan/tui-layers/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
	flagClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded sessions",
	Long: `Display the most recent sessions from the history database.

Only run statistics are recorded, never the layers themselves.

Examples:
  layers history
  layers history --limit 50
  layers history --browse
  layers history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse sessions in a scrollable table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded sessions")
}

func runHistory(cmd *cobra.Command, args []string) {
	cfg, _ := setup()

	// Open history storage
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	if flagBrowse {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, flagLimit, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'layers' or 'layers tui' to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-6s  %-6s  %-6s  %-5s  %s\n", "Date", "Mode", "Ticks", "Resets", "Live", "Seed")
	fmt.Printf("  %-16s  %-6s  %-6s  %-6s  %-5s  %s\n", "----", "----", "-----", "------", "----", "----")

	// Print sessions
	for _, s := range sessions {
		dateStr := s.StartedAt.Local().Format("2006-01-02 15:04")
		fmt.Printf("  %-16s  %-6s  %-6d  %-6d  %-5d  %d\n", dateStr, s.Mode, s.Ticks, s.Resets, s.LiveCells(), s.Seed)
	}

	// Show totals
	totals, err := store.GetTotals()
	if err == nil && totals.Sessions > 0 {
		fmt.Println()
		fmt.Printf("Total: %d sessions, %d ticks, longest run %d ticks\n", totals.Sessions, totals.Ticks, totals.LongestRun)
	}
}
