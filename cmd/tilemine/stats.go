package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tilemine/tilemine/internal/platform/tui"
	"github.com/tilemine/tilemine/internal/storage"
)

var flagStatsPlain bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Browse past session stats",
	Long: `Show recorded play sessions: when they ran, which theme, how many
blocks were placed and mined, and how far the player traveled.

Examples:
  tilemine stats
  tilemine stats --plain`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagStatsPlain, "plain", false, "Print a plain table instead of the interactive browser")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stats database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsPlain {
		printPlainStats(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunStats(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing stats: %v\n", err)
		os.Exit(1)
	}
}

func printPlainStats(store *storage.Store) {
	sessions, err := store.RecentSessions(20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tilemine play' to start the first one!")
		return
	}

	fmt.Printf("  %-16s  %-14s  %-9s  %-7s  %-8s  %s\n", "Date", "Theme", "Ticks", "Placed", "Removed", "Distance")
	fmt.Printf("  %-16s  %-14s  %-9s  %-7s  %-8s  %s\n", "----", "-----", "-----", "------", "-------", "--------")

	for _, rec := range sessions {
		fmt.Printf("  %-16s  %-14s  %-9d  %-7d  %-8d  %.1f\n",
			rec.CreatedAt.Format("2006-01-02 15:04"),
			rec.Theme,
			rec.Ticks,
			rec.BlocksPlaced,
			rec.BlocksRemoved,
			rec.MaxDistance,
		)
	}

	totals, err := store.AllTime()
	if err == nil {
		fmt.Println()
		fmt.Printf("All time: %d sessions, %d placed, %d removed\n",
			totals.Sessions, totals.BlocksPlaced, totals.BlocksRemoved)
	}
}
