package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryUser  string
	flagHistoryPlain bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded play sessions",
	Long: `Display the most recent play sessions with their tick and shot counts.

On a terminal an interactive table is shown; use --plain (or pipe the
output) for plain text.

Examples:
  invaders history
  invaders history --limit 50 --plain
  invaders history --user alice
  invaders history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of sessions to show")
	historyCmd.Flags().StringVar(&flagHistoryUser, "user", "", "Only show sessions for this user")
	historyCmd.Flags().BoolVar(&flagHistoryPlain, "plain", false, "Print plain text instead of the interactive table")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded sessions")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Session history cleared.")
		return
	}

	var sessions []storage.Session
	if flagHistoryUser != "" {
		sessions, err = store.UserSessions(flagHistoryUser, flagHistoryLimit)
	} else {
		sessions, err = store.RecentSessions(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	totals, err := store.Totals()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving totals: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdout.Fd())
	if !flagHistoryPlain && term.IsTerminal(fd) {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(sessions, totals, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printHistory(sessions, totals)
}

func printHistory(sessions []storage.Session, totals *storage.Totals) {
	fmt.Println("Session History")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders play' to record one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-8s  %-12s  %8s  %6s  %7s  %6s\n", "Date", "Mode", "User", "Ticks", "Fired", "Dropped", "Time")
	fmt.Printf("  %-16s  %-8s  %-12s  %8s  %6s  %7s  %6s\n", "----", "----", "----", "-----", "-----", "-------", "----")

	for _, row := range tui.SessionRows(sessions) {
		fmt.Printf("  %-16s  %-8s  %-12s  %8s  %6s  %7s  %6s\n", row[0], row[1], row[2], row[3], row[4], row[5], row[6])
	}

	fmt.Println()
	fmt.Printf("Total: %d sessions, %d ticks, %d shots fired\n", totals.Sessions, totals.Ticks, totals.ShotsFired)
	if !totals.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", totals.LastPlayed.Format("2006-01-02 15:04"))
	}
}
