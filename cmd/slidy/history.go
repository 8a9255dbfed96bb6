package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/benwh1/slidy/internal/event"
	"github.com/benwh1/slidy/internal/platform/tui"
	"github.com/benwh1/slidy/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history [event]",
	Short: "View recorded solves",
	Long: `Browse your solve history. With no argument an interactive browser
opens: tab cycles events, b toggles between recent solves and the fastest
solves of your most played size.

With an event ID the fastest solves of every recorded size are printed
instead.

Examples:
  slidy history
  slidy history single
  slidy history time-attack --db /tmp/other.db`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not open history database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		if len(args) == 0 {
			runHistoryBrowser(store)
			return
		}
		printEventHistory(store, args[0])
	},
}

// runHistoryBrowser opens the interactive history view sized to the
// terminal.
func runHistoryBrowser(store *storage.Store) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 80, 24
	}

	if _, err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printEventHistory prints the fastest solves of one event, grouped by
// board size with the most played size first.
func printEventHistory(store *storage.Store, eventID string) {
	if !event.Exists(eventID) {
		fmt.Fprintf(os.Stderr, "Error: unknown event %q\n", eventID)
		fmt.Fprintln(os.Stderr, "Run 'slidy events' to see available events.")
		os.Exit(1)
	}

	title := eventID
	for _, info := range event.List() {
		if info.ID == eventID {
			title = info.Title
			break
		}
	}

	sizes, err := store.SolvedSizes(eventID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(sizes) == 0 {
		fmt.Printf("%s: no solves recorded yet.\n", title)
		fmt.Printf("Run 'slidy play --event %s' to record the first one!\n", eventID)
		return
	}

	fmt.Println(title)
	for _, size := range sizes {
		stats, err := store.Stats(eventID, size)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		solves, err := store.BestSolves(eventID, size, 10)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println()
		fmt.Printf("%s - %d solves, best %s, mean %s\n",
			size, stats.Solves,
			stats.BestTime.Round(10*time.Millisecond),
			stats.MeanTime.Round(10*time.Millisecond))
		fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %s\n", "#", "Time", "STM", "MTM", "Date")
		fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %s\n", "----", "--------", "-----", "-----", "----------------")
		for i, s := range solves {
			fmt.Printf("  %-4d  %-8s  %-5d  %-5d  %s\n",
				i+1,
				s.Duration.Round(10*time.Millisecond),
				s.MovesSTM, s.MovesMTM,
				s.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
}
