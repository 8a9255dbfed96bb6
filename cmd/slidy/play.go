package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/benwh1/slidy/internal/event"
	"github.com/benwh1/slidy/internal/platform/tui"
	"github.com/benwh1/slidy/internal/storage"
)

var (
	flagPlayEvent      string
	flagPlaySize       string
	flagPlayColoring   string
	flagPlayScheme     string
	flagPlayDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Solve scrambles interactively",
	Long: `Play a sliding puzzle event in the terminal. Slide pieces with the
arrow keys, wasd, or hjkl; each key names the direction a piece travels.
Press n for a new scramble, tab for your solve history, q to quit.

Events:
  single        - one board at a time
  fewest-moves  - one board, one hour, make every move count
  time-attack   - five boards against a ten minute clock
  relay         - every square size from 2x2 up to the chosen one

Examples:
  slidy play
  slidy play --size 5x5 --difficulty easy
  slidy play --event time-attack
  slidy play --event relay --size 6x6`,
	Run: func(cmd *cobra.Command, args []string) {
		pc := loadConfig().Play
		if flagPlayEvent != "" {
			pc.Event = flagPlayEvent
		}
		if flagPlaySize != "" {
			pc.Size = flagPlaySize
		}
		if flagPlayColoring != "" {
			pc.Coloring = flagPlayColoring
		}
		if flagPlayScheme != "" {
			pc.Scheme = flagPlayScheme
		}
		if flagPlayDifficulty != "" {
			pc.Difficulty = flagPlayDifficulty
		}

		if !event.Exists(pc.Event) {
			fmt.Fprintf(os.Stderr, "Error: unknown event %q\n", pc.Event)
			fmt.Fprintln(os.Stderr, "Run 'slidy events' to see available events.")
			os.Exit(1)
		}

		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
			store = nil
		}

		cfg, err := tui.ResolvePlay(pc, store, newRand())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		model, err := tui.RunPlay(cfg)
		if store != nil {
			store.Close()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		printResults(cfg, model)
	},
}

// printResults echoes the recorded solves once the TUI has exited.
func printResults(cfg tui.PlayConfig, model tui.PlayModel) {
	results := model.Results()
	if len(results) == 0 {
		return
	}

	fmt.Printf("%s:\n", cfg.Event.Title())
	var total time.Duration
	for i, s := range results {
		total += s.Duration
		fmt.Printf("  %2d.  %-6s  %8s  %d stm / %d mtm\n",
			i+1, s.Size, s.Duration.Round(10*time.Millisecond), s.MovesSTM, s.MovesMTM)
	}
	if len(results) > 1 {
		fmt.Printf("  Total: %s over %d boards\n",
			total.Round(10*time.Millisecond), len(results))
	}
}

func init() {
	playCmd.Flags().StringVar(&flagPlayEvent, "event", "", "Event to play (default from config)")
	playCmd.Flags().StringVar(&flagPlaySize, "size", "", "Board size as WxH (default from config)")
	playCmd.Flags().StringVar(&flagPlayColoring, "coloring", "", "Tile coloring (default from config)")
	playCmd.Flags().StringVar(&flagPlayScheme, "scheme", "", "Label scheme (default from config)")
	playCmd.Flags().StringVar(&flagPlayDifficulty, "difficulty", "", "Scramble difficulty: easy, normal, hard, or full")
}
