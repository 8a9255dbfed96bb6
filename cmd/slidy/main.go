// slidy is a sliding tile puzzle toolbox for the terminal.
//
// Usage:
//
//	slidy play                - Solve scrambles interactively
//	slidy scramble            - Print random scrambles
//	slidy solve <state>       - Find an optimal solution
//	slidy render <state>      - Render a state as SVG
//	slidy history [event]     - Show recorded solves
//	slidy events              - List available events
//	slidy serve               - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible scrambles
//	--db <path>      - Set database path (default: ~/.slidy/history.db)
//	--config <path>  - Set config file path
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/benwh1/slidy/internal/config"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slidy",
	Short: "Slidy - sliding tile puzzles in your terminal",
	Long: `Slidy is a toolbox for sliding tile puzzles of any rectangular size:
play them in the terminal, generate scrambles, find optimal solutions,
and render states as SVG images.

Available commands:
  play      - Solve scrambles interactively
  scramble  - Print random scrambles
  solve     - Find an optimal solution with IDA*
  render    - Render a state as SVG
  history   - View recorded solves
  events    - List available events
  serve     - Start SSH server for remote play

Examples:
  slidy play --size 5x5
  slidy scramble --count 10
  slidy solve "8 3 1/5 2 7/4 6 0"
  slidy render --size 4x4 -o solved.svg
  slidy serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slidy/history.db", "Path to solve history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scrambleCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(serveCmd)
}

// newRand builds the RNG used by scramble-producing commands.
func newRand() *rand.Rand {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// loadConfig loads the app config, exiting when a custom file is broken.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
