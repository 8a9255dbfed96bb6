package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/benwh1/slidy/internal/puzzle"
	"github.com/benwh1/slidy/internal/solver"
)

var (
	flagSolveHeuristic string
	flagSolveMaxBound  int
	flagSolveNodes     uint64
	flagSolveStats     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [state]",
	Short: "Find an optimal solution with IDA*",
	Long: `Find a shortest solution for a puzzle state, measured in single-tile
moves. The state is given as rows of space-separated piece numbers joined
by slashes, with 0 for the gap.

With no argument, states are read from stdin, one per line.

Examples:
  slidy solve "8 3 1/5 2 7/4 6 0"
  slidy solve --heuristic md "1 2 3 4/5 6 7 8/9 10 11 12/13 15 14 0"
  slidy scramble --count 5 | slidy solve --stats`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		heuristic, err := solver.ParseHeuristic(flagSolveHeuristic)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		s := solver.New(
			solver.WithHeuristic(heuristic),
			solver.WithMaxBound(flagSolveMaxBound),
			solver.WithNodeBudget(flagSolveNodes),
		)

		if len(args) == 1 {
			solveState(s, args[0])
			return
		}

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			solveState(s, line)
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
	},
}

// solveState solves one state and prints the solution, exiting on failure.
func solveState(s *solver.Solver, state string) {
	p, err := puzzle.Parse(state)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	solution, err := s.Solve(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(solution)

	if flagSolveStats {
		stats := s.Stats()
		fmt.Printf("  length: %d stm / %d mtm\n", solution.LenSTM(), solution.LenMTM())
		for _, it := range stats.Iterations {
			fmt.Printf("  bound %d: %d nodes\n", it.Bound, it.Nodes)
		}
		fmt.Printf("  total: %d nodes in %s\n", stats.Nodes, stats.Duration.Round(time.Microsecond))
	}
}

func init() {
	solveCmd.Flags().StringVar(&flagSolveHeuristic, "heuristic", "lc", "Lower bound function: manhattan (md) or linear-conflict (lc)")
	solveCmd.Flags().IntVar(&flagSolveMaxBound, "max-bound", solver.DefaultMaxBound, "Give up once the depth bound would exceed this")
	solveCmd.Flags().Uint64Var(&flagSolveNodes, "nodes", 0, "Node budget for the search (0 = unlimited)")
	solveCmd.Flags().BoolVar(&flagSolveStats, "stats", false, "Print search statistics after each solution")
}
