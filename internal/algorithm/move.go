package algorithm

import (
	"fmt"
	"strconv"
)

// Move slides Amount pieces one cell each in direction Dir, in a single
// motion. A Move with Amount 3 and direction Up shifts the three pieces
// below the gap up by one cell, leaving the gap three cells lower.
type Move struct {
	Dir    Direction
	Amount int
}

// NewMove builds a move, rejecting non-positive amounts.
func NewMove(dir Direction, amount int) (Move, error) {
	if amount < 1 {
		return Move{}, fmt.Errorf("%w: got %d", ErrInvalidAmount, amount)
	}
	return Move{Dir: dir, Amount: amount}, nil
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Dir: m.Dir.Inverse(), Amount: m.Amount}
}

// Transpose returns m reflected in the puzzle's main diagonal.
func (m Move) Transpose() Move {
	return Move{Dir: m.Dir.Transpose(), Amount: m.Amount}
}

// Split breaks m into Amount single-tile moves.
func (m Move) Split() []Move {
	out := make([]Move, m.Amount)
	for i := range out {
		out[i] = Move{Dir: m.Dir, Amount: 1}
	}
	return out
}

// String renders m in move notation: the direction letter, followed by the
// amount when it is greater than one.
func (m Move) String() string {
	if m.Amount == 1 {
		return m.Dir.String()
	}
	return m.Dir.String() + strconv.Itoa(m.Amount)
}

// Metric measures the length of moves and move sequences.
type Metric uint8

const (
	// STM is the single-tile metric: a slide of n pieces counts as n moves.
	STM Metric = iota
	// MTM is the multi-tile metric: any slide counts as one move.
	MTM
)

// MoveLen returns the length of a single move under the metric.
func (met Metric) MoveLen(m Move) int {
	if met == STM {
		return m.Amount
	}
	return 1
}

// String returns the conventional lowercase abbreviation of the metric.
func (met Metric) String() string {
	if met == STM {
		return "stm"
	}
	return "mtm"
}
