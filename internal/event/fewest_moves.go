package event

import (
	"time"

	"github.com/benwh1/slidy/internal/puzzle"
)

// DefaultFewestMovesLimit is the deadline for a fewest-moves attempt.
const DefaultFewestMovesLimit = time.Hour

func init() {
	Register("fewest-moves", "Fewest moves", func(size puzzle.Size) (Event, error) {
		return NewFewestMoves(size), nil
	})
}

// FewestMoves is one solve scored by move count instead of time. Moves may
// be taken back freely; only the deadline matters.
type FewestMoves struct {
	Size  puzzle.Size
	Limit time.Duration
}

// NewFewestMoves returns a fewest-moves attempt with the default deadline.
func NewFewestMoves(size puzzle.Size) FewestMoves {
	return FewestMoves{Size: size, Limit: DefaultFewestMovesLimit}
}

func (f FewestMoves) ID() string               { return "fewest-moves" }
func (f FewestMoves) Title() string            { return "Fewest moves" }
func (f FewestMoves) Sizes() []puzzle.Size     { return []puzzle.Size{f.Size} }
func (f FewestMoves) TimeLimit() time.Duration { return f.Limit }
