package event

import (
	"fmt"
	"time"

	"github.com/benwh1/slidy/internal/puzzle"
)

func init() {
	Register("relay", "Square relay", func(size puzzle.Size) (Event, error) {
		return NewRelay(size)
	})
}

// Relay is a ladder of boards solved back to back, the squares from 2x2 up
// to a final size.
type Relay struct {
	Ladder []puzzle.Size
}

// NewRelay builds the square ladder ending at size, which must be square.
func NewRelay(size puzzle.Size) (Relay, error) {
	if size.Width() != size.Height() {
		return Relay{}, fmt.Errorf("%w: relay runs on squares, got %v", ErrInvalidEventSize, size)
	}
	ladder := make([]puzzle.Size, 0, size.Width()-1)
	for n := 2; n <= size.Width(); n++ {
		ladder = append(ladder, puzzle.MustSize(n, n))
	}
	return Relay{Ladder: ladder}, nil
}

func (r Relay) ID() string    { return "relay" }
func (r Relay) Title() string { return "Square relay" }

func (r Relay) Sizes() []puzzle.Size {
	out := make([]puzzle.Size, len(r.Ladder))
	copy(out, r.Ladder)
	return out
}

func (r Relay) TimeLimit() time.Duration { return 0 }
