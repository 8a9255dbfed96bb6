package event

import (
	"time"

	"github.com/benwh1/slidy/internal/puzzle"
)

func init() {
	Register("single", "Single solve", func(size puzzle.Size) (Event, error) {
		return NewSingle(size), nil
	})
}

// Single is one solve of one board, untimed.
type Single struct {
	Size puzzle.Size
}

// NewSingle returns a single solve of the given board.
func NewSingle(size puzzle.Size) Single { return Single{Size: size} }

func (s Single) ID() string               { return "single" }
func (s Single) Title() string            { return "Single solve" }
func (s Single) Sizes() []puzzle.Size     { return []puzzle.Size{s.Size} }
func (s Single) TimeLimit() time.Duration { return 0 }
