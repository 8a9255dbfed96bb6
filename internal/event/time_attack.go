package event

import (
	"time"

	"github.com/benwh1/slidy/internal/puzzle"
)

// Defaults for the registered time attack.
const (
	DefaultTimeAttackCount = 5
	DefaultTimeAttackLimit = 10 * time.Minute
)

func init() {
	Register("time-attack", "Time attack", func(size puzzle.Size) (Event, error) {
		return NewTimeAttack(size, DefaultTimeAttackCount, DefaultTimeAttackLimit), nil
	})
}

// TimeAttack is a run of back-to-back solves of one board size against a
// shared clock. The score is how many of them finish before the limit.
type TimeAttack struct {
	Size  puzzle.Size
	Count int
	Limit time.Duration
}

// NewTimeAttack returns a time attack of count solves. Counts below one are
// raised to one.
func NewTimeAttack(size puzzle.Size, count int, limit time.Duration) TimeAttack {
	return TimeAttack{Size: size, Count: max(count, 1), Limit: limit}
}

func (t TimeAttack) ID() string    { return "time-attack" }
func (t TimeAttack) Title() string { return "Time attack" }

func (t TimeAttack) Sizes() []puzzle.Size {
	sizes := make([]puzzle.Size, t.Count)
	for i := range sizes {
		sizes[i] = t.Size
	}
	return sizes
}

func (t TimeAttack) TimeLimit() time.Duration { return t.Limit }
