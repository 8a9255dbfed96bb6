// Package event defines the solve events players can run and a registry the
// CLI and TUI use to look them up by name. Events register themselves in
// init() functions, so importing this package is enough to discover them.
package event

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/benwh1/slidy/internal/puzzle"
)

// ErrInvalidEventSize is returned by factories for board sizes an event
// cannot run on.
var ErrInvalidEventSize = errors.New("event: size not valid for this event")

// Event is a solve session template: which boards to solve, in which order,
// and how much total time is allowed.
type Event interface {
	// ID returns the short name used on the command line and in storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Sizes returns the boards of the event in solve order. The runner
	// stops after the last board or when the time limit expires,
	// whichever comes first.
	Sizes() []puzzle.Size

	// TimeLimit returns the total time allowed, zero meaning unlimited.
	TimeLimit() time.Duration
}

// Info contains metadata about a registered event.
type Info struct {
	ID    string
	Title string
}

// Factory builds an event for the requested board size.
type Factory func(size puzzle.Size) (Event, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an event factory to the registry. Typically called from an
// event's init() function. Panics if the ID is already taken.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("event: %q already registered", id))
	}
	factories[id] = f
	titles[id] = title
}

// List returns all registered events, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Create builds the event registered under id for the given board size.
// Returns an error if the ID is not registered or the size does not fit.
func Create(id string, size puzzle.Size) (Event, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("event: unknown event %q", id)
	}
	return f(size)
}

// Exists reports whether an event with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
