package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/benwh1/slidy/internal/algorithm"
	"github.com/benwh1/slidy/internal/config"
	"github.com/benwh1/slidy/internal/event"
	"github.com/benwh1/slidy/internal/puzzle"
	"github.com/benwh1/slidy/internal/render"
	"github.com/benwh1/slidy/internal/scramble"
	"github.com/benwh1/slidy/internal/storage"
)

// PlayConfig carries everything a solve session needs.
type PlayConfig struct {
	// Event decides the boards to solve and the time limit, if any.
	Event event.Event

	// Store receives finished solves. A nil store disables history.
	Store *storage.Store

	// Scrambler produces the start state for each board.
	Scrambler scramble.Scrambler

	// Rand drives the scrambler.
	Rand *rand.Rand

	Coloring  render.Coloring
	Scheme    render.Scheme
	ShowTimer bool
}

// ResolvePlay builds a PlayConfig from the configured names, choosing the
// scrambler from the difficulty preset.
func ResolvePlay(pc config.PlayConfig, store *storage.Store, rng *rand.Rand) (PlayConfig, error) {
	size, err := puzzle.ParseSize(pc.Size)
	if err != nil {
		return PlayConfig{}, err
	}
	ev, err := event.Create(pc.Event, size)
	if err != nil {
		return PlayConfig{}, err
	}
	coloring, err := render.ParseColoring(pc.Coloring)
	if err != nil {
		return PlayConfig{}, err
	}
	scheme, err := render.ParseScheme(pc.Scheme)
	if err != nil {
		return PlayConfig{}, err
	}

	preset, _ := config.ParseDifficulty(pc.Difficulty)
	var scrambler scramble.Scrambler = scramble.RandomState{}
	if moves := preset.ScrambleMoves(size.Area()); moves > 0 {
		scrambler = scramble.RandomMoves{Moves: moves, AllowBacktracking: true}
	}

	return PlayConfig{
		Event:     ev,
		Store:     store,
		Scrambler: scrambler,
		Rand:      rng,
		Coloring:  coloring,
		Scheme:    scheme,
		ShowTimer: pc.ShowTimer,
	}, nil
}

// PlayModel is the Bubble Tea model for an interactive solve session. It
// walks the player through every board of the event, recording each solve.
type PlayModel struct {
	cfg       PlayConfig
	keys      PlayKeyMap
	help      help.Model
	stopwatch stopwatch.Model

	sizes      []puzzle.Size
	index      int
	start      puzzle.Puzzle
	board      puzzle.Puzzle
	moves      algorithm.Algorithm
	boardStart time.Time
	eventStart time.Time
	results    []storage.Solve

	width    int
	height   int
	timedOut bool
	done     bool
	quitting bool
}

// NewPlayModel creates a play model and scrambles the first board.
func NewPlayModel(cfg PlayConfig) (PlayModel, error) {
	sizes := cfg.Event.Sizes()
	if len(sizes) == 0 {
		return PlayModel{}, fmt.Errorf("tui: event %q has no boards", cfg.Event.ID())
	}

	m := PlayModel{
		cfg:       cfg,
		keys:      DefaultPlayKeyMap(),
		help:      help.New(),
		stopwatch: stopwatch.NewWithInterval(time.Second / 10),
		sizes:     sizes,
	}

	var err error
	if m, err = m.scrambled(); err != nil {
		return PlayModel{}, err
	}
	m.eventStart = time.Now()
	return m, nil
}

// scrambled returns a copy of m with a fresh scramble for the current board.
func (m PlayModel) scrambled() (PlayModel, error) {
	p, err := m.cfg.Scrambler.Scramble(m.sizes[m.index], m.cfg.Rand)
	if err != nil {
		return m, err
	}
	m.start = p
	m.board = p
	m.moves = algorithm.Algorithm{}
	m.boardStart = time.Now()
	return m, nil
}

// Init starts the session timer.
func (m PlayModel) Init() tea.Cmd {
	return m.stopwatch.Init()
}

// Update handles messages for the solve screen.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.stopwatch, cmd = m.stopwatch.Update(msg)

	if limit := m.cfg.Event.TimeLimit(); limit > 0 && !m.done && time.Since(m.eventStart) >= limit {
		m.timedOut = true
		m.done = true
		return m, tea.Batch(cmd, m.stopwatch.Stop())
	}
	return m, cmd
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Scramble):
		return m.rescramble()
	}

	if m.done {
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok {
		return m.applyMove(algorithm.Move{Dir: dir, Amount: 1})
	}
	return m, nil
}

// rescramble abandons the current board, or restarts the whole event once
// it has finished.
func (m PlayModel) rescramble() (tea.Model, tea.Cmd) {
	if m.done {
		m.index = 0
		m.results = nil
		m.done = false
		m.timedOut = false
		m.eventStart = time.Now()
	}
	next, err := m.scrambled()
	if err != nil {
		return m, nil
	}
	return next, tea.Batch(next.stopwatch.Reset(), next.stopwatch.Start())
}

// applyMove slides pieces and handles board completion. Illegal slides are
// ignored.
func (m PlayModel) applyMove(mv algorithm.Move) (tea.Model, tea.Cmd) {
	next, err := m.board.Apply(mv)
	if err != nil {
		return m, nil
	}
	m.board = next
	m.moves.PushCombine(mv)

	if !m.board.IsSolved() {
		return m, nil
	}
	return m.boardSolved()
}

// boardSolved records the finished solve and advances to the next board.
func (m PlayModel) boardSolved() (tea.Model, tea.Cmd) {
	solve := storage.Solve{
		EventID:   m.cfg.Event.ID(),
		Size:      m.start.Size().String(),
		Scramble:  m.start.String(),
		Solution:  m.moves.String(),
		MovesSTM:  m.moves.LenSTM(),
		MovesMTM:  m.moves.LenMTM(),
		Duration:  time.Since(m.boardStart),
		CreatedAt: time.Now(),
	}
	m.results = append(m.results, solve)

	if m.cfg.Store != nil {
		//nolint:errcheck // Best-effort save, the session continues regardless
		m.cfg.Store.SaveSolve(solve)
	}

	m.index++
	if m.index >= len(m.sizes) {
		m.done = true
		return m, m.stopwatch.Stop()
	}

	next, err := m.scrambled()
	if err != nil {
		next.done = true
		return next, next.stopwatch.Stop()
	}
	return next, next.stopwatch.Reset()
}

// View renders the solve screen.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	size := m.sizes[min(m.index, len(m.sizes)-1)]
	sub := size.String()
	if len(m.sizes) > 1 {
		sub = fmt.Sprintf("%v  board %d/%d", size, min(m.index+1, len(m.sizes)), len(m.sizes))
	}
	b.WriteString("  " + titleStyle.Render(m.cfg.Event.Title()) + "  " + subtleStyle.Render(sub))
	b.WriteString("\n\n")

	board := frameStyle.Render(RenderBoard(m.board, m.cfg.Coloring, m.cfg.Scheme))
	b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(board))
	b.WriteString("\n\n")

	b.WriteString("  " + m.statusLine())
	b.WriteString("\n")

	if m.done {
		b.WriteString("\n  " + m.summary())
		b.WriteString("\n")
	}

	b.WriteString("\n  " + m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// statusLine shows the move counters, the timer, and the remaining time when
// the event has a limit.
func (m PlayModel) statusLine() string {
	parts := []string{
		fmt.Sprintf("%d stm / %d mtm", m.moves.LenSTM(), m.moves.LenMTM()),
	}
	if m.cfg.ShowTimer {
		parts = append(parts, formatDuration(m.stopwatch.Elapsed()))
	}
	if limit := m.cfg.Event.TimeLimit(); limit > 0 {
		left := limit - time.Since(m.eventStart)
		if left < 0 {
			left = 0
		}
		parts = append(parts, "limit "+formatDuration(left))
	}
	return subtleStyle.Render(strings.Join(parts, "   "))
}

// summary describes the finished event.
func (m PlayModel) summary() string {
	if m.timedOut {
		return failedStyle.Render(fmt.Sprintf("Time limit reached with %d of %d boards solved. Press n to retry.",
			len(m.results), len(m.sizes)))
	}

	if len(m.results) == 1 {
		r := m.results[0]
		return solvedStyle.Render(fmt.Sprintf("Solved in %s, %d moves. Press n for a new scramble.",
			formatDuration(r.Duration), r.MovesSTM))
	}

	var total time.Duration
	stm := 0
	for _, r := range m.results {
		total += r.Duration
		stm += r.MovesSTM
	}
	return solvedStyle.Render(fmt.Sprintf("Solved %d boards in %s, %d moves. Press n to go again.",
		len(m.results), formatDuration(total), stm))
}

// Finished reports whether every board of the event was solved.
func (m PlayModel) Finished() bool {
	return m.done && !m.timedOut
}

// TimedOut reports whether the event clock ran out.
func (m PlayModel) TimedOut() bool {
	return m.timedOut
}

// IsQuitting reports whether the player asked to quit.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// Results returns the solves recorded so far.
func (m PlayModel) Results() []storage.Solve {
	return m.results
}

// formatDuration renders d as seconds with tenths, switching to m:ss.t at
// one minute.
func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := d.Milliseconds() / 100
	if d < time.Minute {
		return fmt.Sprintf("%d.%ds", tenths/10, tenths%10)
	}
	mins := tenths / 600
	rest := tenths % 600
	return fmt.Sprintf("%d:%02d.%d", mins, rest/10, rest%10)
}

// RunPlay runs a solve session in the local terminal, with the history
// browser a tab away. The final solve model is returned so callers can
// print a summary.
func RunPlay(cfg PlayConfig) (PlayModel, error) {
	model, err := NewSessionModel(cfg, cfg.Store, 0, 0)
	if err != nil {
		return PlayModel{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return PlayModel{}, err
	}

	m, ok := finalModel.(SessionModel)
	if !ok {
		return PlayModel{}, nil
	}
	return m.play, nil
}
