package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/benwh1/slidy/internal/event"
	"github.com/benwh1/slidy/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the event sidebar
	sidebarWidth       = 20  // Width of the event sidebar
	maxHistoryRows     = 100 // Max solves to load
)

// HistoryModel is the Bubble Tea model for the solve history browser. It
// shows recent solves per event, or the fastest solves of the event's most
// recorded size.
type HistoryModel struct {
	events      []event.Info
	eventCursor int
	store       *storage.Store
	solves      []storage.Solve
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	bests       bool
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewHistoryModel creates a history model sized to the given terminal.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		events:      event.List(),
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	if len(m.events) > 0 {
		m.loadSolves(m.events[0].ID)
	}
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Size", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "STM", Width: 5},
		{Title: "MTM", Width: 5},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadSolves fills the table for the given event.
func (m *HistoryModel) loadSolves(eventID string) {
	m.solves = nil
	if m.store != nil {
		if solves, err := m.fetchSolves(eventID); err == nil {
			m.solves = solves
		}
	}
	m.updateTableRows()
}

// fetchSolves queries recent solves, or the fastest solves of the event's
// most recorded size when bests mode is on.
func (m *HistoryModel) fetchSolves(eventID string) ([]storage.Solve, error) {
	if !m.bests {
		return m.store.RecentSolves(eventID, maxHistoryRows)
	}
	sizes, err := m.store.SolvedSizes(eventID)
	if err != nil || len(sizes) == 0 {
		return nil, err
	}
	return m.store.BestSolves(eventID, sizes[0], maxHistoryRows)
}

// updateTableRows updates the table with the current solves.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.solves))
	for i, s := range m.solves {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Size,
			formatDuration(s.Duration),
			fmt.Sprintf("%d", s.MovesSTM),
			fmt.Sprintf("%d", s.MovesMTM),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history browser.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextEvent):
			if len(m.events) > 0 {
				m.eventCursor = (m.eventCursor + 1) % len(m.events)
				m.loadSolves(m.events[m.eventCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevEvent):
			if len(m.events) > 0 {
				m.eventCursor--
				if m.eventCursor < 0 {
					m.eventCursor = len(m.events) - 1
				}
				m.loadSolves(m.events[m.eventCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Bests):
			m.bests = !m.bests
			if len(m.events) > 0 {
				m.loadSolves(m.events[m.eventCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history browser.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "SOLVE HISTORY"
	if m.bests {
		title = "FASTEST SOLVES"
	}
	if len(m.events) > 0 {
		title = fmt.Sprintf("%s - %s", title, m.events[m.eventCursor].Title)
	}

	b.WriteString(header.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the browser with a sidebar for event selection.
func (m HistoryModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Events\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, ev := range m.events {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.eventCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := ev.Title
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	sidebarRendered := sidebarStyle.Render(sidebar.String())
	tableRendered := frameStyle.Render(m.renderTableContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout renders the browser with event tabs above the table.
func (m HistoryModel) renderNarrowLayout() string {
	var b strings.Builder

	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.events))
	for i, ev := range m.events {
		shortName := ev.Title
		if len(shortName) > 10 {
			shortName = shortName[:9] + "."
		}
		if i == m.eventCursor {
			tabs[i] = activeTabStyle.Render(shortName)
		} else {
			tabs[i] = subtleStyle.Render(" " + shortName + " ")
		}
	}

	// Wrap tabs if needed
	tabLine := strings.Join(tabs, " ")
	if len(tabLine) > m.width-4 {
		// Just show the current event with arrows
		tabLine = fmt.Sprintf("< %s >", m.events[m.eventCursor].Title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(frameStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.solves) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No solves recorded yet.\nFinish a solve to start your history!")
	}

	return m.table.View()
}

// IsGoingBack returns true if the user wants to return to the solve screen.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history browser as its own program. Returns true if
// the user backed out rather than quitting.
func RunHistory(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewHistoryModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(HistoryModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
