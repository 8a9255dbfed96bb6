package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/benwh1/slidy/internal/puzzle"
	"github.com/benwh1/slidy/internal/render"
)

// Styles shared by the solve and history screens.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	frameStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	solvedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// RenderBoard draws the puzzle as a grid of colored cells. A piece keeps the
// color of its solved position, so the colors travel with the pieces while
// the board is scrambled. The gap is left blank.
func RenderBoard(p puzzle.Puzzle, coloring render.Coloring, scheme render.Scheme) string {
	size := p.Size()
	numLabels := scheme.NumLabels(size)
	cellWidth := len(strconv.Itoa(size.NumPieces())) + 2

	rows := make([]string, 0, size.Height())
	for y := 0; y < size.Height(); y++ {
		cells := make([]string, 0, size.Width())
		for x := 0; x < size.Width(); x++ {
			piece := p.PieceAt(x, y)
			if piece == 0 {
				cells = append(cells, strings.Repeat(" ", cellWidth))
				continue
			}
			sx, sy := p.SolvedXY(piece)
			c := coloring.Color(scheme.Label(size, sx, sy), numLabels)
			style := lipgloss.NewStyle().
				Background(lipgloss.Color(c.Hex())).
				Foreground(contrastColor(c)).
				Bold(true)
			cells = append(cells, style.Render(fmt.Sprintf("%*d ", cellWidth-1, piece)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// contrastColor picks black or white text for readability on the given fill.
func contrastColor(c colorful.Color) lipgloss.Color {
	if 0.299*c.R+0.587*c.G+0.114*c.B > 0.5 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
