package render

import (
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/benwh1/slidy/internal/puzzle"
)

// Renderer draws puzzle states as SVG. The zero value is not usable; build
// with NewRenderer and adjust with the chainable setters:
//
//	r := render.NewRenderer().TileSize(60).Rounding(6)
//	r.Render(w, p)
type Renderer struct {
	coloring  Coloring
	scheme    Scheme
	tileSize  int
	tileGap   int
	rounding  int
	padding   int
	fontSize  int
	border    int
	borderCol colorful.Color
	textCol   colorful.Color
	hasBG     bool
	bg        colorful.Color
}

// NewRenderer returns a renderer with the default look: 75 pixel tiles,
// rainbow coloring over distinct pieces, black centered labels, transparent
// background.
func NewRenderer() *Renderer {
	return &Renderer{
		coloring: RainbowBright{},
		scheme:   Pieces{},
		tileSize: 75,
		fontSize: 30,
	}
}

// Coloring sets how labels map to tile colors.
func (r *Renderer) Coloring(c Coloring) *Renderer { r.coloring = c; return r }

// Scheme sets how solved positions map to labels.
func (r *Renderer) Scheme(s Scheme) *Renderer { r.scheme = s; return r }

// TileSize sets the tile side length in pixels.
func (r *Renderer) TileSize(px int) *Renderer { r.tileSize = max(px, 1); return r }

// TileGap sets the spacing between tiles in pixels.
func (r *Renderer) TileGap(px int) *Renderer { r.tileGap = max(px, 0); return r }

// Rounding sets the tile corner radius in pixels.
func (r *Renderer) Rounding(px int) *Renderer { r.rounding = max(px, 0); return r }

// Padding sets the blank margin around the puzzle in pixels.
func (r *Renderer) Padding(px int) *Renderer { r.padding = max(px, 0); return r }

// FontSize sets the label font size in pixels. Zero hides the labels.
func (r *Renderer) FontSize(px int) *Renderer { r.fontSize = max(px, 0); return r }

// Border draws a border of the given width around each tile.
func (r *Renderer) Border(px int, c colorful.Color) *Renderer {
	r.border = max(px, 0)
	r.borderCol = c
	return r
}

// TextColor sets the label color. The default is black.
func (r *Renderer) TextColor(c colorful.Color) *Renderer { r.textCol = c; return r }

// Background fills the image background; the default is transparent.
func (r *Renderer) Background(c colorful.Color) *Renderer {
	r.hasBG = true
	r.bg = c
	return r
}

// Width returns the width in pixels of the image Render produces for size s.
func (r *Renderer) Width(s puzzle.Size) int {
	return 2*r.padding + s.Width()*r.tileSize + (s.Width()-1)*r.tileGap
}

// Height returns the height in pixels of the image Render produces for s.
func (r *Renderer) Height(s puzzle.Size) int {
	return 2*r.padding + s.Height()*r.tileSize + (s.Height()-1)*r.tileGap
}

// Render writes p as an SVG image to w. The gap cell is left empty.
func (r *Renderer) Render(w io.Writer, p puzzle.Puzzle) {
	size := p.Size()
	canvas := svg.New(w)
	canvas.Start(r.Width(size), r.Height(size))
	if r.hasBG {
		canvas.Rect(0, 0, r.Width(size), r.Height(size), "fill:"+r.bg.Hex())
	}

	numLabels := r.scheme.NumLabels(size)
	textStyle := fmt.Sprintf(
		"text-anchor:middle;dominant-baseline:central;font-family:sans-serif;font-size:%dpx;fill:%s",
		r.fontSize, r.textCol.Hex())

	for y := 0; y < size.Height(); y++ {
		for x := 0; x < size.Width(); x++ {
			piece := p.PieceAt(x, y)
			if piece == 0 {
				continue
			}
			sx, sy := p.SolvedXY(piece)
			fill := r.coloring.Color(r.scheme.Label(size, sx, sy), numLabels)

			x0 := r.padding + x*(r.tileSize+r.tileGap)
			y0 := r.padding + y*(r.tileSize+r.tileGap)
			style := "fill:" + fill.Hex()
			if r.border > 0 {
				style += fmt.Sprintf(";stroke:%s;stroke-width:%d", r.borderCol.Hex(), r.border)
			}
			canvas.Roundrect(x0, y0, r.tileSize, r.tileSize, r.rounding, r.rounding, style)

			if r.fontSize > 0 {
				canvas.Text(x0+r.tileSize/2, y0+r.tileSize/2, strconv.Itoa(piece), textStyle)
			}
		}
	}
	canvas.End()
}
