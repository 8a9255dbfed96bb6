package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/benwh1/slidy/internal/algorithm"
	"github.com/benwh1/slidy/internal/config"
	"github.com/benwh1/slidy/internal/puzzle"
	"github.com/benwh1/slidy/internal/render"
)

var (
	flagRenderSize       string
	flagRenderOut        string
	flagRenderColoring   string
	flagRenderScheme     string
	flagRenderTileSize   int
	flagRenderTileGap    int
	flagRenderRounding   int
	flagRenderPadding    int
	flagRenderFontSize   int
	flagRenderBackground string
	flagRenderAlg        string
	flagRenderFrames     string
)

var renderCmd = &cobra.Command{
	Use:   "render [state]",
	Short: "Render a state as SVG",
	Long: `Render a puzzle state as an SVG image. With no state argument the
solved board of --size is rendered.

With --alg the moves are applied to the state first. Adding --frames
writes one image per single-tile move into a directory instead, starting
with the state before any move.

Examples:
  slidy render --size 4x4 -o solved.svg
  slidy render "8 3 1/5 2 7/4 6 0" --coloring mono:1e90ff -o state.svg
  slidy render --size 3x3 --alg "D2R2U" --frames anim/
  slidy scramble | xargs -d '\n' -I{} slidy render {} -o scramble.svg`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := renderStartState(args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		r, err := buildRenderer(loadConfig().Render)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if flagRenderFrames != "" && flagRenderAlg == "" {
			fmt.Fprintln(os.Stderr, "Error: --frames requires --alg")
			os.Exit(1)
		}

		var alg algorithm.Algorithm
		if flagRenderAlg != "" {
			alg, err = algorithm.Parse(flagRenderAlg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		if flagRenderFrames != "" {
			if err := renderFrames(r, p, alg, flagRenderFrames); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}

		if flagRenderAlg != "" {
			if p, err = p.ApplyAlg(alg); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		if err := writeSVG(r, p, flagRenderOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// renderStartState parses the state argument, or builds the solved board of
// --size when no state is given.
func renderStartState(args []string) (puzzle.Puzzle, error) {
	if len(args) == 1 {
		return puzzle.Parse(args[0])
	}
	size, err := puzzle.ParseSize(flagRenderSize)
	if err != nil {
		return puzzle.Puzzle{}, err
	}
	return puzzle.New(size), nil
}

// buildRenderer merges the config defaults with any flags that were set.
// Size flags use -1 as "not set" since zero gap, padding, rounding and font
// size are all meaningful.
func buildRenderer(rc config.RenderConfig) (*render.Renderer, error) {
	coloringName := rc.Coloring
	if flagRenderColoring != "" {
		coloringName = flagRenderColoring
	}
	coloring, err := render.ParseColoring(coloringName)
	if err != nil {
		return nil, err
	}

	schemeName := rc.Scheme
	if flagRenderScheme != "" {
		schemeName = flagRenderScheme
	}
	scheme, err := render.ParseScheme(schemeName)
	if err != nil {
		return nil, err
	}

	tileSize := rc.TileSize
	if flagRenderTileSize > 0 {
		tileSize = flagRenderTileSize
	}
	tileGap := rc.TileGap
	if flagRenderTileGap >= 0 {
		tileGap = flagRenderTileGap
	}
	rounding := rc.Rounding
	if flagRenderRounding >= 0 {
		rounding = flagRenderRounding
	}
	padding := rc.Padding
	if flagRenderPadding >= 0 {
		padding = flagRenderPadding
	}
	fontSize := rc.FontSize
	if flagRenderFontSize >= 0 {
		fontSize = flagRenderFontSize
	}

	r := render.NewRenderer().
		Coloring(coloring).
		Scheme(scheme).
		TileSize(tileSize).
		TileGap(tileGap).
		Rounding(rounding).
		Padding(padding).
		FontSize(fontSize)

	if flagRenderBackground != "" {
		bg, err := colorful.Hex(normalizeHex(flagRenderBackground))
		if err != nil {
			return nil, fmt.Errorf("invalid background color %q: %w", flagRenderBackground, err)
		}
		r.Background(bg)
	}
	return r, nil
}

// normalizeHex accepts colors with or without the leading #.
func normalizeHex(s string) string {
	if len(s) > 0 && s[0] != '#' {
		return "#" + s
	}
	return s
}

// renderFrames writes the state before any move and after every single-tile
// move of alg as frame-NNN.svg files under dir.
func renderFrames(r *render.Renderer, p puzzle.Puzzle, alg algorithm.Algorithm, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	frame := 0
	if err := writeSVG(r, p, framePath(dir, frame)); err != nil {
		return err
	}
	for _, mv := range alg.Moves() {
		for _, step := range mv.Split() {
			var err error
			if p, err = p.Apply(step); err != nil {
				return err
			}
			frame++
			if err := writeSVG(r, p, framePath(dir, frame)); err != nil {
				return err
			}
		}
	}

	fmt.Printf("Wrote %d frames to %s\n", frame+1, dir)
	return nil
}

func framePath(dir string, frame int) string {
	return filepath.Join(dir, fmt.Sprintf("frame-%03d.svg", frame))
}

// writeSVG renders p into path, or to stdout when path is empty.
func writeSVG(r *render.Renderer, p puzzle.Puzzle, path string) error {
	if path == "" {
		w := bufio.NewWriter(os.Stdout)
		r.Render(w, p)
		return w.Flush()
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	r.Render(w, p)
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	renderCmd.Flags().StringVar(&flagRenderSize, "size", "4x4", "Board size when no state is given")
	renderCmd.Flags().StringVarP(&flagRenderOut, "out", "o", "", "Output file (default stdout)")
	renderCmd.Flags().StringVar(&flagRenderColoring, "coloring", "", "Tile coloring: rainbow, rainbow-full, rainbow-bright, alternating, mono:<hex>, list:<hex>,...")
	renderCmd.Flags().StringVar(&flagRenderScheme, "scheme", "", "Label scheme: pieces, rows, fringe, diagonals, or plain")
	renderCmd.Flags().IntVar(&flagRenderTileSize, "tile-size", 0, "Tile side length in pixels")
	renderCmd.Flags().IntVar(&flagRenderTileGap, "tile-gap", -1, "Spacing between tiles in pixels")
	renderCmd.Flags().IntVar(&flagRenderRounding, "rounding", -1, "Tile corner radius in pixels")
	renderCmd.Flags().IntVar(&flagRenderPadding, "padding", -1, "Margin around the board in pixels")
	renderCmd.Flags().IntVar(&flagRenderFontSize, "font-size", -1, "Label font size in pixels (0 hides labels)")
	renderCmd.Flags().StringVar(&flagRenderBackground, "background", "", "Background color as hex (default transparent)")
	renderCmd.Flags().StringVar(&flagRenderAlg, "alg", "", "Moves to apply to the state before rendering")
	renderCmd.Flags().StringVar(&flagRenderFrames, "frames", "", "Directory for one SVG per single-tile move of --alg")
}
