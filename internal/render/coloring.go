// Package render draws puzzle states as SVG images. Tiles are colored by
// combining a Scheme, which assigns a label to each solved position, with a
// Coloring, which turns labels into colors.
package render

import (
	"errors"
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Sentinel errors for coloring construction and parsing.
var (
	ErrEmptyColorList  = errors.New("render: color list must not be empty")
	ErrUnknownColoring = errors.New("render: unknown coloring")
)

// Coloring maps a label index to a tile color. Implementations expect
// 0 <= label < numLabels.
type Coloring interface {
	Color(label, numLabels int) colorful.Color
}

// Monochrome colors every tile the same.
type Monochrome struct {
	C colorful.Color
}

// Color returns the fixed color regardless of label.
func (m Monochrome) Color(int, int) colorful.Color { return m.C }

// ColorList cycles through a fixed palette.
type ColorList struct {
	colors []colorful.Color
}

// NewColorList builds a ColorList, rejecting an empty palette.
func NewColorList(colors ...colorful.Color) (ColorList, error) {
	if len(colors) == 0 {
		return ColorList{}, ErrEmptyColorList
	}
	out := make([]colorful.Color, len(colors))
	copy(out, colors)
	return ColorList{colors: out}, nil
}

// Color returns the palette entry for label, wrapping around at the end.
func (cl ColorList) Color(label, _ int) colorful.Color {
	return cl.colors[label%len(cl.colors)]
}

// Rainbow sweeps the hue circle from red towards magenta, spreading the
// labels over hues 0 to 330.
type Rainbow struct{}

// Color returns the hue for label.
func (Rainbow) Color(label, numLabels int) colorful.Color {
	frac := float64(label) / float64(numLabels)
	return colorful.Hsl(330*frac, 1, 0.5)
}

// RainbowFull is Rainbow stretched so the last label lands on the final hue
// instead of just short of it.
type RainbowFull struct{}

// Color returns the hue for label.
func (RainbowFull) Color(label, numLabels int) colorful.Color {
	if numLabels <= 1 {
		return colorful.Hsl(0, 1, 0.5)
	}
	return Rainbow{}.Color(label, numLabels-1)
}

// RainbowBright is Rainbow with the lightness lifted on the hues that read
// dark on screen, giving a more pastel result.
type RainbowBright struct{}

// Color returns the adjusted hue for label.
func (RainbowBright) Color(label, numLabels int) colorful.Color {
	frac := float64(label) / float64(numLabels)
	hue := 330 * frac
	lum := 0.5 + 0.25*math.Cos(2*math.Pi*(0.65+hue/720)) + 0.35*math.Exp(-hue/100)
	return colorful.Hsl(hue, 1, clamp01(lum))
}

// AlternatingBrightness wraps a base coloring, pairing the labels two by two
// and lightening the first of each pair. Adjacent labels stay
// distinguishable even when the base coloring changes slowly.
type AlternatingBrightness struct {
	Base Coloring
}

// Color returns the pair's base color for odd labels and lightens it for
// even labels.
func (ab AlternatingBrightness) Color(label, numLabels int) colorful.Color {
	even := label &^ 1
	c := ab.Base.Color(even, numLabels)
	if label == even {
		h, s, l := c.Hsl()
		return colorful.Hsl(h, s, 1-(1-l)/2)
	}
	return c
}

// ParseColoring reads a coloring description as used in configuration files
// and on the command line: one of "rainbow", "rainbow-full",
// "rainbow-bright", "alternating", "mono:<hex>" or a comma separated
// "list:<hex>,<hex>,...".
func ParseColoring(s string) (Coloring, error) {
	switch {
	case s == "rainbow":
		return Rainbow{}, nil
	case s == "rainbow-full":
		return RainbowFull{}, nil
	case s == "rainbow-bright":
		return RainbowBright{}, nil
	case s == "alternating":
		return AlternatingBrightness{Base: RainbowBright{}}, nil
	case strings.HasPrefix(s, "mono:"):
		c, err := parseHex(strings.TrimPrefix(s, "mono:"))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownColoring, s, err)
		}
		return Monochrome{C: c}, nil
	case strings.HasPrefix(s, "list:"):
		var colors []colorful.Color
		for _, hex := range strings.Split(strings.TrimPrefix(s, "list:"), ",") {
			c, err := parseHex(strings.TrimSpace(hex))
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrUnknownColoring, s, err)
			}
			colors = append(colors, c)
		}
		return NewColorList(colors...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownColoring, s)
	}
}

// parseHex reads a hex color, with or without the leading #.
func parseHex(s string) (colorful.Color, error) {
	if s != "" && s[0] != '#' {
		s = "#" + s
	}
	return colorful.Hex(s)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
