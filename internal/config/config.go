// Package config provides YAML-based configuration loading for slidy.
package config

// Config is the top-level slidy configuration.
type Config struct {
	Play   PlayConfig   `yaml:"play"`
	Render RenderConfig `yaml:"render"`
}

// PlayConfig contains defaults for interactive play.
type PlayConfig struct {
	Event      string `yaml:"event"`      // registered event ID
	Size       string `yaml:"size"`       // board size, "WxH" or a bare number for squares
	Coloring   string `yaml:"coloring"`   // tile coloring name
	Scheme     string `yaml:"scheme"`     // tile labeling scheme
	Difficulty string `yaml:"difficulty"` // scramble difficulty preset
	ShowTimer  bool   `yaml:"show_timer"`
}

// RenderConfig contains defaults for SVG output.
type RenderConfig struct {
	TileSize int    `yaml:"tile_size"` // pixels
	TileGap  int    `yaml:"tile_gap"`
	Rounding int    `yaml:"rounding"`
	Padding  int    `yaml:"padding"`
	FontSize int    `yaml:"font_size"` // 0 hides the labels
	Coloring string `yaml:"coloring"`
	Scheme   string `yaml:"scheme"`
}
