package config

import (
	_ "embed"
)

//go:embed defaults/slidy.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/slidy.yaml and serves as the base that user files override.
func DefaultConfig() Config {
	return Config{
		Play: PlayConfig{
			Event:      "single",
			Size:       "4x4",
			Coloring:   "rainbow-bright",
			Scheme:     "pieces",
			Difficulty: "full",
			ShowTimer:  true,
		},
		Render: RenderConfig{
			TileSize: 75,
			FontSize: 30,
			Coloring: "rainbow-bright",
			Scheme:   "pieces",
		},
	}
}

// DefaultYAML returns the embedded default configuration file, handy for
// writing a starter config.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
