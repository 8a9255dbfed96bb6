package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points the loader search paths at empty temp directories so only
// the sources a test writes are found.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := DefaultConfig()
	if cfg != want {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
	if cfg.Play.Event != "single" || cfg.Render.TileSize != 75 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "play:\n  event: relay\n  size: 5x5\nrender:\n  tile_size: 40\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if cfg.Play.Event != "relay" || cfg.Play.Size != "5x5" {
		t.Errorf("play section not applied: %+v", cfg.Play)
	}
	if cfg.Render.TileSize != 40 {
		t.Errorf("render.tile_size = %d, want 40", cfg.Render.TileSize)
	}
	// Keys the file omits keep their defaults.
	if cfg.Render.FontSize != 30 || cfg.Play.Coloring != "rainbow-bright" {
		t.Errorf("omitted keys lost their defaults: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of a missing explicit path succeeded")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("play: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed yaml succeeded")
	}
}

func TestLoadUserConfig(t *testing.T) {
	isolate(t)

	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".slidy")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "play:\n  difficulty: easy\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Play.Difficulty != "easy" {
		t.Errorf("play.difficulty = %q, want easy", cfg.Play.Difficulty)
	}
	if cfg.Play.Event != "single" {
		t.Errorf("play.event lost its default: %q", cfg.Play.Event)
	}
}

func TestLoadWorkingDirConfig(t *testing.T) {
	isolate(t)

	data := "render:\n  font_size: 0\n  coloring: mono:#336699\n"
	if err := os.WriteFile("slidy.yaml", []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Render.FontSize != 0 {
		t.Errorf("render.font_size = %d, want 0", cfg.Render.FontSize)
	}
	if cfg.Render.Coloring != "mono:#336699" {
		t.Errorf("render.coloring = %q", cfg.Render.Coloring)
	}
}

func TestDefaultYAMLMatchesDefaultConfig(t *testing.T) {
	isolate(t)

	// The embedded file and the hardcoded fallback must agree.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults disagree with DefaultConfig:\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"easy", DifficultyEasy, true},
		{"normal", DifficultyNormal, true},
		{"hard", DifficultyHard, true},
		{"full", DifficultyFull, true},
		{"", DifficultyFull, true},
		{"extreme", DifficultyFull, false},
	}
	for _, tt := range tests {
		got, ok := ParseDifficulty(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDifficulty(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestScrambleMoves(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		area   int
		want   int
	}{
		{DifficultyEasy, 16, 16},
		{DifficultyNormal, 16, 48},
		{DifficultyHard, 16, 160},
		{DifficultyFull, 16, 0},
	}
	for _, tt := range tests {
		if got := tt.preset.ScrambleMoves(tt.area); got != tt.want {
			t.Errorf("%s.ScrambleMoves(%d) = %d, want %d", tt.preset, tt.area, got, tt.want)
		}
	}
}
