package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BreakoutConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default YAML does not parse: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultBreakoutConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultBreakoutConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsNegatives(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*BreakoutConfig)
	}{
		{"playfield.width", func(c *BreakoutConfig) { c.Playfield.Width = -1 }},
		{"playfield.height", func(c *BreakoutConfig) { c.Playfield.Height = -1 }},
		{"ball.radius", func(c *BreakoutConfig) { c.Ball.Radius = -0.5 }},
		{"ball.speed", func(c *BreakoutConfig) { c.Ball.Speed = -3 }},
		{"paddle.speed", func(c *BreakoutConfig) { c.Paddle.Speed = -7 }},
		{"bricks.rows", func(c *BreakoutConfig) { c.Bricks.Rows = -1 }},
		{"bricks.columns", func(c *BreakoutConfig) { c.Bricks.Columns = -2 }},
		{"bricks.padding", func(c *BreakoutConfig) { c.Bricks.Padding = -10 }},
		{"bricks.offset_left", func(c *BreakoutConfig) { c.Bricks.OffsetLeft = -30 }},
		{"gameplay.lives", func(c *BreakoutConfig) { c.Gameplay.Lives = -1 }},
		{"ball.speed", func(c *BreakoutConfig) { c.Ball.Speed = math.NaN() }},
		{"ball.speed", func(c *BreakoutConfig) { c.Ball.Speed = math.Inf(1) }},
		{"bricks.offset_left", func(c *BreakoutConfig) { c.Bricks.OffsetLeft = math.Inf(1) }},
		{"bricks.offset_top", func(c *BreakoutConfig) { c.Bricks.OffsetTop = math.Inf(-1) }},
		{"bricks.rows", func(c *BreakoutConfig) { c.Bricks.Rows, c.Bricks.Columns = math.MaxInt32, math.MaxInt32 }},
		{"bricks.rows", func(c *BreakoutConfig) { c.Bricks.Rows, c.Bricks.Columns = 101, 100 }},
		{"paddle.width", func(c *BreakoutConfig) { c.Paddle.Width = c.Playfield.Width + 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() = %v, expected *ConfigurationError", err)
			}
			if cfgErr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", cfgErr.Field, tc.field)
			}
		})
	}
}

func TestValidateAllowsZeroGrid(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Bricks.Rows = 0
	cfg.Bricks.Columns = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty grid should be valid, got %v", err)
	}
}

func TestValidateAllowsMaxBricks(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Bricks.Rows = 100
	cfg.Bricks.Columns = MaxBricks / 100
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected a grid of exactly MaxBricks to pass", err)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("bricks:\n  rows: 1\n  columns: 2\ngameplay:\n  lives: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Bricks.Rows != 1 || cfg.Bricks.Columns != 2 {
		t.Errorf("grid = %dx%d, expected 1x2", cfg.Bricks.Rows, cfg.Bricks.Columns)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("lives = %d, expected 5", cfg.Gameplay.Lives)
	}
	// Unset fields keep defaults
	if cfg.Playfield.Width != 480 {
		t.Errorf("playfield width = %v, expected default 480", cfg.Playfield.Width)
	}
}

func TestLoadTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := []byte("[ball]\nradius = 6\nspeed = 4.5\n\n[paddle]\nwidth = 100\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Ball.Radius != 6 || cfg.Ball.Speed != 4.5 {
		t.Errorf("ball = %+v, expected radius 6 speed 4.5", cfg.Ball)
	}
	if cfg.Paddle.Width != 100 || cfg.Paddle.Height != 10 {
		t.Errorf("paddle = %+v, expected width 100 and default height", cfg.Paddle)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  lives: -2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Load() = %v, expected *ConfigurationError", err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	ini := filepath.Join(dir, "breakout.ini")
	if err := os.WriteFile(ini, []byte("x=1"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(ini); err == nil {
		t.Error("unsupported extension should be an error")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("ball: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(broken); err == nil {
		t.Error("malformed YAML should be an error")
	}
}
