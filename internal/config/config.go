// Package config provides YAML/TOML-based configuration loading and
// validation for the breakout engine.
package config

import (
	"fmt"
	"math"
)

// MaxBricks bounds rows x columns so a grid always fits in memory.
const MaxBricks = 10000

// BreakoutConfig contains all configuration for one round of Breakout.
// Distances are in playfield units (one unit per canvas pixel),
// speeds are units per tick.
type BreakoutConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield" toml:"playfield"`
	Ball      BallConfig      `yaml:"ball" toml:"ball"`
	Paddle    PaddleConfig    `yaml:"paddle" toml:"paddle"`
	Bricks    BricksConfig    `yaml:"bricks" toml:"bricks"`
	Gameplay  GameplayConfig  `yaml:"gameplay" toml:"gameplay"`
}

// PlayfieldConfig defines the playfield bounds.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BallConfig defines the ball size and per-axis speed.
type BallConfig struct {
	Radius float64 `yaml:"radius" toml:"radius"`
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// PaddleConfig defines the paddle size and movement speed.
type PaddleConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"`
}

// BricksConfig defines the brick grid layout.
type BricksConfig struct {
	Rows       int     `yaml:"rows" toml:"rows"`
	Columns    int     `yaml:"columns" toml:"columns"`
	Width      float64 `yaml:"width" toml:"width"`
	Height     float64 `yaml:"height" toml:"height"`
	Padding    float64 `yaml:"padding" toml:"padding"`
	OffsetTop  float64 `yaml:"offset_top" toml:"offset_top"`
	OffsetLeft float64 `yaml:"offset_left" toml:"offset_left"`
}

// GameplayConfig defines round rules.
type GameplayConfig struct {
	Lives int `yaml:"lives" toml:"lives"`
}

// ConfigurationError reports a malformed configuration value.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the configuration and returns a *ConfigurationError for the
// first malformed field. Values are never clamped.
func (c BreakoutConfig) Validate() error {
	nonNegative := []struct {
		field string
		value float64
	}{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"ball.radius", c.Ball.Radius},
		{"ball.speed", c.Ball.Speed},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.speed", c.Paddle.Speed},
		{"bricks.rows", float64(c.Bricks.Rows)},
		{"bricks.columns", float64(c.Bricks.Columns)},
		{"bricks.width", c.Bricks.Width},
		{"bricks.height", c.Bricks.Height},
		{"bricks.padding", c.Bricks.Padding},
		{"bricks.offset_top", c.Bricks.OffsetTop},
		{"bricks.offset_left", c.Bricks.OffsetLeft},
		{"gameplay.lives", float64(c.Gameplay.Lives)},
	}

	for _, v := range nonNegative {
		// NaN fails every comparison, so test for the valid range instead.
		if !(v.value >= 0) {
			return &ConfigurationError{Field: v.field, Reason: fmt.Sprintf("must be non-negative, got %v", v.value)}
		}
		if math.IsInf(v.value, 0) {
			return &ConfigurationError{Field: v.field, Reason: "must be finite"}
		}
	}

	// Check each side first so the product cannot overflow.
	b := c.Bricks
	if b.Rows > MaxBricks || b.Columns > MaxBricks || b.Rows*b.Columns > MaxBricks {
		return &ConfigurationError{
			Field:  "bricks.rows",
			Reason: fmt.Sprintf("%d x %d bricks exceeds the limit of %d", b.Rows, b.Columns, MaxBricks),
		}
	}

	if c.Paddle.Width > c.Playfield.Width {
		return &ConfigurationError{
			Field:  "paddle.width",
			Reason: fmt.Sprintf("%v exceeds playfield width %v", c.Paddle.Width, c.Playfield.Width),
		}
	}

	return nil
}
