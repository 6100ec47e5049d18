package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Playfield: PlayfieldConfig{
			Width:  480,
			Height: 320,
		},
		Ball: BallConfig{
			Radius: 10,
			Speed:  3,
		},
		Paddle: PaddleConfig{
			Width:  75,
			Height: 10,
			Speed:  7,
		},
		Bricks: BricksConfig{
			Rows:       3,
			Columns:    5,
			Width:      75,
			Height:     20,
			Padding:    10,
			OffsetTop:  30,
			OffsetLeft: 30,
		},
		Gameplay: GameplayConfig{
			Lives: 3,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}
