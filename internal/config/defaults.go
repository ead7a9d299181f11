package config

import (
	_ "embed"
)

//go:embed defaults/brickcore.yaml
var defaultGameYAML []byte

// DefaultGame returns the default game configuration.
func DefaultGame() Game {
	return Game{
		Grid: GridConfig{
			Rows:   6,
			Cols:   10,
			Layout: "full",
		},
		Field: FieldConfig{
			Width:  40,
			Height: 24,
		},
		Paddle: PaddleConfig{
			Width: 6,
			Speed: 1200,
		},
		Ball: BallConfig{
			Speed: 800,
		},
		Rules: RulesConfig{
			Lives:          3,
			BrickPoints:    10,
			BrickHitPoints: 1,
		},
	}
}
