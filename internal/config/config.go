// Package config provides YAML-based game configuration loading and
// difficulty presets for the simulation engine. Speeds are expressed in
// fixed-point units (1000 = one cell per tick) so configs stay integer
// and the simulation stays deterministic.
package config

import (
	"fmt"
	"math"

	"github.com/vovakirdan/brickcore/internal/fixed"
	"github.com/vovakirdan/brickcore/internal/world"
)

// Game contains all tunable parameters for one game configuration.
type Game struct {
	Grid   GridConfig   `yaml:"grid"`
	Field  FieldConfig  `yaml:"field"`
	Paddle PaddleConfig `yaml:"paddle"`
	Ball   BallConfig   `yaml:"ball"`
	Rules  RulesConfig  `yaml:"rules"`
}

// GridConfig defines the brick grid shape and starting pattern.
type GridConfig struct {
	Rows   int    `yaml:"rows"`
	Cols   int    `yaml:"cols"`
	Layout string `yaml:"layout"`
}

// FieldConfig defines the playfield dimensions in cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PaddleConfig defines paddle parameters.
type PaddleConfig struct {
	Width int `yaml:"width"`
	Speed int `yaml:"speed"` // Fixed-point units per tick
}

// BallConfig defines ball parameters.
type BallConfig struct {
	Speed int `yaml:"speed"` // Fixed-point units per tick
}

// RulesConfig defines scoring and lives parameters.
type RulesConfig struct {
	Lives          int `yaml:"lives"`
	BrickPoints    int `yaml:"brick_points"`
	BrickHitPoints int `yaml:"brick_hit_points"`
}

// WorldConfig converts the loaded configuration into the simulation
// core's config value and validates it.
func (g Game) WorldConfig() (world.Config, error) {
	if g.Rules.Lives < 0 || int64(g.Rules.Lives) > math.MaxUint32 ||
		g.Rules.BrickPoints < 0 || int64(g.Rules.BrickPoints) > math.MaxUint32 ||
		g.Rules.BrickHitPoints < 0 || g.Rules.BrickHitPoints > 255 {
		return world.Config{}, fmt.Errorf("%w: rules out of range", world.ErrInvalidConfig)
	}

	cfg := world.Config{
		Rows:           g.Grid.Rows,
		Cols:           g.Grid.Cols,
		FieldWidth:     g.Field.Width,
		FieldHeight:    g.Field.Height,
		StartingLives:  uint32(g.Rules.Lives), //#nosec G115 -- range checked above
		BallSpeed:      fixed.Fixed(g.Ball.Speed),
		PaddleWidth:    g.Paddle.Width,
		PaddleSpeed:    fixed.Fixed(g.Paddle.Speed),
		BrickPoints:    uint32(g.Rules.BrickPoints), //#nosec G115 -- range checked above
		BrickHitPoints: byte(g.Rules.BrickHitPoints),
		Layout:         g.Grid.Layout,
	}
	if err := cfg.Validate(); err != nil {
		return world.Config{}, err
	}
	return cfg, nil
}
