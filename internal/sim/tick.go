package sim

import (
	"fmt"

	"github.com/vovakirdan/brickcore/internal/fixed"
	"github.com/vovakirdan/brickcore/internal/grid"
	"github.com/vovakirdan/brickcore/internal/layout"
	"github.com/vovakirdan/brickcore/internal/world"
)

// InitWorld creates a world with all components at their initial
// invariants: paddle centered, ball served upward, the configured layout's
// bricks present, and status InProgress.
func InitWorld(cfg world.Config) (*world.World, error) {
	if cfg.Layout == "" {
		cfg.Layout = "full"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen, err := layout.Get(cfg.Layout)
	if err != nil {
		return nil, err
	}
	cells, err := grid.FromCells(cfg.Rows, cfg.Cols, gen(cfg.Rows, cfg.Cols, cfg.BrickHitPoints))
	if err != nil {
		return nil, fmt.Errorf("sim: layout %q: %w", cfg.Layout, err)
	}

	w := &world.World{
		Config: cfg,
		Paddle: world.Paddle{
			Entity: world.PaddleEntity,
			X:      fixed.FromInt((cfg.FieldWidth - cfg.PaddleWidth) / 2),
			Width:  cfg.PaddleWidth,
		},
		Ball: world.Ball{Entity: world.BallEntity},
		Bricks: world.Bricks{
			Entity: world.BricksEntity,
			Rows:   cfg.Rows,
			Cols:   cfg.Cols,
			Cells:  cells,
		},
		Score: world.Score{
			Entity: world.ScoreEntity,
			Lives:  cfg.StartingLives,
			Status: world.StatusInProgress,
		},
	}
	serve(w)

	return w, nil
}

// Tick advances the world one simulation step: physics integration,
// then collision resolution, then scoring, in that fixed order. The
// input world is never mutated; on error nothing is returned, so a
// failed tick commits no partial state. A terminal world is returned
// unchanged with no events.
func Tick(w *world.World, in Input) (*world.World, []Event, error) {
	if !in.Valid() {
		return nil, nil, fmt.Errorf("%w: direction %d", ErrInvalidInput, in)
	}
	if w.Score.Status.Terminal() {
		return w, nil, nil
	}

	next := w.Clone()
	next.Tick++

	integrate(next, in)

	events, err := resolveCollisions(next)
	if err != nil {
		return nil, nil, err
	}
	events = applyScoring(next, events)

	return next, events, nil
}

// Reset reinitializes a world to the same config used at InitWorld.
func Reset(w *world.World) (*world.World, error) {
	return InitWorld(w.Config)
}
