// Package world defines the entity/component state model for one game
// instance and its stable binary encoding. A World is an explicitly passed,
// exclusively owned value: the tick pipeline deep-copies it before mutating,
// so callers never observe partial state.
package world

import (
	"github.com/vovakirdan/brickcore/internal/fixed"
	"github.com/vovakirdan/brickcore/internal/grid"
)

// EntityID is an opaque identifier for one logical object.
type EntityID uint32

// Entity identifiers are stable across the life of a game instance.
// Brick cells are mutated in place inside the grid, never removed as entities.
const (
	PaddleEntity EntityID = 1
	BallEntity   EntityID = 2
	BricksEntity EntityID = 3
	ScoreEntity  EntityID = 4
)

// EntityCount is the number of entities in a world.
const EntityCount = 4

// Kind identifies a component variant. The set is closed and known at
// compile time; new kinds are added by extending it, not by subclassing.
type Kind uint8

const (
	KindPaddle Kind = iota + 1
	KindBall
	KindBricks
	KindScore
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	case KindBricks:
		return "bricks"
	case KindScore:
		return "score"
	default:
		return "unknown"
	}
}

// Component is implemented by all component variants.
type Component interface {
	Kind() Kind
}

// Status is the game-state machine value. Won and Lost are absorbing:
// once entered they are never left except through an explicit reset.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is absorbing.
func (s Status) Terminal() bool {
	return s != StatusInProgress
}

// Paddle is the player paddle component.
// X never leaves [0, field_width - width]; VX is derived from the
// input direction each tick.
type Paddle struct {
	Entity EntityID
	X      fixed.Fixed
	Width  int // Width in cells, constant for the life of a game
	VX     fixed.Fixed
}

// Kind returns KindPaddle.
func (Paddle) Kind() Kind { return KindPaddle }

// CenterX returns the paddle's center in fixed-point.
func (p Paddle) CenterX() fixed.Fixed {
	return p.X.Add(fixed.FromInt(p.Width) / 2)
}

// Left returns the left edge in fixed-point.
func (p Paddle) Left() fixed.Fixed {
	return p.X
}

// Right returns the right edge in fixed-point.
func (p Paddle) Right() fixed.Fixed {
	return p.X.Add(fixed.FromInt(p.Width))
}

// Ball is the ball component. Speed magnitude is bounded; bounces change
// direction but rescale magnitude deterministically.
type Ball struct {
	Entity EntityID
	X, Y   fixed.Fixed
	VX, VY fixed.Fixed
}

// Kind returns KindBall.
func (Ball) Kind() Kind { return KindBall }

// CellX returns the ball's X position in cell coordinates.
func (b Ball) CellX() int {
	return b.X.ToInt()
}

// CellY returns the ball's Y position in cell coordinates.
func (b Ball) CellY() int {
	return b.Y.ToInt()
}

// Bricks holds the breakable-brick grid. Cells live in the chunked grid
// sequence, not a fixed-size array, to satisfy the host storage ceiling.
type Bricks struct {
	Entity EntityID
	Rows   int
	Cols   int
	Cells  *grid.Grid
}

// Kind returns KindBricks.
func (Bricks) Kind() Kind { return KindBricks }

// Score tracks score, lives and the game-state machine.
// Score is monotonically non-decreasing within a game; Lives is
// monotonically non-increasing.
type Score struct {
	Entity EntityID
	Score  uint32
	Lives  uint32
	Status Status
}

// Kind returns KindScore.
func (Score) Kind() Kind { return KindScore }
