package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/brickcore/internal/fixed"
)

// ErrInvalidConfig is returned when a world configuration fails validation.
var ErrInvalidConfig = errors.New("world: invalid config")

// Config enumerates the parameters a world is initialized from.
// It rides inside the World so Reset can reproduce the initial invariants
// without the caller resupplying it.
type Config struct {
	Rows           int
	Cols           int
	FieldWidth     int // Field width in cells
	FieldHeight    int // Field height in cells
	StartingLives  uint32
	BallSpeed      fixed.Fixed // Units per tick
	PaddleWidth    int         // Width in cells
	PaddleSpeed    fixed.Fixed // Units per tick
	BrickPoints    uint32      // Points per destroyed brick
	BrickHitPoints byte        // Hits required to break one cell
	Layout         string      // Named starting pattern, at most LayoutNameLen bytes
}

// LayoutNameLen is the fixed on-wire width of the layout name.
const LayoutNameLen = 12

// Validate checks that the configuration can produce a playable world.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidConfig, c.Rows, c.Cols)
	case c.Rows > math.MaxUint16 || c.Cols > math.MaxUint16:
		return fmt.Errorf("%w: grid %dx%d exceeds encodable dimension %d", ErrInvalidConfig, c.Rows, c.Cols, math.MaxUint16)
	case c.FieldHeight > math.MaxUint16 || c.FieldWidth > math.MaxUint16:
		return fmt.Errorf("%w: field %dx%d exceeds encodable dimension %d", ErrInvalidConfig, c.FieldWidth, c.FieldHeight, math.MaxUint16)
	case c.FieldWidth < c.Cols:
		return fmt.Errorf("%w: field width %d narrower than %d brick columns", ErrInvalidConfig, c.FieldWidth, c.Cols)
	case c.FieldHeight < c.Rows+3:
		return fmt.Errorf("%w: field height %d leaves no room below %d brick rows", ErrInvalidConfig, c.FieldHeight, c.Rows)
	case c.PaddleWidth <= 0 || c.PaddleWidth > c.FieldWidth:
		return fmt.Errorf("%w: paddle width %d outside field width %d", ErrInvalidConfig, c.PaddleWidth, c.FieldWidth)
	case c.StartingLives == 0:
		return fmt.Errorf("%w: starting lives must be positive", ErrInvalidConfig)
	case c.BallSpeed <= 0:
		return fmt.Errorf("%w: ball speed must be positive", ErrInvalidConfig)
	case c.BallSpeed > fixed.Scale:
		return fmt.Errorf("%w: ball speed %d above one cell per tick would tunnel", ErrInvalidConfig, c.BallSpeed)
	case c.PaddleSpeed <= 0:
		return fmt.Errorf("%w: paddle speed must be positive", ErrInvalidConfig)
	case c.BrickHitPoints == 0:
		return fmt.Errorf("%w: brick hit points must be positive", ErrInvalidConfig)
	case c.Layout == "" || len(c.Layout) > LayoutNameLen:
		return fmt.Errorf("%w: layout name %q must be 1..%d bytes", ErrInvalidConfig, c.Layout, LayoutNameLen)
	}
	return nil
}

// BrickCellWidth returns the width of one brick cell in field cells.
func (c Config) BrickCellWidth() int {
	return c.FieldWidth / c.Cols
}

// PaddleY returns the paddle's row in cells.
func (c Config) PaddleY() int {
	return c.FieldHeight - 1
}

// World is the conjunction of all components for one game instance.
type World struct {
	Tick   uint64
	Config Config
	Paddle Paddle
	Ball   Ball
	Bricks Bricks
	Score  Score
}

// Clone creates a deep copy of the world.
func (w *World) Clone() *World {
	clone := *w
	clone.Bricks.Cells = w.Bricks.Cells.Clone()
	return &clone
}

// Equal reports whether two worlds match field-for-field.
func (w *World) Equal(other *World) bool {
	if w.Tick != other.Tick ||
		w.Config != other.Config ||
		w.Paddle != other.Paddle ||
		w.Ball != other.Ball ||
		w.Score != other.Score ||
		w.Bricks.Entity != other.Bricks.Entity ||
		w.Bricks.Rows != other.Bricks.Rows ||
		w.Bricks.Cols != other.Bricks.Cols {
		return false
	}
	return w.Bricks.Cells.Equal(other.Bricks.Cells)
}

// Hash returns a canonical 64-bit hash of the encoded world,
// used for determinism and replay verification.
func (w *World) Hash() uint64 {
	return xxhash.Sum64(Encode(w))
}
