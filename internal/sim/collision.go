package sim

import (
	"fmt"

	"github.com/vovakirdan/brickcore/internal/fixed"
	"github.com/vovakirdan/brickcore/internal/world"
)

// resolveCollisions runs the four collision checks in their fixed order:
// walls, paddle, brick, bottom-of-field. Earlier resolutions affect later
// ones within the same tick. All containment checks are closed-interval
// so exact boundary values never tunnel.
func resolveCollisions(w *world.World) ([]Event, error) {
	events := collideWalls(w, nil)

	events, err := collidePaddle(w, events)
	if err != nil {
		return nil, err
	}

	events, err = collideBrick(w, events)
	if err != nil {
		return nil, err
	}

	return collideBottom(w, events), nil
}

// collideWalls reflects the ball off the left, right, and top boundaries,
// clamping the position back inside the field. Reflection only applies
// when the ball is moving outward, so a ball resting exactly on a wall
// is never flipped back and forth.
func collideWalls(w *world.World, events []Event) []Event {
	b := &w.Ball
	right := fixed.FromInt(w.Config.FieldWidth)

	if b.X <= 0 && b.VX < 0 {
		b.VX = -b.VX
		b.X = 0
		events = append(events, WallBounce{Wall: WallLeft})
	}
	if b.X >= right && b.VX > 0 {
		b.VX = -b.VX
		b.X = right
		events = append(events, WallBounce{Wall: WallRight})
	}
	if b.Y <= 0 && b.VY < 0 {
		b.VY = -b.VY
		b.Y = 0
		events = append(events, WallBounce{Wall: WallTop})
	}

	return events
}

// collidePaddle reflects a downward-moving ball that intersects the
// paddle's horizontal span at the paddle's row. The horizontal velocity
// is replaced by a deterministic deflection: the ball's fixed-point
// offset from the paddle center, normalized by the half-width, scaled
// by the configured ball speed. Edge hits give the steepest angle.
func collidePaddle(w *world.World, events []Event) ([]Event, error) {
	b := &w.Ball
	p := w.Paddle

	if b.VY <= 0 {
		return events, nil
	}

	paddleLine := fixed.FromInt(w.Config.PaddleY())
	if b.Y < paddleLine || b.Y >= fixed.FromInt(w.Config.FieldHeight) {
		return events, nil
	}
	if b.X < p.Left() || b.X > p.Right() {
		return events, nil
	}

	halfWidth, err := fixed.FromInt(p.Width).DivInt(2)
	if err != nil {
		return nil, fmt.Errorf("sim: paddle half-width: %w", err)
	}
	offset, err := b.X.Sub(p.CenterX()).Div(halfWidth)
	if err != nil {
		return nil, fmt.Errorf("sim: paddle deflection: %w", err)
	}
	offset = fixed.Clamp(offset, -fixed.Scale, fixed.Scale)

	b.VY = -b.VY.Abs()
	b.VX = offset.Mul(w.Config.BallSpeed)
	b.Y = paddleLine.Sub(fixed.Scale) // Snap above the paddle row

	return append(events, PaddleBounce{Offset: offset}), nil
}

// collideBrick maps the ball position to a grid cell by integer division
// and consumes one hit point if the cell is present. At most one brick
// cell is touched per tick, keeping the update bounded. A cell failure
// here means the mapping produced an out-of-range coordinate, which is
// a bug, not a game state.
func collideBrick(w *world.World, events []Event) ([]Event, error) {
	b := &w.Ball
	cfg := w.Config

	row := b.CellY()
	col := b.CellX() / cfg.BrickCellWidth()
	if row < 0 || row >= cfg.Rows || col < 0 || col >= cfg.Cols {
		return events, nil
	}

	hp, err := w.Bricks.Cells.Get(row, col)
	if err != nil {
		return nil, fmt.Errorf("sim: brick lookup: %w", err)
	}
	if hp == 0 {
		return events, nil
	}

	hp--
	if err := w.Bricks.Cells.Set(row, col, hp); err != nil {
		return nil, fmt.Errorf("sim: brick update: %w", err)
	}

	if hp > 0 {
		events = append(events, BrickHit{Row: row, Col: col, HP: hp})
	} else {
		events = append(events, BrickBroken{Row: row, Col: col})
	}

	b.VY = -b.VY
	return events, nil
}

// collideBottom handles the ball exiting the bottom of the field: a
// life is lost and, if any remain, the ball returns to the serving
// state. Spending the last life makes the Lost status absorbing.
func collideBottom(w *world.World, events []Event) []Event {
	if w.Ball.Y < fixed.FromInt(w.Config.FieldHeight) {
		return events
	}

	w.Score.Lives--
	events = append(events, LifeLost{Remaining: w.Score.Lives})

	if w.Score.Lives == 0 {
		// The terminal snapshot keeps the ball where it fell.
		w.Score.Status = world.StatusLost
		return append(events, GameLost{})
	}

	serve(w)
	return events
}
