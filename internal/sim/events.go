package sim

import "github.com/vovakirdan/brickcore/internal/fixed"

// Event is emitted by the collision and scoring systems during one tick.
// The set is closed; events appear in resolution order, so a tick's event
// slice is itself deterministic.
type Event interface {
	event()
}

// Wall identifies which boundary the ball bounced off.
type Wall uint8

const (
	WallLeft Wall = iota
	WallRight
	WallTop
)

// String returns a human-readable name for the wall.
func (w Wall) String() string {
	switch w {
	case WallLeft:
		return "left"
	case WallRight:
		return "right"
	case WallTop:
		return "top"
	default:
		return "unknown"
	}
}

// WallBounce is emitted when the ball reflects off a field boundary.
type WallBounce struct {
	Wall Wall
}

func (WallBounce) event() {}

// PaddleBounce is emitted when the ball reflects off the paddle.
// Offset is the deflection bias in [-Scale, Scale], derived from the
// ball's integer offset from the paddle center.
type PaddleBounce struct {
	Offset fixed.Fixed
}

func (PaddleBounce) event() {}

// BrickHit is emitted when a brick cell absorbs a hit without breaking.
type BrickHit struct {
	Row, Col int
	HP       byte
}

func (BrickHit) event() {}

// BrickBroken is emitted when a brick cell's hit points reach zero.
type BrickBroken struct {
	Row, Col int
}

func (BrickBroken) event() {}

// LifeLost is emitted when the ball exits the bottom of the field.
type LifeLost struct {
	Remaining uint32
}

func (LifeLost) event() {}

// GameWon is emitted on the tick that breaks the last brick cell.
type GameWon struct{}

func (GameWon) event() {}

// GameLost is emitted on the tick that spends the last life.
type GameLost struct{}

func (GameLost) event() {}
