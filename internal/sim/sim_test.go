package sim

import (
	"errors"
	"testing"

	"github.com/vovakirdan/brickcore/internal/fixed"
	"github.com/vovakirdan/brickcore/internal/world"
)

func testConfig() world.Config {
	return world.Config{
		Rows:           4,
		Cols:           6,
		FieldWidth:     30, // 5 cells per brick column
		FieldHeight:    20,
		StartingLives:  3,
		BallSpeed:      fixed.Fixed(800),
		PaddleWidth:    6,
		PaddleSpeed:    fixed.Fixed(1200),
		BrickPoints:    10,
		BrickHitPoints: 1,
		Layout:         "full",
	}
}

func mustInit(t *testing.T, cfg world.Config) *world.World {
	t.Helper()
	w, err := InitWorld(cfg)
	if err != nil {
		t.Fatalf("InitWorld() failed: %v", err)
	}
	return w
}

func mustTick(t *testing.T, w *world.World, in Input) (*world.World, []Event) {
	t.Helper()
	next, events, err := Tick(w, in)
	if err != nil {
		t.Fatalf("Tick() failed: %v", err)
	}
	return next, events
}

func TestInitWorldInvariants(t *testing.T) {
	cfg := testConfig()
	w := mustInit(t, cfg)

	if w.Tick != 0 {
		t.Errorf("New world should start at tick 0, got %d", w.Tick)
	}
	if w.Paddle.X != fixed.FromInt(12) {
		t.Errorf("Paddle should be centered at 12 cells, got %d", w.Paddle.X)
	}
	if w.Ball.VY >= 0 {
		t.Errorf("Ball should be served upward, VY=%d", w.Ball.VY)
	}
	if w.Bricks.Cells.Remaining() != cfg.Rows*cfg.Cols {
		t.Errorf("All bricks should be present, got %d", w.Bricks.Cells.Remaining())
	}
	if w.Score.Lives != cfg.StartingLives {
		t.Errorf("Lives should be %d, got %d", cfg.StartingLives, w.Score.Lives)
	}
	if w.Score.Status != world.StatusInProgress {
		t.Errorf("Status should be in_progress, got %s", w.Score.Status)
	}
}

func TestInitWorldUnknownLayout(t *testing.T) {
	cfg := testConfig()
	cfg.Layout = "missing"
	if _, err := InitWorld(cfg); err == nil {
		t.Error("InitWorld() with unknown layout should fail")
	}
}

// Dimensions above the codec's 16-bit field width must be rejected up
// front; a world that cannot survive encode/decode is never reachable.
func TestInitWorldRejectsUnencodableDimensions(t *testing.T) {
	cfg := testConfig()
	cfg.Rows = 70000
	cfg.Cols = 1
	cfg.FieldHeight = 70010

	if _, err := InitWorld(cfg); !errors.Is(err, world.ErrInvalidConfig) {
		t.Errorf("InitWorld() with 70000 rows should fail with ErrInvalidConfig, got %v", err)
	}
}

func TestInvalidInput(t *testing.T) {
	w := mustInit(t, testConfig())

	if _, _, err := Tick(w, Input(9)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Tick() with direction 9 should return ErrInvalidInput, got %v", err)
	}
}

func TestParseInput(t *testing.T) {
	cases := []struct {
		s    string
		want Input
	}{
		{"left", InputLeft},
		{"right", InputRight},
		{"none", InputNone},
		{"", InputNone},
	}
	for _, c := range cases {
		got, err := ParseInput(c.s)
		if err != nil || got != c.want {
			t.Errorf("ParseInput(%q) = %v, %v; want %v", c.s, got, err, c.want)
		}
	}

	if _, err := ParseInput("up"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("ParseInput(\"up\") should return ErrInvalidInput, got %v", err)
	}
}

func TestTerminalTickIsNoOp(t *testing.T) {
	for _, status := range []world.Status{world.StatusWon, world.StatusLost} {
		w := mustInit(t, testConfig())
		w.Score.Status = status

		for _, in := range []Input{InputNone, InputLeft, InputRight} {
			next, events := mustTick(t, w, in)
			if !next.Equal(w) {
				t.Errorf("Terminal world should be returned unchanged for input %s", in)
			}
			if len(events) != 0 {
				t.Errorf("Terminal tick should emit no events, got %d", len(events))
			}
		}
	}
}

// Scenario A: repeated directional input never pushes the paddle
// outside [0, field_width - width].
func TestPaddleNeverLeavesBounds(t *testing.T) {
	cfg := testConfig()
	w := mustInit(t, cfg)
	maxX := fixed.FromInt(cfg.FieldWidth - cfg.PaddleWidth)

	for i := 0; i < 600; i++ {
		in := InputLeft
		if i >= 300 {
			in = InputRight
		}
		w, _ = mustTick(t, w, in)

		if w.Paddle.X < 0 || w.Paddle.X > maxX {
			t.Fatalf("Tick %d: paddle at %d outside [0, %d]", i, w.Paddle.X, maxX)
		}
	}
}

// Boundary property: a ball at position_x = field_width with positive
// velocity_x reflects to negative velocity_x and stays inside the field.
func TestWallBoundaryReflection(t *testing.T) {
	cfg := testConfig()
	w := mustInit(t, cfg)
	w.Ball.X = fixed.FromInt(cfg.FieldWidth).Sub(500)
	w.Ball.Y = fixed.FromInt(10) // Below the brick rows, above the paddle
	w.Ball.VX = fixed.Fixed(500) // Lands exactly on the boundary after one tick
	w.Ball.VY = 0

	next, events := mustTick(t, w, InputNone)

	if next.Ball.VX >= 0 {
		t.Errorf("Ball should reflect to negative VX, got %d", next.Ball.VX)
	}
	if next.Ball.X > fixed.FromInt(cfg.FieldWidth) {
		t.Errorf("Ball should be clamped inside the field, got %d", next.Ball.X)
	}

	found := false
	for _, ev := range events {
		if wb, ok := ev.(WallBounce); ok && wb.Wall == WallRight {
			found = true
		}
	}
	if !found {
		t.Error("Expected a right WallBounce event")
	}
}

func TestTopWallReflection(t *testing.T) {
	w := mustInit(t, testConfig())

	// Clear column 0 so the ball reaches the top wall unobstructed.
	for row := 0; row < w.Config.Rows; row++ {
		if err := w.Bricks.Cells.Set(row, 0, 0); err != nil {
			t.Fatalf("Set() failed: %v", err)
		}
	}

	w.Ball.X = fixed.FromInt(2)
	w.Ball.Y = fixed.Fixed(300)
	w.Ball.VX = 0
	w.Ball.VY = fixed.Fixed(-800)

	next, _ := mustTick(t, w, InputNone)

	if next.Ball.VY <= 0 {
		t.Errorf("Ball should reflect downward off the top wall, got VY=%d", next.Ball.VY)
	}
	if next.Ball.Y < 0 {
		t.Errorf("Ball should be clamped below the top wall, got Y=%d", next.Ball.Y)
	}
}

// Scenario B: a ball entering a present brick cell breaks it, increments
// the score by the configured point value, and reflects velocity_y.
func TestBrickBreak(t *testing.T) {
	cfg := testConfig()
	w := mustInit(t, cfg)
	w.Ball.X = fixed.FromInt(12) // Column 2 at 5 cells per brick
	w.Ball.Y = fixed.Fixed(2600)
	w.Ball.VX = 0
	w.Ball.VY = fixed.Fixed(800) // Enters row 3 this tick

	next, events := mustTick(t, w, InputNone)

	hp, err := next.Bricks.Cells.Get(3, 2)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if hp != 0 {
		t.Errorf("Cell (3,2) should be broken, got HP %d", hp)
	}
	if next.Score.Score != cfg.BrickPoints {
		t.Errorf("Score should be %d, got %d", cfg.BrickPoints, next.Score.Score)
	}
	if next.Ball.VY >= 0 {
		t.Errorf("VY should be reflected upward, got %d", next.Ball.VY)
	}

	broken := 0
	for _, ev := range events {
		if bb, ok := ev.(BrickBroken); ok {
			broken++
			if bb.Row != 3 || bb.Col != 2 {
				t.Errorf("Expected BrickBroken(3,2), got (%d,%d)", bb.Row, bb.Col)
			}
		}
	}
	if broken != 1 {
		t.Errorf("Exactly one brick should break per tick, got %d", broken)
	}
}

func TestBrickHitPoints(t *testing.T) {
	cfg := testConfig()
	cfg.BrickHitPoints = 2
	w := mustInit(t, cfg)
	w.Ball.X = fixed.FromInt(12)
	w.Ball.Y = fixed.Fixed(2600)
	w.Ball.VX = 0
	w.Ball.VY = fixed.Fixed(800)

	next, events := mustTick(t, w, InputNone)

	hp, err := next.Bricks.Cells.Get(3, 2)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if hp != 1 {
		t.Errorf("Cell (3,2) should have 1 HP left, got %d", hp)
	}
	if next.Score.Score != 0 {
		t.Errorf("Score should not change on a non-breaking hit, got %d", next.Score.Score)
	}
	if next.Ball.VY >= 0 {
		t.Errorf("VY should still reflect on a non-breaking hit, got %d", next.Ball.VY)
	}

	found := false
	for _, ev := range events {
		if bh, ok := ev.(BrickHit); ok && bh.Row == 3 && bh.Col == 2 && bh.HP == 1 {
			found = true
		}
	}
	if !found {
		t.Error("Expected a BrickHit(3,2) event with 1 HP remaining")
	}
}

// Scenario C: breaking the last cell yields Won on that tick, and every
// subsequent tick is a no-op.
func TestWinOnLastBrick(t *testing.T) {
	cfg := testConfig()
	w := mustInit(t, cfg)

	// Break everything except (0,0) directly.
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			if row == 0 && col == 0 {
				continue
			}
			if err := w.Bricks.Cells.Set(row, col, 0); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}
		}
	}

	// Drive the ball up into (0,0).
	w.Ball.X = fixed.FromInt(2)
	w.Ball.Y = fixed.Fixed(1400)
	w.Ball.VX = 0
	w.Ball.VY = fixed.Fixed(-800)

	next, events := mustTick(t, w, InputNone)

	if next.Score.Status != world.StatusWon {
		t.Fatalf("Status should be won, got %s", next.Score.Status)
	}
	if next.Bricks.Cells.Remaining() != 0 {
		t.Errorf("No cells should remain, got %d", next.Bricks.Cells.Remaining())
	}

	won := false
	for _, ev := range events {
		if _, ok := ev.(GameWon); ok {
			won = true
		}
	}
	if !won {
		t.Error("Expected a GameWon event")
	}

	after, afterEvents := mustTick(t, next, InputLeft)
	if !after.Equal(next) || len(afterEvents) != 0 {
		t.Error("Ticks after winning should be no-ops")
	}
}

func TestLifeLostReservesBall(t *testing.T) {
	cfg := testConfig()
	w := mustInit(t, cfg)

	// Ball about to exit the bottom, outside the paddle span.
	w.Ball.X = fixed.FromInt(2)
	w.Ball.Y = fixed.Fixed(19500)
	w.Ball.VX = 0
	w.Ball.VY = fixed.Fixed(800)

	next, events := mustTick(t, w, InputNone)

	if next.Score.Lives != cfg.StartingLives-1 {
		t.Errorf("Lives should drop to %d, got %d", cfg.StartingLives-1, next.Score.Lives)
	}
	if next.Score.Status != world.StatusInProgress {
		t.Errorf("Game should continue with lives left, got %s", next.Score.Status)
	}
	if next.Ball.VY >= 0 {
		t.Errorf("Ball should be re-served upward, got VY=%d", next.Ball.VY)
	}
	if next.Ball.X != next.Paddle.CenterX() {
		t.Errorf("Ball should serve from the paddle center, got X=%d", next.Ball.X)
	}

	found := false
	for _, ev := range events {
		if ll, ok := ev.(LifeLost); ok && ll.Remaining == cfg.StartingLives-1 {
			found = true
		}
	}
	if !found {
		t.Error("Expected a LifeLost event with the remaining count")
	}
}

// Scenario D: spending the last life makes Lost absorbing; without an
// explicit reset the status never reverts to InProgress.
func TestGameLostIsAbsorbing(t *testing.T) {
	cfg := testConfig()
	w := mustInit(t, cfg)
	w.Score.Lives = 1
	w.Ball.X = fixed.FromInt(2)
	w.Ball.Y = fixed.Fixed(19500)
	w.Ball.VX = 0
	w.Ball.VY = fixed.Fixed(800)

	next, events := mustTick(t, w, InputNone)

	if next.Score.Status != world.StatusLost {
		t.Fatalf("Status should be lost, got %s", next.Score.Status)
	}
	if next.Score.Lives != 0 {
		t.Errorf("Lives should be 0, got %d", next.Score.Lives)
	}
	if next.Ball.Y < fixed.FromInt(cfg.FieldHeight) {
		t.Errorf("Final snapshot should keep the ball where it fell, got Y=%d", next.Ball.Y)
	}
	if next.Ball.X == next.Paddle.CenterX() && next.Ball.VY < 0 {
		t.Error("Losing tick should not re-serve the ball")
	}

	lost := false
	for _, ev := range events {
		if _, ok := ev.(GameLost); ok {
			lost = true
		}
	}
	if !lost {
		t.Error("Expected a GameLost event")
	}

	for i := 0; i < 50; i++ {
		var after *world.World
		var afterEvents []Event
		after, afterEvents = mustTick(t, next, InputRight)
		if after.Score.Status != world.StatusLost {
			t.Fatal("Lost status should never revert without a reset")
		}
		if !after.Equal(next) || len(afterEvents) != 0 {
			t.Fatal("Ticks after losing should be no-ops")
		}
		next = after
	}
}

func TestPaddleDeflection(t *testing.T) {
	cfg := testConfig()

	// Left edge hit deflects left.
	w := mustInit(t, cfg)
	w.Ball.X = w.Paddle.Left()
	w.Ball.Y = fixed.Fixed(18400)
	w.Ball.VX = 0
	w.Ball.VY = fixed.Fixed(800) // Enters the paddle row this tick

	next, events := mustTick(t, w, InputNone)
	if next.Ball.VX >= 0 {
		t.Errorf("Left-edge hit should deflect left, got VX=%d", next.Ball.VX)
	}
	if next.Ball.VY >= 0 {
		t.Errorf("Paddle bounce should reflect upward, got VY=%d", next.Ball.VY)
	}

	found := false
	for _, ev := range events {
		if pb, ok := ev.(PaddleBounce); ok {
			found = true
			if pb.Offset >= 0 {
				t.Errorf("Left-edge offset should be negative, got %d", pb.Offset)
			}
		}
	}
	if !found {
		t.Error("Expected a PaddleBounce event")
	}

	// Right-of-center hit deflects right.
	w = mustInit(t, cfg)
	w.Ball.X = w.Paddle.CenterX().Add(fixed.FromInt(2))
	w.Ball.Y = fixed.Fixed(18400)
	w.Ball.VX = 0
	w.Ball.VY = fixed.Fixed(800)

	next, _ = mustTick(t, w, InputNone)
	if next.Ball.VX <= 0 {
		t.Errorf("Right-of-center hit should deflect right, got VX=%d", next.Ball.VX)
	}

	// Dead-center hit sends the ball straight up.
	w = mustInit(t, cfg)
	w.Ball.X = w.Paddle.CenterX()
	w.Ball.Y = fixed.Fixed(18400)
	w.Ball.VX = 0
	w.Ball.VY = fixed.Fixed(800)

	next, _ = mustTick(t, w, InputNone)
	if next.Ball.VX != 0 {
		t.Errorf("Center hit should zero the deflection, got VX=%d", next.Ball.VX)
	}
}

func TestReset(t *testing.T) {
	cfg := testConfig()
	w := mustInit(t, cfg)

	for i := 0; i < 100; i++ {
		in := InputLeft
		if i%2 == 0 {
			in = InputRight
		}
		w, _ = mustTick(t, w, in)
	}

	reset, err := Reset(w)
	if err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	fresh := mustInit(t, cfg)
	if !reset.Equal(fresh) {
		t.Error("Reset world should match a freshly initialized one")
	}
	if reset.Hash() != fresh.Hash() {
		t.Errorf("Reset hash should match fresh init: %d vs %d", reset.Hash(), fresh.Hash())
	}
}

func TestDeterminism(t *testing.T) {
	cfg := testConfig()

	run := func() *world.World {
		w := mustInit(t, cfg)
		for i := 0; i < 500; i++ {
			in := InputNone
			switch {
			case i%7 < 3:
				in = InputRight
			case i%7 < 5:
				in = InputLeft
			}
			w, _ = mustTick(t, w, in)
		}
		return w
	}

	w1 := run()
	w2 := run()

	if w1.Hash() != w2.Hash() {
		t.Errorf("Identical input sequences should produce identical worlds: %d vs %d", w1.Hash(), w2.Hash())
	}
	if !w1.Equal(w2) {
		t.Error("Worlds should match field-for-field")
	}
}

func TestInvariantsHoldOverLongRun(t *testing.T) {
	cfg := testConfig()
	w := mustInit(t, cfg)
	maxX := fixed.FromInt(cfg.FieldWidth - cfg.PaddleWidth)

	prevScore := w.Score.Score
	prevLives := w.Score.Lives
	prevStatus := w.Score.Status

	for i := 0; i < 2000; i++ {
		in := InputNone
		if i%3 == 0 {
			in = InputLeft
		} else if i%3 == 1 {
			in = InputRight
		}
		w, _ = mustTick(t, w, in)

		if w.Paddle.X < 0 || w.Paddle.X > maxX {
			t.Fatalf("Tick %d: paddle out of bounds at %d", i, w.Paddle.X)
		}
		if w.Score.Score < prevScore {
			t.Fatalf("Tick %d: score decreased from %d to %d", i, prevScore, w.Score.Score)
		}
		if w.Score.Lives > prevLives {
			t.Fatalf("Tick %d: lives increased from %d to %d", i, prevLives, w.Score.Lives)
		}
		if prevStatus.Terminal() && w.Score.Status != prevStatus {
			t.Fatalf("Tick %d: terminal status changed from %s to %s", i, prevStatus, w.Score.Status)
		}
		if w.Ball.VX.Abs() > cfg.BallSpeed || w.Ball.VY.Abs() > cfg.BallSpeed {
			t.Fatalf("Tick %d: ball speed exceeded bound: VX=%d VY=%d", i, w.Ball.VX, w.Ball.VY)
		}

		prevScore = w.Score.Score
		prevLives = w.Score.Lives
		prevStatus = w.Score.Status
	}
}

func TestTickDoesNotMutateInput(t *testing.T) {
	cfg := testConfig()
	w := mustInit(t, cfg)
	before := w.Hash()

	mustTick(t, w, InputRight)

	if w.Hash() != before {
		t.Error("Tick should never mutate the input world")
	}
}

func TestMidGameRoundTrip(t *testing.T) {
	cfg := testConfig()
	w := mustInit(t, cfg)
	for i := 0; i < 200; i++ {
		w, _ = mustTick(t, w, InputRight)
	}

	decoded, err := world.Decode(world.Encode(w))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if !decoded.Equal(w) {
		t.Error("Mid-game world should round-trip exactly")
	}

	// The decoded world must keep simulating identically.
	a, _ := mustTick(t, w, InputLeft)
	b, _ := mustTick(t, decoded, InputLeft)
	if a.Hash() != b.Hash() {
		t.Error("Decoded world should tick identically to the original")
	}
}
