package world

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/brickcore/internal/fixed"
	"github.com/vovakirdan/brickcore/internal/grid"
)

// ErrMalformedEncoding is returned when a world blob fails schema or
// length checks during decode. Never recovered silently.
var ErrMalformedEncoding = errors.New("world: malformed encoding")

// codecVersion is the binary layout version byte.
const codecVersion = 1

// headerLen is the byte length of everything before the brick-grid
// sequence: header, config, tick, and the four components in
// declaration order. All integers are big-endian.
const headerLen = 132

// Encode serializes the world into its stable binary layout:
// a fixed-width header (version, entity count, grid dimensions),
// the config, the tick counter, each component's fields in declaration
// order, then the brick-grid compact sequence.
func Encode(w *World) []byte {
	c := w.Config
	b := make([]byte, 0, headerLen+c.Rows*c.Cols)

	// Header
	b = append(b, codecVersion, EntityCount)
	b = binary.BigEndian.AppendUint16(b, uint16(c.Rows))
	b = binary.BigEndian.AppendUint16(b, uint16(c.Cols))

	// Config
	b = binary.BigEndian.AppendUint16(b, uint16(c.FieldWidth))
	b = binary.BigEndian.AppendUint16(b, uint16(c.FieldHeight))
	b = binary.BigEndian.AppendUint32(b, c.StartingLives)
	b = binary.BigEndian.AppendUint64(b, uint64(c.BallSpeed))
	b = binary.BigEndian.AppendUint16(b, uint16(c.PaddleWidth))
	b = binary.BigEndian.AppendUint64(b, uint64(c.PaddleSpeed))
	b = binary.BigEndian.AppendUint32(b, c.BrickPoints)
	b = append(b, c.BrickHitPoints)

	// Layout name, zero-padded to fixed width
	var name [LayoutNameLen]byte
	copy(name[:], c.Layout)
	b = append(b, name[:]...)

	// Tick counter
	b = binary.BigEndian.AppendUint64(b, w.Tick)

	// Paddle
	b = binary.BigEndian.AppendUint32(b, uint32(w.Paddle.Entity))
	b = binary.BigEndian.AppendUint64(b, uint64(w.Paddle.X))
	b = binary.BigEndian.AppendUint16(b, uint16(w.Paddle.Width))
	b = binary.BigEndian.AppendUint64(b, uint64(w.Paddle.VX))

	// Ball
	b = binary.BigEndian.AppendUint32(b, uint32(w.Ball.Entity))
	b = binary.BigEndian.AppendUint64(b, uint64(w.Ball.X))
	b = binary.BigEndian.AppendUint64(b, uint64(w.Ball.Y))
	b = binary.BigEndian.AppendUint64(b, uint64(w.Ball.VX))
	b = binary.BigEndian.AppendUint64(b, uint64(w.Ball.VY))

	// Bricks (dimensions already in header)
	b = binary.BigEndian.AppendUint32(b, uint32(w.Bricks.Entity))

	// Score
	b = binary.BigEndian.AppendUint32(b, uint32(w.Score.Entity))
	b = binary.BigEndian.AppendUint32(b, w.Score.Score)
	b = binary.BigEndian.AppendUint32(b, w.Score.Lives)
	b = append(b, byte(w.Score.Status))

	// Brick-grid compact sequence
	b = append(b, w.Bricks.Cells.Encode()...)

	return b
}

// decoder reads big-endian fields sequentially from a blob whose total
// length has already been validated.
type decoder struct {
	data []byte
	off  int
}

func (d *decoder) u8() byte {
	v := d.data[d.off]
	d.off++
	return v
}

func (d *decoder) u16() uint16 {
	v := binary.BigEndian.Uint16(d.data[d.off:])
	d.off += 2
	return v
}

func (d *decoder) u32() uint32 {
	v := binary.BigEndian.Uint32(d.data[d.off:])
	d.off += 4
	return v
}

func (d *decoder) u64() uint64 {
	v := binary.BigEndian.Uint64(d.data[d.off:])
	d.off += 8
	return v
}

func (d *decoder) fixed() fixed.Fixed {
	return fixed.Fixed(d.u64())
}

func (d *decoder) name() string {
	raw := d.data[d.off : d.off+LayoutNameLen]
	d.off += LayoutNameLen
	return strings.TrimRight(string(raw), "\x00")
}

// Decode rebuilds a world from a blob produced by Encode.
// decode(encode(w)) round-trips exactly, field for field.
func Decode(data []byte) (*World, error) {
	if len(data) < headerLen {
		return nil, fmt.Errorf("%w: blob too short (%d bytes)", ErrMalformedEncoding, len(data))
	}
	if data[0] != codecVersion {
		return nil, fmt.Errorf("%w: unknown version %d", ErrMalformedEncoding, data[0])
	}
	if data[1] != EntityCount {
		return nil, fmt.Errorf("%w: entity count %d, want %d", ErrMalformedEncoding, data[1], EntityCount)
	}

	rows := int(binary.BigEndian.Uint16(data[2:]))
	cols := int(binary.BigEndian.Uint16(data[4:]))
	if want := headerLen + rows*cols; len(data) != want {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d grid, want %d", ErrMalformedEncoding, len(data), rows, cols, want)
	}

	d := &decoder{data: data, off: 6}

	w := &World{}
	w.Config = Config{
		Rows:           rows,
		Cols:           cols,
		FieldWidth:     int(d.u16()),
		FieldHeight:    int(d.u16()),
		StartingLives:  d.u32(),
		BallSpeed:      d.fixed(),
		PaddleWidth:    int(d.u16()),
		PaddleSpeed:    d.fixed(),
		BrickPoints:    d.u32(),
		BrickHitPoints: d.u8(),
		Layout:         d.name(),
	}
	if err := w.Config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}

	w.Tick = d.u64()

	w.Paddle = Paddle{
		Entity: EntityID(d.u32()),
		X:      d.fixed(),
		Width:  int(d.u16()),
		VX:     d.fixed(),
	}

	w.Ball = Ball{
		Entity: EntityID(d.u32()),
		X:      d.fixed(),
		Y:      d.fixed(),
		VX:     d.fixed(),
		VY:     d.fixed(),
	}

	w.Bricks = Bricks{
		Entity: EntityID(d.u32()),
		Rows:   rows,
		Cols:   cols,
	}

	w.Score = Score{
		Entity: EntityID(d.u32()),
		Score:  d.u32(),
		Lives:  d.u32(),
	}
	status := d.u8()
	if status > byte(StatusLost) {
		return nil, fmt.Errorf("%w: status %d outside enum", ErrMalformedEncoding, status)
	}
	w.Score.Status = Status(status)

	cells, err := grid.Decode(data[d.off:], rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: brick sequence: %v", ErrMalformedEncoding, err)
	}
	w.Bricks.Cells = cells

	return w, nil
}
