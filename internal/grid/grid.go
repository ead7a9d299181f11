// Package grid implements the compact chunked encoding for the breakable
// brick grid. The host environment caps the size of a single stored value,
// so the grid is never held as one fixed-size array: cells live in an
// ordered sequence of bounded chunks that the codec joins transparently.
package grid

import (
	"errors"
	"fmt"
)

// ChunkSize is the maximum number of cells held in a single chunk.
// Grids larger than this are split across chunks so no single value
// exceeds the host's storage ceiling.
const ChunkSize = 256

// ErrIndexOutOfRange is returned when a coordinate falls outside
// [0, rows) x [0, cols). In a correct build the collision mapping never
// produces such a coordinate, so callers treat this as fatal.
var ErrIndexOutOfRange = errors.New("grid: index out of range")

// ErrMalformedEncoding is returned when a decoded sequence fails the
// length invariant. Never recovered silently; surfaced to the caller.
var ErrMalformedEncoding = errors.New("grid: malformed encoding")

// Grid is a 2-D accessor over the chunked cell sequence.
// Each cell holds a hit-point count; zero means broken (or never present).
type Grid struct {
	rows   int
	cols   int
	chunks [][]byte
}

// New creates a grid with every cell set to fill.
func New(rows, cols int, fill byte) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid: invalid dimensions %dx%d: %w", rows, cols, ErrIndexOutOfRange)
	}

	g := &Grid{rows: rows, cols: cols}
	remaining := rows * cols
	for remaining > 0 {
		n := remaining
		if n > ChunkSize {
			n = ChunkSize
		}
		chunk := make([]byte, n)
		for i := range chunk {
			chunk[i] = fill
		}
		g.chunks = append(g.chunks, chunk)
		remaining -= n
	}
	return g, nil
}

// FromCells creates a grid from a row-major cell slice.
// The slice length must equal rows*cols.
func FromCells(rows, cols int, cells []byte) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid: invalid dimensions %dx%d: %w", rows, cols, ErrIndexOutOfRange)
	}
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("grid: cell count %d does not match %dx%d: %w", len(cells), rows, cols, ErrMalformedEncoding)
	}

	g, err := New(rows, cols, 0)
	if err != nil {
		return nil, err
	}
	for i, v := range cells {
		g.chunks[i/ChunkSize][i%ChunkSize] = v
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// index computes the row-major linear index with bounds checking.
func (g *Grid) index(row, col int) (int, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, fmt.Errorf("grid: cell (%d,%d) outside %dx%d: %w", row, col, g.rows, g.cols, ErrIndexOutOfRange)
	}
	return row*g.cols + col, nil
}

// Get returns the cell value at (row, col).
func (g *Grid) Get(row, col int) (byte, error) {
	idx, err := g.index(row, col)
	if err != nil {
		return 0, err
	}
	return g.chunks[idx/ChunkSize][idx%ChunkSize], nil
}

// Set writes the cell value at (row, col).
func (g *Grid) Set(row, col int, v byte) error {
	idx, err := g.index(row, col)
	if err != nil {
		return err
	}
	g.chunks[idx/ChunkSize][idx%ChunkSize] = v
	return nil
}

// Remaining returns the number of cells still present (value > 0).
func (g *Grid) Remaining() int {
	count := 0
	for _, chunk := range g.chunks {
		for _, v := range chunk {
			if v > 0 {
				count++
			}
		}
	}
	return count
}

// Clone creates a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := &Grid{
		rows:   g.rows,
		cols:   g.cols,
		chunks: make([][]byte, len(g.chunks)),
	}
	for i, chunk := range g.chunks {
		clone.chunks[i] = make([]byte, len(chunk))
		copy(clone.chunks[i], chunk)
	}
	return clone
}

// Equal reports whether two grids have identical shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, chunk := range g.chunks {
		for j, v := range chunk {
			if other.chunks[i][j] != v {
				return false
			}
		}
	}
	return true
}

// Encode flattens the grid into its compact row-major sequence.
// The result always has length rows*cols.
func (g *Grid) Encode() []byte {
	out := make([]byte, 0, g.rows*g.cols)
	for _, chunk := range g.chunks {
		out = append(out, chunk...)
	}
	return out
}

// Decode rebuilds a grid from a compact sequence produced by Encode.
func Decode(data []byte, rows, cols int) (*Grid, error) {
	return FromCells(rows, cols, data)
}
