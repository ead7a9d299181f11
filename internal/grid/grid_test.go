package grid

import (
	"errors"
	"testing"
)

func TestNewFill(t *testing.T) {
	g, err := New(4, 6, 1)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if g.Rows() != 4 || g.Cols() != 6 {
		t.Errorf("Expected 4x6 grid, got %dx%d", g.Rows(), g.Cols())
	}
	if g.Remaining() != 24 {
		t.Errorf("Expected 24 present cells, got %d", g.Remaining())
	}

	v, err := g.Get(3, 5)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if v != 1 {
		t.Errorf("Expected fill value 1, got %d", v)
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	if _, err := New(0, 6, 1); err == nil {
		t.Error("New(0, 6) should fail")
	}
	if _, err := New(4, -1, 1); err == nil {
		t.Error("New(4, -1) should fail")
	}
}

func TestGetSet(t *testing.T) {
	g, err := New(3, 3, 1)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if err := g.Set(1, 2, 0); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	v, err := g.Get(1, 2)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if v != 0 {
		t.Errorf("Cell should be broken (0), got %d", v)
	}
	if g.Remaining() != 8 {
		t.Errorf("Expected 8 remaining cells, got %d", g.Remaining())
	}
}

func TestBoundsChecking(t *testing.T) {
	g, err := New(4, 6, 1)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	cases := []struct{ row, col int }{
		{-1, 0},
		{0, -1},
		{4, 0},
		{0, 6},
		{100, 100},
	}

	for _, c := range cases {
		if _, err := g.Get(c.row, c.col); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Get(%d, %d) should return ErrIndexOutOfRange, got %v", c.row, c.col, err)
		}
		if err := g.Set(c.row, c.col, 1); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Set(%d, %d) should return ErrIndexOutOfRange, got %v", c.row, c.col, err)
		}
	}
}

func TestChunkBoundary(t *testing.T) {
	// 20x20 = 400 cells spans two chunks at ChunkSize 256.
	g, err := New(20, 20, 2)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if len(g.chunks) != 2 {
		t.Fatalf("400 cells should be split into 2 chunks, got %d", len(g.chunks))
	}
	if len(g.chunks[0]) != ChunkSize {
		t.Errorf("First chunk should hold %d cells, got %d", ChunkSize, len(g.chunks[0]))
	}
	if len(g.chunks[1]) != 400-ChunkSize {
		t.Errorf("Second chunk should hold %d cells, got %d", 400-ChunkSize, len(g.chunks[1]))
	}

	// Linear index 255 and 256 straddle the chunk boundary: row 12 cols 15, 16.
	if err := g.Set(12, 15, 9); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := g.Set(12, 16, 8); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	v, err := g.Get(12, 15)
	if err != nil || v != 9 {
		t.Errorf("Get(12, 15) should return 9, got %d (err %v)", v, err)
	}
	v, err = g.Get(12, 16)
	if err != nil || v != 8 {
		t.Errorf("Get(12, 16) should return 8, got %d (err %v)", v, err)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	g, err := New(20, 20, 1)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Break a scattered pattern of cells, including across the chunk boundary.
	broken := []struct{ row, col int }{{0, 0}, {5, 7}, {12, 15}, {12, 16}, {19, 19}}
	for _, c := range broken {
		if err := g.Set(c.row, c.col, 0); err != nil {
			t.Fatalf("Set() failed: %v", err)
		}
	}

	data := g.Encode()
	if len(data) != 400 {
		t.Fatalf("Encoded sequence should be rows*cols long, got %d", len(data))
	}

	decoded, err := Decode(data, 20, 20)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	if !g.Equal(decoded) {
		t.Error("Decoded grid should equal original")
	}
	if decoded.Remaining() != 400-len(broken) {
		t.Errorf("Expected %d remaining cells, got %d", 400-len(broken), decoded.Remaining())
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode(make([]byte, 23), 4, 6); !errors.Is(err, ErrMalformedEncoding) {
		t.Errorf("Short sequence should return ErrMalformedEncoding, got %v", err)
	}
	if _, err := Decode(make([]byte, 25), 4, 6); !errors.Is(err, ErrMalformedEncoding) {
		t.Errorf("Long sequence should return ErrMalformedEncoding, got %v", err)
	}
}

func TestClone(t *testing.T) {
	g, err := New(4, 6, 1)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	clone := g.Clone()
	if err := clone.Set(0, 0, 0); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	v, err := g.Get(0, 0)
	if err != nil || v != 1 {
		t.Error("Mutating a clone should not affect the original")
	}
}
