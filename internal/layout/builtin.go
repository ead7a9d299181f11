package layout

// Built-in layouts, adapted from classic brick-breaker level shapes.
// Each generator is pure: same shape and hit points, same cells.

func init() {
	Register("full", Full)
	Register("checker", Checker)
	Register("pyramid", Pyramid)
	Register("fortress", Fortress)
}

// Full fills every cell.
func Full(rows, cols int, hp byte) []byte {
	cells := make([]byte, rows*cols)
	for i := range cells {
		cells[i] = hp
	}
	return cells
}

// Checker fills alternating cells, checkerboard style.
func Checker(rows, cols int, hp byte) []byte {
	cells := make([]byte, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if (row+col)%2 == 0 {
				cells[row*cols+col] = hp
			}
		}
	}
	return cells
}

// Pyramid fills a centered span that widens toward the bottom row.
func Pyramid(rows, cols int, hp byte) []byte {
	cells := make([]byte, rows*cols)
	for row := 0; row < rows; row++ {
		// Bottom row spans the full width; each row above is narrower
		// by one cell on each side.
		inset := rows - 1 - row
		for col := 0; col < cols; col++ {
			if col >= inset && col < cols-inset {
				cells[row*cols+col] = hp
			}
		}
	}
	return cells
}

// Fortress fills everything, with a doubled-HP wall around the border.
func Fortress(rows, cols int, hp byte) []byte {
	wall := hp
	if wall <= 127 {
		wall = hp * 2
	}

	cells := make([]byte, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if row == 0 || row == rows-1 || col == 0 || col == cols-1 {
				cells[row*cols+col] = wall
			} else {
				cells[row*cols+col] = hp
			}
		}
	}
	return cells
}
