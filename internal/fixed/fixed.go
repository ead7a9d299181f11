// Package fixed provides deterministic scaled-integer arithmetic for the
// simulation core. All physics and collision math is expressed in this
// representation; no floating point is used anywhere in the engine, so
// results are bit-identical across host environments.
package fixed

import "errors"

// Scale is the fixed-point scale factor: 1 cell = 1000 units.
// This allows for sub-cell precision while maintaining determinism.
const Scale = 1000

// ErrDivisionByZero is returned when a divisor of exactly zero is passed.
// Simulation code must never construct such a call; seeing this error
// indicates a bug, not a recoverable condition.
var ErrDivisionByZero = errors.New("fixed: division by zero")

// Fixed represents a fixed-point value (scaled by Scale).
type Fixed int64

// FromInt converts a cell coordinate to fixed-point.
func FromInt(cell int) Fixed {
	return Fixed(cell) * Scale
}

// ToInt converts fixed-point to cell coordinate (truncated toward zero).
func (f Fixed) ToInt() int {
	return int(f / Scale)
}

// Add adds two fixed-point values.
func (f Fixed) Add(other Fixed) Fixed {
	return f + other
}

// Sub subtracts two fixed-point values.
func (f Fixed) Sub(other Fixed) Fixed {
	return f - other
}

// Mul multiplies two fixed-point values.
func (f Fixed) Mul(other Fixed) Fixed {
	return f * other / Scale
}

// MulInt multiplies fixed-point by a plain integer.
func (f Fixed) MulInt(n int) Fixed {
	return f * Fixed(n)
}

// Div divides one fixed-point value by another.
func (f Fixed) Div(other Fixed) (Fixed, error) {
	if other == 0 {
		return 0, ErrDivisionByZero
	}
	return f * Scale / other, nil
}

// DivInt divides fixed-point by a plain integer.
func (f Fixed) DivInt(n int) (Fixed, error) {
	if n == 0 {
		return 0, ErrDivisionByZero
	}
	return f / Fixed(n), nil
}

// Abs returns the absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0, or 1.
func (f Fixed) Sign() int {
	if f < 0 {
		return -1
	}
	if f > 0 {
		return 1
	}
	return 0
}

// Clamp restricts a value to [lo, hi].
func Clamp(val, lo, hi Fixed) Fixed {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
