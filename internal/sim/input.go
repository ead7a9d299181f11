// Package sim implements the deterministic tick pipeline: fixed-point
// physics integration, ordered collision resolution, and scoring over a
// world value. One call to Tick processes exactly one simulation step,
// run-to-completion, with no suspension points and no wall-clock
// dependence, so identical inputs always produce bit-identical worlds.
package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when an input direction is outside the
// enumerated set.
var ErrInvalidInput = errors.New("sim: invalid input")

// Input is the discrete paddle direction for one tick.
type Input uint8

const (
	InputNone Input = iota
	InputLeft
	InputRight
)

// Valid reports whether the input is inside the enumerated set.
func (in Input) Valid() bool {
	return in <= InputRight
}

// String returns a human-readable name for the input.
func (in Input) String() string {
	switch in {
	case InputNone:
		return "none"
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	default:
		return "invalid"
	}
}

// ParseInput converts a textual direction into an Input.
func ParseInput(s string) (Input, error) {
	switch s {
	case "none", "":
		return InputNone, nil
	case "left":
		return InputLeft, nil
	case "right":
		return InputRight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
}
