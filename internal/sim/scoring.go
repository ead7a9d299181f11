package sim

import "github.com/vovakirdan/brickcore/internal/world"

// applyScoring consumes the tick's collision events: each broken brick
// adds the configured point value, and clearing the last present cell
// transitions the game to Won. Status transitions are terminal; a world
// already Lost this tick stays Lost.
func applyScoring(w *world.World, events []Event) []Event {
	for _, ev := range events {
		if _, ok := ev.(BrickBroken); ok {
			w.Score.Score += w.Config.BrickPoints
		}
	}

	if w.Score.Status == world.StatusInProgress && w.Bricks.Cells.Remaining() == 0 {
		w.Score.Status = world.StatusWon
		events = append(events, GameWon{})
	}

	return events
}
