package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickcore/internal/sim"
	"github.com/vovakirdan/brickcore/internal/world"
)

var (
	flagTickInput string
	flagTickCount int
)

var tickCmd = &cobra.Command{
	Use:   "tick <session>",
	Short: "Advance a session by one or more ticks",
	Long: `Applies the given paddle input for the requested number of ticks and
prints the resulting state. Scoring events are printed as they happen.

Examples:
  brickcore tick 3f2a... --input left
  brickcore tick 3f2a... --input none --count 60`,
	Args: cobra.ExactArgs(1),
	Run:  runTick,
}

func init() {
	tickCmd.Flags().StringVar(&flagTickInput, "input", "none", "Paddle input: none, left, right")
	tickCmd.Flags().IntVar(&flagTickCount, "count", 1, "Number of ticks to run")
}

func runTick(cmd *cobra.Command, args []string) {
	id := args[0]

	in, err := sim.ParseInput(flagTickInput)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown input %q (want none, left, or right)\n", flagTickInput)
		os.Exit(1)
	}
	if flagTickCount < 1 {
		fmt.Fprintln(os.Stderr, "Error: --count must be at least 1")
		os.Exit(1)
	}

	mgr, store := openManager()
	defer store.Close()

	var w *world.World
	for i := 0; i < flagTickCount; i++ {
		next, events, err := mgr.Tick(id, in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error advancing session: %v\n", err)
			os.Exit(1)
		}
		w = next
		for _, ev := range events {
			printEvent(w.Tick, ev)
		}
		if w.Score.Status.Terminal() {
			break
		}
	}

	printSummary(w)
}

func printEvent(tick uint64, ev sim.Event) {
	switch e := ev.(type) {
	case sim.BrickHit:
		fmt.Printf("  tick %d: brick (%d,%d) hit, %d hp left\n", tick, e.Row, e.Col, e.HP)
	case sim.BrickBroken:
		fmt.Printf("  tick %d: brick (%d,%d) broken\n", tick, e.Row, e.Col)
	case sim.LifeLost:
		fmt.Printf("  tick %d: ball lost, %d lives remaining\n", tick, e.Remaining)
	case sim.GameWon:
		fmt.Printf("  tick %d: all bricks cleared!\n", tick)
	case sim.GameLost:
		fmt.Printf("  tick %d: game over\n", tick)
	}
}

func printSummary(w *world.World) {
	fmt.Printf("tick=%d score=%d lives=%d bricks=%d status=%s\n",
		w.Tick, w.Score.Score, w.Score.Lives, w.Bricks.Cells.Remaining(), w.Score.Status)
}
