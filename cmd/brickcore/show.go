package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickcore/internal/world"
)

var showCmd = &cobra.Command{
	Use:   "show <session>",
	Short: "Print the current state of a session",
	Long: `Prints the current state of a session as an ASCII field dump plus a
one-line summary. Bricks are drawn as their remaining hit points, the
paddle as '=', and the ball as 'o'.

Example:
  brickcore show 3f2a...`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	mgr, store := openManager()
	defer store.Close()

	w, err := mgr.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading session: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(renderField(w))
	printSummary(w)
	fmt.Printf("hash=%016x\n", w.Hash())
}

// renderField draws the playfield one cell per character, fenced by a
// border so empty rows stay visible.
func renderField(w *world.World) string {
	width := w.Config.FieldWidth
	height := w.Config.FieldHeight
	cellW := w.Config.BrickCellWidth()

	field := make([][]byte, height)
	for y := range field {
		field[y] = []byte(strings.Repeat(" ", width))
	}

	// Brick rows occupy the top of the field, one cell per column span.
	for row := 0; row < w.Bricks.Rows; row++ {
		for col := 0; col < w.Bricks.Cols; col++ {
			hp, err := w.Bricks.Cells.Get(row, col)
			if err != nil || hp == 0 {
				continue
			}
			glyph := byte('#')
			if hp <= 9 {
				glyph = '0' + hp
			}
			for x := col * cellW; x < (col+1)*cellW && x < width; x++ {
				field[row][x] = glyph
			}
		}
	}

	// Paddle.
	py := w.Config.PaddleY()
	px := w.Paddle.X.ToInt()
	for x := px; x < px+w.Paddle.Width && x < width; x++ {
		if x >= 0 {
			field[py][x] = '='
		}
	}

	// Ball. Drawn last so it stays visible over bricks and paddle.
	bx, by := w.Ball.CellX(), w.Ball.CellY()
	if bx >= 0 && bx < width && by >= 0 && by < height {
		field[by][bx] = 'o'
	}

	var b strings.Builder
	b.WriteString("+" + strings.Repeat("-", width) + "+\n")
	for _, row := range field {
		b.WriteString("|")
		b.Write(row)
		b.WriteString("|\n")
	}
	b.WriteString("+" + strings.Repeat("-", width) + "+\n")
	return b.String()
}
