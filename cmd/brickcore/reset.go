package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <session>",
	Short: "Reset a session to its starting state",
	Long: `Rebuilds the session's world from the configuration it was created
with: full brick grid, starting lives, ball served from the paddle.

Example:
  brickcore reset 3f2a...`,
	Args: cobra.ExactArgs(1),
	Run:  runReset,
}

func runReset(cmd *cobra.Command, args []string) {
	mgr, store := openManager()
	defer store.Close()

	w, err := mgr.Reset(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resetting session: %v\n", err)
		os.Exit(1)
	}

	printSummary(w)
}
