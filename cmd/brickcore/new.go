package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickcore/internal/layout"
)

var flagLayout string

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new game session",
	Long: `Creates a new game session from the active configuration and prints
its session ID. The session starts at tick 0 with the ball served from
the paddle.

Examples:
  brickcore new
  brickcore new --difficulty easy
  brickcore new --layout pyramid`,
	Args: cobra.NoArgs,
	Run:  runNew,
}

func init() {
	newCmd.Flags().StringVar(&flagLayout, "layout", "", "Brick layout override (see 'brickcore layouts')")
}

func runNew(cmd *cobra.Command, args []string) {
	cfg, err := loadWorldConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagLayout != "" {
		if !layout.Exists(flagLayout) {
			fmt.Fprintf(os.Stderr, "Error: unknown layout %q\n", flagLayout)
			fmt.Fprintln(os.Stderr, "Run 'brickcore layouts' to see available layouts.")
			os.Exit(1)
		}
		cfg.Layout = flagLayout
	}

	mgr, store := openManager()
	defer store.Close()

	id, err := mgr.Create(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating session: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(id)
}
