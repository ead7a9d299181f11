package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickcore/internal/layout"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List available brick layouts",
	Long:  `Shows all brick layouts that can be used with 'brickcore new --layout'.`,
	Args:  cobra.NoArgs,
	Run:   runLayouts,
}

func runLayouts(cmd *cobra.Command, args []string) {
	names := layout.Names()

	fmt.Println("Available layouts:")
	fmt.Println()
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Run 'brickcore new --layout <name>' to use one.")
}
