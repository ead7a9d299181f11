// brickcore is a deterministic breakout simulation core with a CLI host.
//
// Usage:
//
//	brickcore new                  - Create a new game session
//	brickcore tick <session>       - Advance a session by one or more ticks
//	brickcore show <session>       - Print the current state of a session
//	brickcore reset <session>      - Reset a session to its starting state
//	brickcore delete <session>     - Delete a stored session
//	brickcore sessions             - List sessions and top results
//	brickcore run                  - Replay a scripted input sequence and verify determinism
//	brickcore layouts              - List available brick layouts
//
// Global flags:
//
//	--db <path>           - Session database path (default: ~/.brickcore/sessions.db)
//	--config <path>       - Custom YAML config file
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickcore/internal/config"
	"github.com/vovakirdan/brickcore/internal/session"
	"github.com/vovakirdan/brickcore/internal/storage"
	"github.com/vovakirdan/brickcore/internal/world"
)

var (
	// Global flags
	flagDBPath     string
	flagConfigPath string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickcore",
	Short: "Deterministic breakout simulation core",
	Long: `brickcore runs breakout games as a deterministic, tick-driven simulation.
Sessions are persisted between invocations, so every command operates on a
stored world state and writes the result back.

Available commands:
  new       - Create a new game session
  tick      - Advance a session by one or more ticks
  show      - Print the current state of a session
  reset     - Reset a session to its starting state
  delete    - Delete a stored session
  sessions  - List sessions and top results
  run       - Replay a scripted input sequence and verify determinism
  layouts   - List available brick layouts

Examples:
  brickcore new --difficulty hard
  brickcore tick 3f2a... --input left --count 10
  brickcore show 3f2a...
  brickcore run --script left:30,none:10,right:30`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickcore/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom YAML config")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset (easy, normal, hard)")

	// Add subcommands
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(tickCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(layoutsCmd)
}

// loadWorldConfig resolves the game configuration from the global flags:
// config file (or defaults), then the difficulty preset on top.
func loadWorldConfig() (world.Config, error) {
	game, err := config.Load(flagConfigPath)
	if err != nil {
		return world.Config{}, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return world.Config{}, fmt.Errorf("unknown difficulty %q (want easy, normal, or hard)", flagDifficulty)
		}
		config.ApplyPreset(&game, preset)
	}

	return game.WorldConfig()
}

// openStore opens the session database from the global flag.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// openManager opens the session database and wraps it in a manager.
// The caller closes the returned store.
func openManager() (*session.Manager, *storage.Store) {
	store := openStore()
	return session.NewManager(store, nil), store
}
