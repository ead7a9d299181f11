package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <session>",
	Short: "Delete a stored session",
	Long: `Removes a session from the database. Finished-game results recorded
for the session are kept.

Example:
  brickcore delete 3f2a...`,
	Args: cobra.ExactArgs(1),
	Run:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) {
	mgr, store := openManager()
	defer store.Close()

	if err := mgr.Delete(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting session: %v\n", err)
		os.Exit(1)
	}
}
