package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List sessions and top results",
	Long: `Shows all stored sessions with their current progress, followed by
the best finished games.

Example:
  brickcore sessions`,
	Args: cobra.NoArgs,
	Run:  runSessions,
}

func runSessions(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	sessions, err := store.ListSessions()
	if err != nil {
		fmt.Printf("Error listing sessions: %v\n", err)
		return
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions stored.")
		fmt.Println()
		fmt.Println("Run 'brickcore new' to create one.")
		return
	}

	fmt.Println("Sessions:")
	fmt.Println()
	fmt.Printf("  %-36s  %-12s  %-8s  %-8s  %s\n", "ID", "Status", "Score", "Tick", "Updated")
	fmt.Printf("  %-36s  %-12s  %-8s  %-8s  %s\n", "--", "------", "-----", "----", "-------")
	for _, s := range sessions {
		fmt.Printf("  %-36s  %-12s  %-8d  %-8d  %s\n",
			s.ID, s.Status, s.Score, s.Tick, s.UpdatedAt.Format("2006-01-02 15:04"))
	}

	results, err := store.TopResults(10)
	if err != nil {
		fmt.Printf("Error listing results: %v\n", err)
		return
	}
	if len(results) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Top results:")
	fmt.Println()
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "Rank", "Score", "Outcome", "Ticks", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %s\n", "----", "-----", "-------", "-----", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-8d  %-8s  %-8d  %s\n",
			i+1, r.Score, r.Outcome, r.Ticks, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
