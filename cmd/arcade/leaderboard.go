package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/casual-arcade/internal/players"
	"github.com/vovakirdan/casual-arcade/internal/registry"
)

var (
	flagBoardGame  string
	flagBoardLimit int
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the top players",
	Long: `Rank every player's best scores. Higher is better for clicks, points
and wins; lower is better for moves and attempts.

Examples:
  arcade leaderboard
  arcade leaderboard --game guess
  arcade leaderboard --limit 3`,
	Args: cobra.NoArgs,
	RunE: runLeaderboard,
}

func init() {
	leaderboardCmd.Flags().StringVar(&flagBoardGame, "game", "", "Rank a single game")
	leaderboardCmd.Flags().IntVar(&flagBoardLimit, "limit", players.LeaderboardSize, "Number of entries to show")
}

func runLeaderboard(_ *cobra.Command, _ []string) error {
	if flagBoardGame != "" && !registry.Exists(flagBoardGame) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", flagBoardGame)
	}

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	all, err := a.svc.Players.Players()
	if err != nil {
		return fmt.Errorf("loading players: %w", err)
	}
	current := currentPlayer(a)

	var entries []players.Entry
	if flagBoardGame != "" {
		entries = players.TopForGame(flagBoardLimit, all, flagBoardGame, current.ID)
	} else {
		entries = players.TopN(flagBoardLimit, all, current.ID)
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-22s  %-20s  %s\n", "Rank", "Player", "Game", "Score")
	fmt.Printf("  %-4s  %-22s  %-20s  %s\n", "----", "------", "----", "-----")
	for _, e := range entries {
		name := e.Player
		if e.IsCurrent {
			name += " (you)"
		}
		fmt.Printf("  %-4d  %-22s  %-20s  %d %s\n", e.Rank, name, e.Game, e.Score, e.Unit)
	}
	return nil
}
