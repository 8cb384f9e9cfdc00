package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/registry"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best scores",
	Long: `Display the best score of every game, or of the specified game.

Examples:
  arcade scores
  arcade scores memory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(_ *cobra.Command, args []string) error {
	games := registry.List()
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", args[0])
		}
		games = []registry.GameInfo{{ID: args[0]}}
	}

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	fmt.Println("Best Scores")
	fmt.Println()
	fmt.Printf("  %-20s  %s\n", "Game", "Best")
	fmt.Printf("  %-20s  %s\n", "----", "----")

	for _, g := range games {
		info, _ := record.Lookup(g.ID)
		best := "-"
		if v, ok := a.svc.Keeper.Best(g.ID); ok {
			best = fmt.Sprintf("%d %s", v, info.Unit)
		}
		fmt.Printf("  %-20s  %s\n", info.Title, best)
	}

	if len(games) == 1 {
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to beat it!\n", games[0].ID)
	}
	return nil
}
