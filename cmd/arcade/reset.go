package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/registry"
)

var flagResetAll bool

var resetCmd = &cobra.Command{
	Use:   "reset [game]",
	Short: "Reset best scores",
	Long: `Remove the stored best score of a game, or of every game with --all.
Player records on the leaderboard are not affected.

Examples:
  arcade reset clicker
  arcade reset --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetAll, "all", false, "Reset every game")
}

func runReset(_ *cobra.Command, args []string) error {
	var ids []string
	switch {
	case flagResetAll:
		for _, g := range record.Catalog {
			ids = append(ids, g.ID)
		}
	case len(args) == 1:
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", args[0])
		}
		ids = []string{args[0]}
	default:
		return fmt.Errorf("specify a game or --all")
	}

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	for _, id := range ids {
		if err := a.svc.Keeper.Reset(id); err != nil {
			return fmt.Errorf("reset %s: %w", id, err)
		}
		info, _ := record.Lookup(id)
		fmt.Printf("Reset %s\n", info.Title)
	}
	return nil
}
