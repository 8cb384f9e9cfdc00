package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/casual-arcade/internal/players"
	"github.com/vovakirdan/casual-arcade/internal/record"
)

var playerCmd = &cobra.Command{
	Use:   "player",
	Short: "Manage the current player",
	Long: `Players are identified by nickname. The current player's results are
kept in their own record and ranked on the leaderboard.

Examples:
  arcade player login alice
  arcade player whoami
  arcade player list
  arcade player logout`,
}

var playerLoginCmd = &cobra.Command{
	Use:   "login <nickname>",
	Short: "Become the current player, registering the nickname if new",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.close()

		p, created, err := a.svc.Players.Login(args[0])
		if err != nil {
			return err
		}
		if created {
			fmt.Printf("Welcome, %s!\n", p.Nickname)
		} else {
			fmt.Printf("Welcome back, %s!\n", p.Nickname)
		}
		return nil
	},
}

var playerLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the current player",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.close()

		return a.svc.Players.SwitchUser()
	},
}

var playerWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current player and their records",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.close()

		p := currentPlayer(a)
		if p.ID == "" {
			fmt.Println("No current player. Run 'arcade player login <nickname>'.")
			return nil
		}

		fmt.Printf("%s (joined %s)\n\n", p.Nickname, p.CreatedAt.Local().Format("2006-01-02"))
		for _, g := range record.Catalog {
			best := "-"
			if v, ok := p.Score(g.ID); ok {
				best = fmt.Sprintf("%d %s", v, g.Unit)
			}
			fmt.Printf("  %-20s  %s\n", g.Title, best)
		}
		return nil
	},
}

var playerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered players",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.close()

		all, err := a.svc.Players.Players()
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Println("No players registered yet.")
			return nil
		}

		current := currentPlayer(a)
		for _, p := range all {
			marker := "  "
			if p.ID == current.ID {
				marker = "* "
			}
			fmt.Printf("%s%s\n", marker, p.Nickname)
		}
		return nil
	},
}

var playerSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Copy this machine's best scores into the current player's record",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.close()

		changed, err := a.svc.Players.SyncCurrent(a.svc.Keeper)
		if err != nil {
			return err
		}
		if changed {
			fmt.Println("Records updated.")
		} else {
			fmt.Println("Nothing to update.")
		}
		return nil
	},
}

func init() {
	playerCmd.AddCommand(playerLoginCmd)
	playerCmd.AddCommand(playerLogoutCmd)
	playerCmd.AddCommand(playerWhoamiCmd)
	playerCmd.AddCommand(playerListCmd)
	playerCmd.AddCommand(playerSyncCmd)
}

// currentPlayer returns the current player, or the zero Player when
// playing anonymously.
func currentPlayer(a *app) players.Player {
	p, ok, err := a.svc.Players.Current()
	if err != nil {
		a.logger.Warn("could not read current player", "error", err)
	}
	if !ok {
		return players.Player{}
	}
	return p
}
