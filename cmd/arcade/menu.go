package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/casual-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

You are asked for a nickname the first time. Use arrow keys or j/k to
navigate, Enter to select a game. After a game you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Leaderboard
  U            - Switch player
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./arcade.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	restore := a.logToFile()
	defer restore()

	width, height := terminalSize()

	player := currentPlayer(a)
	if player.ID == "" {
		p, err := tui.RunNickname(a.svc.Players.Login, os.Getenv("USER"), width, height)
		if err != nil {
			return fmt.Errorf("nickname prompt: %w", err)
		}
		if p == nil {
			return nil
		}
		player = *p
	}

	// Menu loop
	for {
		// Pick up records set by the last game
		if p, err := a.svc.Players.Get(player.ID); err == nil {
			player = p
		}

		menuResult, err := tui.RunMenu(a.svc, player, width, height)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		if menuResult.Width > 0 && menuResult.Height > 0 {
			width, height = menuResult.Width, menuResult.Height
		}

		switch {
		case menuResult.Quit:
			return nil

		case menuResult.WantsLeaderboard:
			goBack, err := tui.RunLeaderboard(a.svc, player.ID, width, height)
			if err != nil {
				return fmt.Errorf("leaderboard: %w", err)
			}
			if !goBack {
				return nil // User quit from leaderboard
			}

		case menuResult.SwitchPlayer:
			if err := a.svc.Players.SwitchUser(); err != nil {
				a.logger.Warn("could not clear current player", "error", err)
			}
			p, err := tui.RunNickname(a.svc.Players.Login, "", width, height)
			if err != nil {
				return fmt.Errorf("nickname prompt: %w", err)
			}
			if p == nil {
				return nil
			}
			player = *p

		case menuResult.GameID != "":
			outcome, err := tui.RunGame(a.svc, menuResult.GameID, player)
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			if outcome.Quit {
				return nil
			}
		}
	}
}
