package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/casual-arcade/internal/platform/tui"
	"github.com/vovakirdan/casual-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. Results count for the current
player (see 'arcade player login').

Controls:
  Enter        - Start / play again
  N            - Restart
  Esc          - Leave the game
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots

  clicker  Space: click
  dodge    Left/Right or A/D: move, P: pause
  memory   Arrows: move, Enter/Space: flip
  guess    Type a number, Enter: guess
  rps      1/R rock, 2/P paper, 3/S scissors

Difficulty options (Dodge Master):
  easy   - Five lives
  normal - Three lives
  hard   - Two lives, faster and denser from the start
  fixed  - No progression, stays at the initial level

Examples:
  arcade play clicker
  arcade play dodge --difficulty easy
  arcade play memory --config ./my-games.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	a, err := setup()
	if err != nil {
		return err
	}
	defer a.close()

	player := currentPlayer(a)

	restore := a.logToFile()
	defer restore()

	if _, err := tui.RunGame(a.svc, gameID, player); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
