// arcade is a terminal arcade of five casual games with persistent records
// and a shared leaderboard.
//
// Usage:
//
//	arcade list                  - List available games
//	arcade play <game>           - Play a game
//	arcade menu                  - Start menu to pick games interactively
//	arcade scores [game]         - Show best scores
//	arcade leaderboard           - Show the top players
//	arcade player <command>      - Manage the current player
//	arcade reset <game>          - Reset a game's best score
//	arcade serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/arcade.db)
//	--config <path>       - Custom games.yaml
//	--difficulty <preset> - Dodge Master preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/casual-arcade/internal/config"
	"github.com/vovakirdan/casual-arcade/internal/core"
	"github.com/vovakirdan/casual-arcade/internal/platform/tui"
	"github.com/vovakirdan/casual-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/casual-arcade/internal/games/clicker"
	_ "github.com/vovakirdan/casual-arcade/internal/games/dodge"
	_ "github.com/vovakirdan/casual-arcade/internal/games/guess"
	_ "github.com/vovakirdan/casual-arcade/internal/games/memory"
	_ "github.com/vovakirdan/casual-arcade/internal/games/rps"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Casual Arcade - quick games with records in your terminal",
	Long: `Casual Arcade bundles five quick games with persistent best scores
and a leaderboard shared by everyone playing on the same database.

Games:
  clicker  - Speed Clicker: click as often as you can in 10 seconds
  dodge    - Dodge Master: avoid the falling blocks
  memory   - Memory Cards: find all pairs in as few moves as possible
  guess    - Number Guessing: find the secret number between 1 and 100
  rps      - Rock Paper Scissors: first to 3 wins

Examples:
  arcade menu
  arcade play dodge --difficulty hard
  arcade player login alice
  arcade leaderboard
  arcade serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/arcade.db", "Path to the records database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom games.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Dodge Master preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}

// app holds the collaborators shared by every command.
type app struct {
	svc    tui.Services
	logger *log.Logger
	close  func()
}

// setup loads configuration, opens the store and wires the services.
// A database that cannot be opened degrades to an in-memory store.
func setup() (*app, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	games, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return nil, fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&games, preset)
	}

	a := &app{logger: logger, close: func() {}}

	var store storage.KV
	db, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open records database, records will not persist", "path", flagDBPath, "error", err)
		store = storage.NewMemoryStore()
	} else {
		store = db
		a.close = func() {
			if err := db.Close(); err != nil {
				logger.Warn("could not close records database", "error", err)
			}
		}
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	rt.Seed = flagSeed
	a.svc = tui.NewServices(store, games, rt, logger)
	return a, nil
}

// logToFile moves log output off the terminal while a TUI owns it.
// It returns a function restoring stderr.
func (a *app) logToFile() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return func() {}
	}
	a.logger.SetOutput(f)
	return func() {
		a.logger.SetOutput(os.Stderr)
		f.Close()
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
