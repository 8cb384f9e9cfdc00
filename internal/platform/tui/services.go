package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/casual-arcade/internal/config"
	"github.com/vovakirdan/casual-arcade/internal/core"
	"github.com/vovakirdan/casual-arcade/internal/engine"
	"github.com/vovakirdan/casual-arcade/internal/players"
	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/registry"
	"github.com/vovakirdan/casual-arcade/internal/rng"
	"github.com/vovakirdan/casual-arcade/internal/sched"
	"github.com/vovakirdan/casual-arcade/internal/storage"
)

// Services bundles the long-lived collaborators every screen needs.
// A single instance is shared by all SSH sessions.
type Services struct {
	Games   config.GamesConfig
	Runtime core.RuntimeConfig
	Keeper  *record.Keeper
	Players *players.Registry
	Logger  *log.Logger
}

// NewServices wires a record keeper and player registry over store.
func NewServices(store storage.KV, games config.GamesConfig, rt core.RuntimeConfig, logger *log.Logger) Services {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if store == nil {
		store = storage.NewMemoryStore()
	}
	return Services{
		Games:   games,
		Runtime: rt,
		Keeper:  record.NewKeeper(store, logger),
		Players: players.NewRegistry(store, logger),
		Logger:  logger,
	}
}

// session is a game bound to its own clock and event queue.
type session struct {
	game   registry.Game
	clock  *sched.Scheduler
	events *engine.Queue
}

// newSession creates the game identified by gameID in the Idle status.
func (s Services) newSession(gameID string) (session, error) {
	clock := sched.New()
	events := &engine.Queue{}
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game, err := registry.Create(gameID, s.Games, engine.Env{
		Sched:   clock,
		Sink:    events,
		Records: s.Keeper,
		Rand:    rng.New(s.Runtime.Seed),
		Logger:  logger.With("game", gameID),
	})
	if err != nil {
		return session{}, fmt.Errorf("create %s: %w", gameID, err)
	}
	return session{game: game, clock: clock, events: events}, nil
}
