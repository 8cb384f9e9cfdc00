// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/casual-arcade/internal/config"
	"github.com/vovakirdan/casual-arcade/internal/core"
	"github.com/vovakirdan/casual-arcade/internal/engine"
	"github.com/vovakirdan/casual-arcade/internal/record"
)

// Game is the session contract every game implements.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "clicker", "memory").
	// Used for CLI commands and record keys.
	ID() string

	// Title returns a human-readable name for display (e.g., "Speed Clicker").
	Title() string

	// Start begins a new session. Safe to call in any status; pending
	// callbacks of the previous session are cancelled.
	Start()

	// Apply delivers one input command. It returns false when the command
	// was rejected; rejection never mutates state.
	Apply(cmd core.Command) bool

	// Tick advances one fixed step for countdown and frame-driven games.
	// No-op unless the session is Active.
	Tick()

	// End forces the session to Ended without a verdict or record.
	End() core.SessionResult

	// PauseToggle switches between Active and Paused for games that
	// support it. It returns whether the status changed.
	PauseToggle() bool

	// Status returns the lifecycle status.
	Status() core.Status

	// Snapshot returns the game-agnostic state.
	Snapshot() core.Snapshot

	// Accepting reports whether input is currently accepted.
	Accepting() bool

	// TickInterval is the cadence Tick expects: one second for countdowns,
	// one frame for animation-driven games, zero for event-driven games.
	TickInterval() time.Duration
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance bound to its configuration and collaborators.
type Factory func(cfg config.GamesConfig, env engine.Env) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(config.Default(), engine.Env{})
	titles[id] = g.Title()
}

// List returns information about all registered games in catalog order.
// Games missing from the catalog follow, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		oi, oj := catalogIndex(result[i].ID), catalogIndex(result[j].ID)
		if oi != oj {
			return oi < oj
		}
		return result[i].ID < result[j].ID
	})

	return result
}

func catalogIndex(id string) int {
	for i, g := range record.Catalog {
		if g.ID == id {
			return i
		}
	}
	return len(record.Catalog)
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, cfg config.GamesConfig, env engine.Env) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(cfg, env), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
