// Package memory implements Memory Cards: find every pair in a shuffled
// deck with as few moves as possible.
package memory

import (
	"time"

	"github.com/vovakirdan/casual-arcade/internal/config"
	"github.com/vovakirdan/casual-arcade/internal/core"
	"github.com/vovakirdan/casual-arcade/internal/engine"
	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/registry"
	"github.com/vovakirdan/casual-arcade/internal/rng"
	"github.com/vovakirdan/casual-arcade/internal/rules"
)

// Card is one card of the deck.
type Card struct {
	Symbol  string
	FaceUp  bool
	Matched bool
}

// BuildDeck returns two cards per symbol in shuffled order.
func BuildDeck(symbols []string, r *rng.Rand) []Card {
	deck := make([]Card, 0, len(symbols)*2)
	for _, s := range symbols {
		deck = append(deck, Card{Symbol: s}, Card{Symbol: s})
	}
	rng.Shuffle(r, deck)
	return deck
}

// Game implements the Memory Cards session.
type Game struct {
	engine.Base

	cfg      config.MemoryConfig
	deck     []Card
	flipped  []int // Indexes of face-up, unmatched cards; at most two
	moves    int
	matched  int
	checking bool // A two-card comparison is in flight
}

// State is the typed view of a memory session.
type State struct {
	Status       core.Status
	Cards        []Card
	Moves        int
	MatchedPairs int
	TotalPairs   int
	Checking     bool
}

// New creates a new Memory Cards session in the Idle status.
func New(cfg config.MemoryConfig, env engine.Env) *Game {
	g := &Game{cfg: cfg}
	g.Init(record.Memory, env)
	return g
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Memory Cards"
}

// Start deals a fresh shuffled deck and activates the session.
func (g *Game) Start() {
	g.Begin()
	g.deck = BuildDeck(g.cfg.Symbols, g.Rand())
	g.flipped = g.flipped[:0]
	g.moves = 0
	g.matched = 0
	g.checking = false
	g.Hint("Find all matching pairs!", engine.HintInfo)
	g.EmitState(g.Snapshot())
}

// Apply reveals the card at cmd.Arg. Reveals are rejected while a pair is
// being checked and for cards that are already face-up or matched.
func (g *Game) Apply(cmd core.Command) bool {
	if !g.Accepting() || cmd.Action != core.ActionReveal {
		return false
	}
	i := cmd.Arg
	if i < 0 || i >= len(g.deck) {
		return false
	}
	if g.deck[i].FaceUp || g.deck[i].Matched {
		return false
	}

	g.deck[i].FaceUp = true
	g.flipped = append(g.flipped, i)
	if len(g.flipped) == 2 {
		g.moves++
		g.check()
	}
	g.EmitState(g.Snapshot())
	return true
}

// check resolves the two face-up cards after the reveal delay.
func (g *Game) check() {
	g.checking = true
	a, b := g.flipped[0], g.flipped[1]

	if rules.PairEqual(g.deck[a].Symbol, g.deck[b].Symbol) {
		g.After(ms(g.cfg.MatchDelayMs), func() {
			g.deck[a].Matched = true
			g.deck[b].Matched = true
			g.matched++
			g.flipped = g.flipped[:0]
			g.checking = false

			if g.matched == g.TotalPairs() {
				g.After(ms(g.cfg.WinDelayMs), g.win)
			}
			g.EmitState(g.Snapshot())
		})
		return
	}

	g.After(ms(g.cfg.MismatchDelayMs), func() {
		g.deck[a].FaceUp = false
		g.deck[b].FaceUp = false
		g.flipped = g.flipped[:0]
		g.checking = false
		g.EmitState(g.Snapshot())
	})
}

func (g *Game) win() {
	g.Hint("All pairs found!", engine.HintSuccess)
	g.Finish(g.moves, core.Bool(true), true)
	g.EmitState(g.Snapshot())
}

// Tick is a no-op; the game is driven by input and deferred checks.
func (g *Game) Tick() {}

// End forces the session to end.
func (g *Game) End() core.SessionResult {
	res := g.Abort(g.moves)
	g.EmitState(g.Snapshot())
	return res
}

// PauseToggle is not supported by the memory game.
func (g *Game) PauseToggle() bool {
	return false
}

// Accepting reports whether a reveal would be considered.
func (g *Game) Accepting() bool {
	return g.Active() && !g.checking
}

// TickInterval returns zero: the game does not need ticks.
func (g *Game) TickInterval() time.Duration {
	return 0
}

// TotalPairs returns the number of pairs in the deck.
func (g *Game) TotalPairs() int {
	return len(g.cfg.Symbols)
}

// Snapshot returns the game-agnostic state. Score is the move count and
// Remaining the number of unmatched pairs.
func (g *Game) Snapshot() core.Snapshot {
	return g.Snap(g.moves, g.TotalPairs()-g.matched, !g.checking)
}

// State returns the typed state. Cards is a copy.
func (g *Game) State() State {
	cards := make([]Card, len(g.deck))
	copy(cards, g.deck)
	return State{
		Status:       g.Status(),
		Cards:        cards,
		Moves:        g.moves,
		MatchedPairs: g.matched,
		TotalPairs:   g.TotalPairs(),
		Checking:     g.checking,
	}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Register the game
func init() {
	registry.Register(record.Memory, func(cfg config.GamesConfig, env engine.Env) registry.Game {
		return New(cfg.Memory, env)
	})
}
