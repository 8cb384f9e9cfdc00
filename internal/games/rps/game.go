// Package rps implements Rock Paper Scissors against the computer. The
// first side to win the configured number of rounds takes the match.
package rps

import (
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/casual-arcade/internal/config"
	"github.com/vovakirdan/casual-arcade/internal/core"
	"github.com/vovakirdan/casual-arcade/internal/engine"
	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/registry"
	"github.com/vovakirdan/casual-arcade/internal/rng"
	"github.com/vovakirdan/casual-arcade/internal/rules"
)

// Entry is one resolved round.
type Entry struct {
	Round    int
	Player   rules.Choice
	Computer rules.Choice
	Outcome  rules.Outcome
}

// Game implements the Rock Paper Scissors session.
type Game struct {
	engine.Base

	cfg       config.RPSConfig
	player    int // Rounds won
	computer  int
	round     int
	resolving bool // A round is waiting for its reveal delay
	last      *Entry
	history   []Entry
}

// State is the typed view of a match.
type State struct {
	Status        core.Status
	PlayerScore   int
	ComputerScore int
	Round         int
	WinningScore  int
	Resolving     bool
	Last          *Entry  // Most recently resolved round
	History       []Entry // Oldest first
}

// New creates a new Rock Paper Scissors session in the Idle status.
func New(cfg config.RPSConfig, env engine.Env) *Game {
	g := &Game{cfg: cfg}
	g.Init(record.RPS, env)
	return g
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Rock Paper Scissors"
}

// Start resets both scores and activates the session.
func (g *Game) Start() {
	g.Begin()
	g.player, g.computer, g.round = 0, 0, 0
	g.resolving = false
	g.last = nil
	g.history = g.history[:0]
	g.Hint("Choose your move!", engine.HintInfo)
	g.EmitState(g.Snapshot())
}

// Apply plays the choice in cmd.Arg. The computer's choice is drawn
// immediately and the round resolves after the reveal delay.
func (g *Game) Apply(cmd core.Command) bool {
	if !g.Accepting() || cmd.Action != core.ActionChoose {
		return false
	}
	choice := rules.Choice(cmd.Arg)
	if !choice.Valid() {
		return false
	}

	g.round++
	g.resolving = true
	computer := rng.Pick(g.Rand(), rules.Choices)
	round := g.round
	g.Hint("Making choices...", engine.HintInfo)
	g.After(ms(g.cfg.RevealDelayMs), func() {
		g.resolve(round, choice, computer)
	})
	g.EmitState(g.Snapshot())
	return true
}

func (g *Game) resolve(round int, player, computer rules.Choice) {
	outcome := rules.DetermineWinner(player, computer)
	switch outcome {
	case rules.Win:
		g.player++
		g.Hint(fmt.Sprintf("You Win! %s beats %s", player, computer), engine.HintSuccess)
	case rules.Lose:
		g.computer++
		g.Hint(fmt.Sprintf("You Lose! %s beats %s", computer, player), engine.HintError)
	default:
		g.Hint(fmt.Sprintf("Draw! Both chose %s", player), engine.HintWarning)
	}

	entry := Entry{Round: round, Player: player, Computer: computer, Outcome: outcome}
	g.last = &entry
	g.history = append(g.history, entry)
	g.AppendHistory(entry)

	if g.player >= g.cfg.WinningScore || g.computer >= g.cfg.WinningScore {
		// Input stays locked until the match ends
		g.After(ms(g.cfg.EndDelayMs), g.finish)
	} else {
		g.resolving = false
	}
	g.EmitState(g.Snapshot())
}

func (g *Game) finish() {
	won := g.player >= g.cfg.WinningScore
	if won {
		g.Hint("You won the match!", engine.HintSuccess)
	} else {
		g.Hint("Computer won the match!", engine.HintError)
	}
	g.Finish(g.player, core.Bool(won), true)
	g.EmitState(g.Snapshot())
}

// Tick is a no-op; rounds resolve through deferred callbacks.
func (g *Game) Tick() {}

// End forces the session to end.
func (g *Game) End() core.SessionResult {
	res := g.Abort(g.player)
	g.EmitState(g.Snapshot())
	return res
}

// PauseToggle is not supported by rock paper scissors.
func (g *Game) PauseToggle() bool {
	return false
}

// Accepting reports whether a new round can be played.
func (g *Game) Accepting() bool {
	return g.Active() && !g.resolving
}

// TickInterval returns zero: the game does not need ticks.
func (g *Game) TickInterval() time.Duration {
	return 0
}

// Snapshot returns the game-agnostic state. Score is the player's rounds
// won and Remaining the rounds the player still needs.
func (g *Game) Snapshot() core.Snapshot {
	return g.Snap(g.player, max(g.cfg.WinningScore-g.player, 0), !g.resolving)
}

// State returns the typed state.
func (g *Game) State() State {
	s := State{
		Status:        g.Status(),
		PlayerScore:   g.player,
		ComputerScore: g.computer,
		Round:         g.round,
		WinningScore:  g.cfg.WinningScore,
		Resolving:     g.resolving,
		History:       slices.Clone(g.history),
	}
	if g.last != nil {
		last := *g.last
		s.Last = &last
	}
	return s
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Register the game
func init() {
	registry.Register(record.RPS, func(cfg config.GamesConfig, env engine.Env) registry.Game {
		return New(cfg.RPS, env)
	})
}
