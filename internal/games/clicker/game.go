// Package clicker implements Speed Clicker: count as many clicks as possible
// before a countdown runs out.
package clicker

import (
	"time"

	"github.com/vovakirdan/casual-arcade/internal/config"
	"github.com/vovakirdan/casual-arcade/internal/core"
	"github.com/vovakirdan/casual-arcade/internal/engine"
	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/registry"
)

// Game implements the Speed Clicker session.
type Game struct {
	engine.Base

	cfg      config.ClickerConfig
	score    int
	timeLeft int
}

// State is the typed view of a clicker session.
type State struct {
	Status   core.Status
	Score    int
	TimeLeft int
}

// New creates a new Speed Clicker session in the Idle status.
func New(cfg config.ClickerConfig, env engine.Env) *Game {
	g := &Game{cfg: cfg, timeLeft: cfg.DurationSecs}
	g.Init(record.Clicker, env)
	return g
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Speed Clicker"
}

// Start resets the score and the countdown and activates the session.
func (g *Game) Start() {
	g.Begin()
	g.score = 0
	g.timeLeft = g.cfg.DurationSecs
	g.Hint("Click as fast as you can!", engine.HintInfo)
	g.EmitState(g.Snapshot())
}

// Apply accepts clicks while the countdown runs.
func (g *Game) Apply(cmd core.Command) bool {
	if !g.Active() || cmd.Action != core.ActionClick {
		return false
	}
	g.score++
	g.EmitState(g.Snapshot())
	return true
}

// Tick decrements the countdown by one second and ends the session at zero.
func (g *Game) Tick() {
	if !g.Active() {
		return
	}
	g.timeLeft--
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		g.Finish(g.score, nil, true)
	}
	g.EmitState(g.Snapshot())
}

// End forces the session to end.
func (g *Game) End() core.SessionResult {
	res := g.Abort(g.score)
	g.EmitState(g.Snapshot())
	return res
}

// PauseToggle is not supported by the clicker.
func (g *Game) PauseToggle() bool {
	return false
}

// Accepting reports whether clicks are counted.
func (g *Game) Accepting() bool {
	return g.Active()
}

// TickInterval returns the countdown cadence.
func (g *Game) TickInterval() time.Duration {
	return time.Second
}

// Snapshot returns the game-agnostic state.
func (g *Game) Snapshot() core.Snapshot {
	return g.Snap(g.score, g.timeLeft, true)
}

// State returns the typed state.
func (g *Game) State() State {
	return State{Status: g.Status(), Score: g.score, TimeLeft: g.timeLeft}
}

// ResetHighScore removes the stored high score.
func (g *Game) ResetHighScore() error {
	return g.Records().Reset(record.Clicker)
}

// Register the game
func init() {
	registry.Register(record.Clicker, func(cfg config.GamesConfig, env engine.Env) registry.Game {
		return New(cfg.Clicker, env)
	})
}
