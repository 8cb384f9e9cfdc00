// Package guess implements Number Guessing: find a secret number within a
// limited number of attempts, guided by higher/lower hints.
package guess

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/vovakirdan/casual-arcade/internal/config"
	"github.com/vovakirdan/casual-arcade/internal/core"
	"github.com/vovakirdan/casual-arcade/internal/engine"
	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/registry"
	"github.com/vovakirdan/casual-arcade/internal/rules"
)

// Entry is one processed guess.
type Entry struct {
	Attempt int // 1-based
	Guess   int
	Verdict rules.Verdict
}

// String formats the entry the way the history list shows it.
func (e Entry) String() string {
	switch e.Verdict {
	case rules.TooLow:
		return fmt.Sprintf("Attempt %d: %d ↑ (too low)", e.Attempt, e.Guess)
	case rules.TooHigh:
		return fmt.Sprintf("Attempt %d: %d ↓ (too high)", e.Attempt, e.Guess)
	default:
		return fmt.Sprintf("Attempt %d: %d", e.Attempt, e.Guess)
	}
}

// Game implements the Number Guessing session.
type Game struct {
	engine.Base

	cfg     config.GuessConfig
	secret  int
	left    int
	low     int // Known range after narrowing
	high    int
	history []Entry
}

// State is the typed view of a guessing session.
type State struct {
	Status       core.Status
	AttemptsLeft int
	AttemptsUsed int
	Low          int
	High         int
	History      []Entry
	Secret       int // Only revealed once the session has ended
}

// New creates a new Number Guessing session in the Idle status.
func New(cfg config.GuessConfig, env engine.Env) *Game {
	g := &Game{cfg: cfg}
	g.Init(record.Guess, env)
	g.left = cfg.Attempts
	g.low, g.high = cfg.Min, cfg.Max
	return g
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Number Guessing"
}

// Start draws a new secret and activates the session.
func (g *Game) Start() {
	g.Begin()
	g.secret = g.Rand().IntRange(g.cfg.Min, g.cfg.Max)
	g.left = g.cfg.Attempts
	g.low, g.high = g.cfg.Min, g.cfg.Max
	g.history = g.history[:0]
	g.Hint("Make your first guess!", engine.HintInfo)
	g.EmitState(g.Snapshot())
}

// Apply submits cmd.Text as a guess. Text that is not an integer within
// range is rejected with an error hint and costs no attempt.
func (g *Game) Apply(cmd core.Command) bool {
	if !g.Active() || cmd.Action != core.ActionGuess {
		return false
	}

	n, err := strconv.Atoi(strings.TrimSpace(cmd.Text))
	if err != nil || n < g.cfg.Min || n > g.cfg.Max {
		g.Hint(fmt.Sprintf("Please enter a valid number between %d and %d!", g.cfg.Min, g.cfg.Max), engine.HintError)
		return false
	}

	if g.guessed(n) {
		g.Hint("You already guessed that number!", engine.HintWarning)
	}
	g.process(n)
	return true
}

func (g *Game) guessed(n int) bool {
	return slices.ContainsFunc(g.history, func(e Entry) bool { return e.Guess == n })
}

func (g *Game) process(n int) {
	g.left--
	verdict := rules.Compare(n, g.secret)
	entry := Entry{Attempt: g.used(), Guess: n, Verdict: verdict}
	g.history = append(g.history, entry)
	g.AppendHistory(entry)

	switch {
	case verdict == rules.Correct:
		g.Hint("You guessed the number!", engine.HintSuccess)
		g.Finish(g.used(), core.Bool(true), true)
	case g.left == 0:
		g.Hint(fmt.Sprintf("You ran out of attempts! The number was %d.", g.secret), engine.HintError)
		g.Finish(g.used(), core.Bool(false), false)
	case verdict == rules.TooLow:
		g.Hint("Too Low! Try a higher number.", engine.HintLow)
	default:
		g.Hint("Too High! Try a lower number.", engine.HintHigh)
	}
	if !g.Ended() {
		g.low, g.high = rules.NarrowRange(g.low, g.high, n, verdict)
	}
	g.EmitState(g.Snapshot())
}

func (g *Game) used() int {
	return g.cfg.Attempts - g.left
}

// Tick is a no-op; the game is driven by input only.
func (g *Game) Tick() {}

// End forces the session to end.
func (g *Game) End() core.SessionResult {
	res := g.Abort(g.used())
	g.EmitState(g.Snapshot())
	return res
}

// PauseToggle is not supported by the guessing game.
func (g *Game) PauseToggle() bool {
	return false
}

// Accepting reports whether guesses are accepted.
func (g *Game) Accepting() bool {
	return g.Active()
}

// TickInterval returns zero: the game does not need ticks.
func (g *Game) TickInterval() time.Duration {
	return 0
}

// Snapshot returns the game-agnostic state. Score is the number of
// attempts used.
func (g *Game) Snapshot() core.Snapshot {
	return g.Snap(g.used(), g.left, true)
}

// State returns the typed state. History is a copy.
func (g *Game) State() State {
	s := State{
		Status:       g.Status(),
		AttemptsLeft: g.left,
		AttemptsUsed: g.used(),
		Low:          g.low,
		High:         g.high,
		History:      slices.Clone(g.history),
	}
	if g.Ended() {
		s.Secret = g.secret
	}
	return s
}

// Register the game
func init() {
	registry.Register(record.Guess, func(cfg config.GamesConfig, env engine.Env) registry.Game {
		return New(cfg.Guess, env)
	})
}
