// Package dodge implements Dodge Master: move left and right to avoid
// falling objects. Every object that leaves the field scores a point and
// every hit costs a life.
package dodge

import (
	"time"

	"github.com/vovakirdan/casual-arcade/internal/config"
	"github.com/vovakirdan/casual-arcade/internal/core"
	"github.com/vovakirdan/casual-arcade/internal/engine"
	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/registry"
	"github.com/vovakirdan/casual-arcade/internal/rng"
)

// FrameInterval is the animation cadence the physics constants are tuned for.
const FrameInterval = time.Second / 60

// Object is a falling obstacle. It keeps the speed it spawned with.
type Object struct {
	Rect  core.RectF
	Speed float64
	Color core.Color
}

// Game implements the Dodge Master session.
type Game struct {
	engine.Base

	cfg    config.DodgeConfig
	policy config.DifficultyPolicy

	score   int
	lives   int
	player  core.RectF
	left    bool // Held movement flags
	right   bool
	objects []Object
	level   config.DifficultyLevel
	frames  int // Frames since the last spawn
	flash   bool
}

// State is the typed view of a dodge session.
type State struct {
	Status    core.Status
	Score     int
	Lives     int
	Player    core.RectF
	Objects   []Object
	Speed     float64
	SpawnRate int
	Flash     bool // A hit happened in the last FlashMs
	Width     float64
	Height    float64
}

// New creates a new Dodge Master session in the Idle status.
func New(cfg config.DodgeConfig, env engine.Env) *Game {
	g := &Game{
		cfg:    cfg,
		policy: config.NewDifficultyPolicy(cfg.Difficulty),
	}
	g.Init(record.Dodge, env)
	g.reset()
	return g
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Dodge Master"
}

func (g *Game) reset() {
	g.score = 0
	g.lives = g.cfg.Lives
	g.player = core.RectF{
		X: g.cfg.Field.Width/2 - g.cfg.Player.Width/2,
		Y: g.cfg.Field.Height - g.cfg.Player.BottomOffset,
		W: g.cfg.Player.Width,
		H: g.cfg.Player.Height,
	}
	g.left, g.right = false, false
	g.objects = g.objects[:0]
	g.level = g.policy.Initial()
	g.frames = 0
	g.flash = false
}

// Start resets the field and activates the session.
func (g *Game) Start() {
	g.Begin()
	g.reset()
	g.EmitState(g.Snapshot())
}

// Apply handles movement key presses and releases and the pause toggle.
func (g *Game) Apply(cmd core.Command) bool {
	if cmd.Action == core.ActionPause {
		return g.PauseToggle()
	}
	if !g.Active() {
		return false
	}

	switch cmd.Action {
	case core.ActionMoveLeft:
		g.left = true
	case core.ActionMoveRight:
		g.right = true
	case core.ActionStopLeft:
		g.left = false
	case core.ActionStopRight:
		g.right = false
	default:
		return false
	}
	return true
}

// Tick advances one animation frame: move, spawn, fall, collide, then
// update difficulty.
func (g *Game) Tick() {
	if !g.Active() {
		return
	}

	g.movePlayer()
	g.spawn()
	g.fall()
	if g.collide() {
		g.EmitState(g.Snapshot())
		return
	}
	g.level, _ = g.policy.Step(g.level, g.score)
	g.EmitState(g.Snapshot())
}

func (g *Game) movePlayer() {
	maxX := g.cfg.Field.Width - g.player.W
	if g.left && g.player.X > 0 {
		g.player.X -= g.cfg.Player.Speed
	}
	if g.right && g.player.X < maxX {
		g.player.X += g.cfg.Player.Speed
	}
	g.player.X = core.ClampF(g.player.X, 0, maxX)
}

func (g *Game) spawn() {
	g.frames++
	if g.frames < g.level.SpawnRate {
		return
	}
	g.frames = 0

	r := g.Rand()
	g.objects = append(g.objects, Object{
		Rect: core.RectF{
			X: r.Float64() * (g.cfg.Field.Width - g.cfg.Objects.Width),
			Y: g.cfg.Objects.SpawnY,
			W: g.cfg.Objects.Width,
			H: g.cfg.Objects.Height,
		},
		Speed: g.level.Speed,
		Color: rng.Pick(r, core.Palette),
	})
}

// fall moves every object down and scores the ones that left the field.
func (g *Game) fall() {
	for i := len(g.objects) - 1; i >= 0; i-- {
		g.objects[i].Rect.Y += g.objects[i].Speed
		if g.objects[i].Rect.Y > g.cfg.Field.Height {
			g.objects = append(g.objects[:i], g.objects[i+1:]...)
			g.score++
		}
	}
}

// collide removes every object touching the player and costs a life for
// each. It returns true when the last life was lost.
func (g *Game) collide() bool {
	for i := len(g.objects) - 1; i >= 0; i-- {
		if !g.objects[i].Rect.Intersects(g.player) {
			continue
		}
		g.objects = append(g.objects[:i], g.objects[i+1:]...)
		g.lives--
		g.flash = true
		g.After(time.Duration(g.cfg.FlashMs)*time.Millisecond, func() {
			g.flash = false
		})

		if g.lives <= 0 {
			g.lives = 0
			g.Finish(g.score, nil, true)
			return true
		}
	}
	return false
}

// End forces the session to end.
func (g *Game) End() core.SessionResult {
	res := g.Abort(g.score)
	g.EmitState(g.Snapshot())
	return res
}

// PauseToggle switches between Active and Paused. Held movement is released
// on every toggle.
func (g *Game) PauseToggle() bool {
	if !g.SetPaused(g.Active()) {
		return false
	}
	g.left, g.right = false, false
	g.EmitState(g.Snapshot())
	return true
}

// Accepting reports whether movement input is accepted.
func (g *Game) Accepting() bool {
	return g.Active()
}

// TickInterval returns the animation frame cadence.
func (g *Game) TickInterval() time.Duration {
	return FrameInterval
}

// Snapshot returns the game-agnostic state.
func (g *Game) Snapshot() core.Snapshot {
	return g.Snap(g.score, g.lives, true)
}

// State returns the typed state. Objects is a copy.
func (g *Game) State() State {
	objects := make([]Object, len(g.objects))
	copy(objects, g.objects)
	return State{
		Status:    g.Status(),
		Score:     g.score,
		Lives:     g.lives,
		Player:    g.player,
		Objects:   objects,
		Speed:     g.level.Speed,
		SpawnRate: g.level.SpawnRate,
		Flash:     g.flash,
		Width:     g.cfg.Field.Width,
		Height:    g.cfg.Field.Height,
	}
}

// Register the game
func init() {
	registry.Register(record.Dodge, func(cfg config.GamesConfig, env engine.Env) registry.Game {
		return New(cfg.Dodge, env)
	})
}
