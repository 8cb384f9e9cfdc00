package dodge

import (
	"testing"
	"time"

	"github.com/vovakirdan/casual-arcade/internal/config"
	"github.com/vovakirdan/casual-arcade/internal/core"
	"github.com/vovakirdan/casual-arcade/internal/engine"
	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/rng"
	"github.com/vovakirdan/casual-arcade/internal/sched"
	"github.com/vovakirdan/casual-arcade/internal/storage"
)

type fixture struct {
	g     *Game
	sched *sched.Scheduler
	store *storage.MemoryStore
	rec   *engine.Recorder
}

func newFixture(t *testing.T, seed int64) fixture {
	t.Helper()
	f := fixture{
		sched: sched.New(),
		store: storage.NewMemoryStore(),
		rec:   &engine.Recorder{},
	}
	f.g = New(config.Default().Dodge, engine.Env{
		Sched:   f.sched,
		Sink:    f.rec,
		Records: record.NewKeeper(f.store, nil),
		Rand:    rng.New(seed),
	})
	return f
}

// frame advances the clock by one frame and ticks the game.
func (f fixture) frame() {
	f.sched.Advance(FrameInterval)
	f.g.Tick()
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical states
	f1 := newFixture(t, 12345)
	f2 := newFixture(t, 12345)
	f1.g.Start()
	f2.g.Start()

	for i := 0; i < 600; i++ {
		if i == 30 {
			f1.g.Apply(core.Cmd(core.ActionMoveLeft))
			f2.g.Apply(core.Cmd(core.ActionMoveLeft))
		}
		f1.frame()
		f2.frame()
	}

	s1, s2 := f1.g.State(), f2.g.State()
	if s1.Score != s2.Score || s1.Lives != s2.Lives || len(s1.Objects) != len(s2.Objects) {
		t.Fatalf("states diverged: %+v vs %+v", s1, s2)
	}
	for i := range s1.Objects {
		if s1.Objects[i] != s2.Objects[i] {
			t.Errorf("object %d differs: %+v vs %+v", i, s1.Objects[i], s2.Objects[i])
		}
	}
}

func TestInitialState(t *testing.T) {
	f := newFixture(t, 1)
	f.g.Start()
	s := f.g.State()

	if s.Lives != 3 || s.Score != 0 || s.Speed != 2 || s.SpawnRate != 60 {
		t.Errorf("initial state = %+v", s)
	}
	if s.Player.X != 175 || s.Player.Y != 540 {
		t.Errorf("player at (%v, %v), expected (175, 540)", s.Player.X, s.Player.Y)
	}
}

func TestSpawnCadence(t *testing.T) {
	f := newFixture(t, 7)
	f.g.Start()

	for i := 0; i < 59; i++ {
		f.frame()
	}
	if n := len(f.g.State().Objects); n != 0 {
		t.Fatalf("spawned %d objects before frame 60", n)
	}

	f.frame()
	objs := f.g.State().Objects
	if len(objs) != 1 {
		t.Fatalf("expected 1 object at frame 60, got %d", len(objs))
	}
	o := objs[0]
	if o.Rect.X < 0 || o.Rect.X > 370 || o.Speed != 2 || o.Rect.W != 30 {
		t.Errorf("spawned object = %+v", o)
	}
	// Spawned at y=-30 then fell once in the same frame
	if o.Rect.Y != -28 {
		t.Errorf("object y = %v, expected -28", o.Rect.Y)
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	f := newFixture(t, 1)
	f.g.Start()

	f.g.Apply(core.Cmd(core.ActionMoveLeft))
	for i := 0; i < 50; i++ {
		f.frame()
	}
	if x := f.g.State().Player.X; x != 0 {
		t.Errorf("player x = %v, expected clamp at 0", x)
	}

	f.g.Apply(core.Cmd(core.ActionStopLeft))
	f.g.Apply(core.Cmd(core.ActionMoveRight))
	for i := 0; i < 60; i++ {
		f.frame()
	}
	if x := f.g.State().Player.X; x != 350 {
		t.Errorf("player x = %v, expected clamp at 350", x)
	}

	f.g.Apply(core.Cmd(core.ActionStopRight))
	before := f.g.State().Player.X
	f.frame()
	if f.g.State().Player.X != before {
		t.Error("player moved after key release")
	}
}

func TestObjectLeavingFieldScores(t *testing.T) {
	f := newFixture(t, 1)
	f.g.Start()
	f.g.objects = []Object{
		{Rect: core.RectF{X: 0, Y: 599, W: 30, H: 30}, Speed: 2},
		{Rect: core.RectF{X: 0, Y: 100, W: 30, H: 30}, Speed: 2},
	}

	f.frame()
	s := f.g.State()
	if s.Score != 1 || len(s.Objects) != 1 {
		t.Errorf("score = %d, objects = %d; expected 1 and 1", s.Score, len(s.Objects))
	}
}

func TestCollisionCostsLifeAndFlashes(t *testing.T) {
	f := newFixture(t, 1)
	f.g.Start()
	p := f.g.State().Player
	f.g.objects = []Object{{Rect: core.RectF{X: p.X, Y: p.Y - 10, W: 30, H: 30}, Speed: 2}}

	f.frame()
	s := f.g.State()
	if s.Lives != 2 || len(s.Objects) != 0 || !s.Flash {
		t.Fatalf("after hit: %+v", s)
	}

	f.sched.Advance(200 * time.Millisecond)
	if f.g.State().Flash {
		t.Error("flash should clear after 200ms")
	}
}

func TestLastLifeEndsAndSkipsDifficulty(t *testing.T) {
	f := newFixture(t, 1)
	f.g.Start()
	f.g.lives = 1
	f.g.score = 9
	p := f.g.State().Player
	f.g.objects = []Object{
		{Rect: core.RectF{X: 0, Y: 599, W: 30, H: 30}, Speed: 2},  // scores the 10th point
		{Rect: core.RectF{X: p.X, Y: p.Y, W: 30, H: 30}, Speed: 2}, // hits
	}

	f.frame()
	s := f.g.State()
	if s.Status != core.StatusEnded || s.Lives != 0 || s.Score != 10 {
		t.Fatalf("state = %+v", s)
	}
	if s.Speed != 2 || s.SpawnRate != 60 {
		t.Errorf("difficulty updated on the ending frame: speed %v, spawn %d", s.Speed, s.SpawnRate)
	}

	ended := f.rec.Ended()
	if len(ended) != 1 || ended[0].FinalScore != 10 || !ended[0].NewRecord {
		t.Errorf("results = %+v", ended)
	}
	if v, _, _ := f.store.Get("dodgeHighScore"); v != "10" {
		t.Errorf("stored = %q", v)
	}
}

func TestDifficultyStepsOnScore(t *testing.T) {
	f := newFixture(t, 1)
	f.g.Start()
	f.g.score = 9
	f.g.objects = []Object{{Rect: core.RectF{X: 0, Y: 599, W: 30, H: 30}, Speed: 2}}

	f.frame()
	s := f.g.State()
	if s.Score != 10 || s.Speed != 2.5 || s.SpawnRate != 55 {
		t.Fatalf("after score 10: %+v", s)
	}

	// Staying at 10 does not step again
	f.frame()
	if s := f.g.State(); s.Speed != 2.5 || s.SpawnRate != 55 {
		t.Errorf("difficulty stepped twice at 10: %+v", s)
	}
}

func TestPauseToggle(t *testing.T) {
	f := newFixture(t, 1)

	if f.g.PauseToggle() {
		t.Error("pause accepted while Idle")
	}
	if f.g.Apply(core.Cmd(core.ActionPause)) || f.g.Status() != core.StatusIdle {
		t.Errorf("status = %v after pause on an idle game, expected Idle", f.g.Status())
	}

	f.g.Start()
	f.g.Apply(core.Cmd(core.ActionMoveRight))
	if !f.g.Apply(core.Cmd(core.ActionPause)) || f.g.Status() != core.StatusPaused {
		t.Fatal("pause failed")
	}
	if f.g.Apply(core.Cmd(core.ActionMoveLeft)) {
		t.Error("movement accepted while paused")
	}

	before := f.g.State()
	f.frame()
	if after := f.g.State(); after.Player != before.Player || len(after.Objects) != len(before.Objects) {
		t.Error("paused game advanced")
	}

	if !f.g.PauseToggle() || !f.g.Active() {
		t.Fatal("resume failed")
	}
	if f.g.right || f.g.left {
		t.Error("held movement should be released on toggle")
	}
}

func TestRestartClearsField(t *testing.T) {
	f := newFixture(t, 3)
	f.g.Start()
	for i := 0; i < 200; i++ {
		f.frame()
	}
	f.g.Start()

	s := f.g.State()
	if len(s.Objects) != 0 || s.Score != 0 || s.Lives != 3 || s.Flash {
		t.Errorf("state after restart = %+v", s)
	}
}

func TestRenderDrawsPlayer(t *testing.T) {
	f := newFixture(t, 1)
	f.g.Start()

	scr := core.NewScreen(42, 32)
	f.g.Render(scr)

	found := false
	for y := 0; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			if c := scr.GetCell(x, y); c.Rune == '▄' && c.Color == core.ColorGreen {
				found = true
			}
		}
	}
	if !found {
		t.Error("player not rendered")
	}
	if scr.Get(0, 0) != '┌' {
		t.Errorf("border corner = %q", scr.Get(0, 0))
	}
}
