package memory

import (
	"sort"
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
	f.g = New(config.Default().Memory, engine.Env{
		Sched:   f.sched,
		Sink:    f.rec,
		Records: record.NewKeeper(f.store, nil),
		Rand:    rng.New(seed),
	})
	return f
}

// pairs groups card indexes by symbol.
func pairs(cards []Card) map[string][]int {
	out := make(map[string][]int)
	for i, c := range cards {
		out[c.Symbol] = append(out[c.Symbol], i)
	}
	return out
}

// mismatch returns two indexes holding different symbols.
func mismatch(cards []Card) (int, int) {
	for j := 1; j < len(cards); j++ {
		if cards[j].Symbol != cards[0].Symbol {
			return 0, j
		}
	}
	return -1, -1
}

func reveal(g *Game, i int) bool {
	return g.Apply(core.CmdArg(core.ActionReveal, i))
}

func TestBuildDeckPreservesSymbols(t *testing.T) {
	symbols := config.Default().Memory.Symbols
	for seed := int64(1); seed <= 20; seed++ {
		deck := BuildDeck(symbols, rng.New(seed))
		if len(deck) != 16 {
			t.Fatalf("seed %d: deck has %d cards", seed, len(deck))
		}

		var got, want []string
		for _, c := range deck {
			got = append(got, c.Symbol)
		}
		for _, s := range symbols {
			want = append(want, s, s)
		}
		sort.Strings(got)
		sort.Strings(want)
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("seed %d: symbol multiset changed", seed)
			}
		}

		for sym, idx := range pairs(deck) {
			if len(idx) != 2 {
				t.Errorf("seed %d: symbol %s appears %d times", seed, sym, len(idx))
			}
		}
	}
}

func TestMatchFlow(t *testing.T) {
	f := newFixture(t, 42)
	f.g.Start()
	cards := f.g.State().Cards
	p := pairs(cards)[cards[0].Symbol]

	if !reveal(f.g, p[0]) {
		t.Fatal("first reveal rejected")
	}
	if reveal(f.g, p[0]) {
		t.Error("revealing a face-up card should be rejected")
	}
	if !reveal(f.g, p[1]) {
		t.Fatal("second reveal rejected")
	}

	s := f.g.State()
	if s.Moves != 1 || !s.Checking || f.g.Accepting() {
		t.Fatalf("after two reveals: %+v", s)
	}
	if reveal(f.g, firstHidden(s.Cards)) {
		t.Error("reveal accepted while checking")
	}

	f.sched.Advance(499 * time.Millisecond)
	if f.g.State().MatchedPairs != 0 {
		t.Error("pair marked before the reveal delay")
	}
	f.sched.Advance(time.Millisecond)

	s = f.g.State()
	if s.MatchedPairs != 1 || s.Checking || !s.Cards[p[0]].Matched || !s.Cards[p[1]].Matched {
		t.Errorf("after match delay: %+v", s)
	}
	if reveal(f.g, p[0]) {
		t.Error("revealing a matched card should be rejected")
	}
}

func firstHidden(cards []Card) int {
	for i, c := range cards {
		if !c.FaceUp && !c.Matched {
			return i
		}
	}
	return -1
}

func TestMismatchFlipsBack(t *testing.T) {
	f := newFixture(t, 42)
	f.g.Start()
	a, b := mismatch(f.g.State().Cards)

	reveal(f.g, a)
	reveal(f.g, b)

	f.sched.Advance(999 * time.Millisecond)
	if s := f.g.State(); !s.Cards[a].FaceUp || !s.Checking {
		t.Fatal("cards flipped back before the mismatch delay")
	}
	f.sched.Advance(time.Millisecond)

	s := f.g.State()
	if s.Cards[a].FaceUp || s.Cards[b].FaceUp || s.Checking || s.Moves != 1 || s.MatchedPairs != 0 {
		t.Errorf("after mismatch delay: %+v", s)
	}
}

func TestInvalidReveals(t *testing.T) {
	f := newFixture(t, 1)

	if reveal(f.g, 0) {
		t.Error("reveal accepted while Idle")
	}
	f.g.Start()
	for _, i := range []int{-1, 16, 100} {
		if reveal(f.g, i) {
			t.Errorf("reveal(%d) accepted", i)
		}
	}
	if f.g.Apply(core.Cmd(core.ActionClick)) {
		t.Error("unrelated action accepted")
	}
	if s := f.g.State(); s.Moves != 0 || firstHidden(s.Cards) != 0 {
		t.Errorf("rejected input mutated state: %+v", s)
	}
}

func TestFullGameWins(t *testing.T) {
	f := newFixture(t, 9)
	f.g.Start()
	cards := f.g.State().Cards

	// One wasted move, then every pair directly
	a, b := mismatch(cards)
	reveal(f.g, a)
	reveal(f.g, b)
	f.sched.Advance(time.Second)

	for _, idx := range pairs(cards) {
		reveal(f.g, idx[0])
		reveal(f.g, idx[1])
		f.sched.Advance(500 * time.Millisecond)
	}

	s := f.g.State()
	if s.MatchedPairs != 8 || s.Moves != 9 {
		t.Fatalf("state = %+v", s)
	}
	if f.g.Status() != core.StatusActive {
		t.Fatal("session ended before the win delay")
	}

	f.sched.Advance(500 * time.Millisecond)
	if f.g.Status() != core.StatusEnded {
		t.Fatalf("status = %v, expected Ended", f.g.Status())
	}
	ended := f.rec.Ended()
	if len(ended) != 1 || ended[0].FinalScore != 9 || ended[0].Won == nil || !*ended[0].Won || !ended[0].NewRecord {
		t.Errorf("results = %+v", ended)
	}
	if v, _, _ := f.store.Get("memoryBestScore"); v != "9" {
		t.Errorf("stored best = %q", v)
	}
	if h, ok := f.rec.HintBeforeEnd(); !ok || h.Kind != engine.HintSuccess {
		t.Errorf("hint before the end = %+v (%v), expected success", h, ok)
	}
}

func TestWorseGameKeepsBest(t *testing.T) {
	f := newFixture(t, 5)
	f.store.Set("memoryBestScore", "8")
	f.g.Start()

	for _, idx := range pairs(f.g.State().Cards) {
		reveal(f.g, idx[0])
		reveal(f.g, idx[1])
		f.sched.Advance(time.Second)
	}

	ended := f.rec.Ended()
	if len(ended) != 1 || ended[0].NewRecord || ended[0].Best != 8 {
		t.Errorf("results = %+v", ended)
	}
}

func TestRestartCancelsPendingCheck(t *testing.T) {
	f := newFixture(t, 3)
	f.g.Start()
	cards := f.g.State().Cards
	p := pairs(cards)[cards[0].Symbol]
	reveal(f.g, p[0])
	reveal(f.g, p[1])

	f.g.Start()
	f.sched.Advance(time.Second)

	s := f.g.State()
	if s.MatchedPairs != 0 || s.Moves != 0 || s.Checking {
		t.Errorf("stale check leaked into the new session: %+v", s)
	}
	for i, c := range s.Cards {
		if c.FaceUp || c.Matched {
			t.Errorf("card %d not face-down after restart", i)
		}
	}
}
