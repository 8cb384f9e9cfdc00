package guess

import (
	"strconv"
	"testing"

	"github.com/vovakirdan/casual-arcade/internal/config"
	"github.com/vovakirdan/casual-arcade/internal/core"
	"github.com/vovakirdan/casual-arcade/internal/engine"
	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/rng"
	"github.com/vovakirdan/casual-arcade/internal/rules"
	"github.com/vovakirdan/casual-arcade/internal/storage"
)

func newGame(t *testing.T) (*Game, *storage.MemoryStore, *engine.Recorder) {
	t.Helper()
	store := storage.NewMemoryStore()
	rec := &engine.Recorder{}
	g := New(config.Default().Guess, engine.Env{
		Sink:    rec,
		Records: record.NewKeeper(store, nil),
		Rand:    rng.New(1),
	})
	g.Start()
	g.secret = 50
	return g, store, rec
}

func guess(g *Game, text string) bool {
	return g.Apply(core.CmdText(core.ActionGuess, text))
}

func TestCorrectFirstGuessWins(t *testing.T) {
	g, store, rec := newGame(t)

	if !guess(g, "50") {
		t.Fatal("guess rejected")
	}
	if g.Status() != core.StatusEnded {
		t.Fatalf("status = %v, expected Ended", g.Status())
	}
	ended := rec.Ended()
	if len(ended) != 1 || ended[0].Won == nil || !*ended[0].Won || ended[0].FinalScore != 1 {
		t.Fatalf("results = %+v", ended)
	}
	if !ended[0].NewRecord {
		t.Error("first win should set the best score")
	}
	if v, _, _ := store.Get("guessBestScore"); v != "1" {
		t.Errorf("stored best = %q", v)
	}
	if s := g.State(); s.Secret != 50 || s.AttemptsUsed != 1 {
		t.Errorf("state = %+v", s)
	}
	if h, ok := rec.HintBeforeEnd(); !ok || h.Kind != engine.HintSuccess {
		t.Errorf("hint before the end = %+v (%v), expected success", h, ok)
	}
}

func TestTenMissesLose(t *testing.T) {
	g, store, rec := newGame(t)

	for i := 1; i <= 10; i++ {
		if g.Status() != core.StatusActive {
			t.Fatalf("ended early before guess %d", i)
		}
		if !guess(g, strconv.Itoa(i)) {
			t.Fatalf("guess %d rejected", i)
		}
	}

	if g.Status() != core.StatusEnded {
		t.Fatalf("status = %v, expected Ended", g.Status())
	}
	ended := rec.Ended()
	if len(ended) != 1 || ended[0].Won == nil || *ended[0].Won || ended[0].FinalScore != 10 {
		t.Fatalf("results = %+v", ended)
	}
	if ended[0].Recorded {
		t.Error("a loss must not be offered as a record")
	}
	if h, ok := rec.HintBeforeEnd(); !ok || h.Kind != engine.HintError {
		t.Errorf("hint before the end = %+v (%v), expected error", h, ok)
	}
	if _, ok, _ := store.Get("guessBestScore"); ok {
		t.Error("a loss must not persist a best score")
	}
	if guess(g, "50") {
		t.Error("guess accepted after Ended")
	}
}

func TestInvalidInputCostsNothing(t *testing.T) {
	g, _, rec := newGame(t)

	for _, text := range []string{"", "abc", "0", "101", "-5", "12abc", "4.5"} {
		if guess(g, text) {
			t.Errorf("guess(%q) accepted", text)
		}
		if h, _ := rec.LastHint(); h.Kind != engine.HintError {
			t.Errorf("guess(%q) hint kind = %v, expected error", text, h.Kind)
		}
	}
	if s := g.State(); s.AttemptsLeft != 10 || len(s.History) != 0 {
		t.Errorf("invalid input mutated state: %+v", s)
	}

	if !guess(g, " 42 ") {
		t.Error("surrounding whitespace should be trimmed")
	}
}

func TestHintsAndRangeNarrowing(t *testing.T) {
	g, _, rec := newGame(t)

	guess(g, "30")
	if h, _ := rec.LastHint(); h.Kind != engine.HintLow {
		t.Errorf("hint = %+v, expected low", h)
	}
	guess(g, "70")
	if h, _ := rec.LastHint(); h.Kind != engine.HintHigh {
		t.Errorf("hint = %+v, expected high", h)
	}
	guess(g, "20") // below the known minimum: range unchanged

	s := g.State()
	if s.Low != 31 || s.High != 69 {
		t.Errorf("range = [%d, %d], expected [31, 69]", s.Low, s.High)
	}
	if s.AttemptsLeft != 7 || s.AttemptsUsed != 3 {
		t.Errorf("attempts = %d left / %d used", s.AttemptsLeft, s.AttemptsUsed)
	}

	want := []Entry{
		{Attempt: 1, Guess: 30, Verdict: rules.TooLow},
		{Attempt: 2, Guess: 70, Verdict: rules.TooHigh},
		{Attempt: 3, Guess: 20, Verdict: rules.TooLow},
	}
	for i, e := range s.History {
		if e != want[i] {
			t.Errorf("history[%d] = %+v, expected %+v", i, e, want[i])
		}
	}
	if hist := rec.History(); len(hist) != 3 {
		t.Errorf("emitted %d history entries, expected 3", len(hist))
	}
}

func TestRepeatedGuessWarnsButCounts(t *testing.T) {
	g, _, rec := newGame(t)

	guess(g, "10")
	rec.Reset()
	if !guess(g, "10") {
		t.Fatal("repeated guess rejected")
	}

	hints := rec.Hints()
	if len(hints) != 2 || hints[0].Kind != engine.HintWarning || hints[1].Kind != engine.HintLow {
		t.Errorf("hints = %+v, expected warning then low", hints)
	}
	if s := g.State(); s.AttemptsLeft != 8 {
		t.Errorf("attempts left = %d, expected 8", s.AttemptsLeft)
	}
}

func TestWorseWinKeepsBest(t *testing.T) {
	g, store, rec := newGame(t)
	store.Set("guessBestScore", "2")

	guess(g, "10")
	guess(g, "90")
	guess(g, "50")

	ended := rec.Ended()
	if len(ended) != 1 || ended[0].NewRecord || ended[0].Best != 2 {
		t.Errorf("results = %+v", ended)
	}
}

func TestSecretInRange(t *testing.T) {
	g := New(config.Default().Guess, engine.Env{Rand: rng.New(99)})
	for i := 0; i < 200; i++ {
		g.Start()
		if g.secret < 1 || g.secret > 100 {
			t.Fatalf("secret %d out of range", g.secret)
		}
	}
}

func TestEntryString(t *testing.T) {
	tests := []struct {
		entry    Entry
		expected string
	}{
		{Entry{1, 30, rules.TooLow}, "Attempt 1: 30 ↑ (too low)"},
		{Entry{2, 70, rules.TooHigh}, "Attempt 2: 70 ↓ (too high)"},
		{Entry{3, 50, rules.Correct}, "Attempt 3: 50"},
	}
	for _, tc := range tests {
		if got := tc.entry.String(); got != tc.expected {
			t.Errorf("String() = %q, expected %q", got, tc.expected)
		}
	}
}
