package players

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/storage"
)

func TestNormalizeNickname(t *testing.T) {
	tests := []struct {
		in       string
		expected string
		err      error
	}{
		{"  alice  ", "alice", nil},
		{"", "", ErrNicknameEmpty},
		{"    ", "", ErrNicknameEmpty},
		{strings.Repeat("x", 20), strings.Repeat("x", 20), nil},
		{strings.Repeat("x", 21), "", ErrNicknameTooLong},
		{strings.Repeat("é", 20), strings.Repeat("é", 20), nil},
	}

	for _, tc := range tests {
		got, err := NormalizeNickname(tc.in)
		if !errors.Is(err, tc.err) || got != tc.expected {
			t.Errorf("NormalizeNickname(%q) = (%q, %v), expected (%q, %v)", tc.in, got, err, tc.expected, tc.err)
		}
	}
}

func TestRegisterCaseInsensitive(t *testing.T) {
	r := NewRegistry(storage.NewMemoryStore(), nil)

	p1, created, err := r.Register("Alice")
	if err != nil || !created {
		t.Fatalf("Register() = %+v, %v, %v", p1, created, err)
	}
	if p1.ID == "" || p1.CreatedAt.IsZero() {
		t.Errorf("new player missing id or timestamp: %+v", p1)
	}
	for _, g := range record.Catalog {
		if _, ok := p1.Score(g.ID); ok {
			t.Errorf("new player has a %s score", g.ID)
		}
	}

	p2, created, err := r.Register("  aLiCe ")
	if err != nil || created || p2.ID != p1.ID {
		t.Errorf("second Register() = %+v, created %v, err %v", p2, created, err)
	}

	all, _ := r.Players()
	if len(all) != 1 {
		t.Errorf("registry has %d players, expected 1", len(all))
	}
}

func TestRegisterRejectsInvalid(t *testing.T) {
	r := NewRegistry(storage.NewMemoryStore(), nil)
	if _, _, err := r.Register(" "); !errors.Is(err, ErrNicknameEmpty) {
		t.Errorf("err = %v, expected ErrNicknameEmpty", err)
	}
	all, _ := r.Players()
	if len(all) != 0 {
		t.Error("invalid nickname was registered")
	}
}

func TestLoginAndSwitchUser(t *testing.T) {
	store := storage.NewMemoryStore()
	r := NewRegistry(store, nil)

	if _, ok, _ := r.Current(); ok {
		t.Fatal("no current player expected")
	}

	p, _, err := r.Login("bob")
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	cur, ok, err := r.Current()
	if err != nil || !ok || cur.ID != p.ID {
		t.Errorf("Current() = %+v, %v, %v", cur, ok, err)
	}

	if err := r.SwitchUser(); err != nil {
		t.Fatalf("SwitchUser() failed: %v", err)
	}
	if _, ok, _ := r.Current(); ok {
		t.Error("current player should be cleared")
	}

	// A dangling current id reads as no player
	store.Set(CurrentPlayerKey, "gone")
	if _, ok, err := r.Current(); ok || err != nil {
		t.Errorf("dangling current id: ok=%v err=%v", ok, err)
	}
}

func TestRecordFor(t *testing.T) {
	r := NewRegistry(storage.NewMemoryStore(), nil)
	p, _, _ := r.Register("carol")

	tests := []struct {
		game     string
		score    int
		improved bool
		stored   int
	}{
		{record.Clicker, 0, false, 0},
		{record.Clicker, 40, true, 40},
		{record.Clicker, 40, false, 40},
		{record.Clicker, 35, false, 40},
		{record.Memory, 20, true, 20},
		{record.Memory, 25, false, 20},
		{record.Memory, 12, true, 12},
	}

	for _, tc := range tests {
		improved, err := r.RecordFor(p.ID, tc.game, tc.score)
		if err != nil {
			t.Fatalf("RecordFor(%s, %d) failed: %v", tc.game, tc.score, err)
		}
		if improved != tc.improved {
			t.Errorf("RecordFor(%s, %d) improved = %v, expected %v", tc.game, tc.score, improved, tc.improved)
		}
		got, _ := r.Get(p.ID)
		if v, _ := got.Score(tc.game); v != tc.stored {
			t.Errorf("after RecordFor(%s, %d) stored = %d, expected %d", tc.game, tc.score, v, tc.stored)
		}
	}

	if _, err := r.RecordFor("nobody", record.Clicker, 5); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("err = %v, expected ErrPlayerNotFound", err)
	}
	if _, err := r.RecordFor(p.ID, "pinball", 5); err == nil {
		t.Error("unknown game should fail")
	}
}

func TestSyncCurrent(t *testing.T) {
	store := storage.NewMemoryStore()
	r := NewRegistry(store, nil)
	keeper := record.NewKeeper(store, nil)
	p, _, _ := r.Login("dave")

	store.Set("clickerHighScore", "55")
	store.Set("guessBestScore", "4")
	r.RecordFor(p.ID, record.Guess, 3)

	changed, err := r.SyncCurrent(keeper)
	if err != nil || !changed {
		t.Fatalf("SyncCurrent() = %v, %v", changed, err)
	}
	got, _ := r.Get(p.ID)
	if v, _ := got.Score(record.Clicker); v != 55 {
		t.Errorf("clicker = %d, expected 55", v)
	}
	if v, _ := got.Score(record.Guess); v != 3 {
		t.Errorf("guess = %d, expected own better 3", v)
	}

	if changed, _ := r.SyncCurrent(keeper); changed {
		t.Error("second sync should change nothing")
	}
}

func TestMalformedRegistryReadsEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Set(UsersKey, "{not json")
	r := NewRegistry(store, nil)

	all, err := r.Players()
	if err != nil || len(all) != 0 {
		t.Errorf("Players() = %v, %v", all, err)
	}
	if _, created, err := r.Register("eve"); err != nil || !created {
		t.Errorf("Register() over malformed registry: %v, %v", created, err)
	}
}

func TestRegistryPersistsAcrossInstances(t *testing.T) {
	store, err := storage.Open(t.TempDir() + "/arcade.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	r1 := NewRegistry(store, nil)
	p, _, _ := r1.Register("frank")
	r1.RecordFor(p.ID, record.Dodge, 17)

	r2 := NewRegistry(store, nil)
	got, err := r2.Get(p.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if v, _ := got.Score(record.Dodge); v != 17 || got.Nickname != "frank" {
		t.Errorf("reloaded player = %+v", got)
	}
}
