package record

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/casual-arcade/internal/storage"
)

// Outcome is the result of reconciling a final score against the stored record.
type Outcome struct {
	Best      int  // Record after reconciliation
	HasBest   bool // False only when there was no record and none was set
	NewRecord bool // The score strictly improved the record
	Persisted bool // The new record was written to the store
}

// Keeper reconciles finished sessions with the per-game records in a KV store.
// When the store fails, records are kept in memory for the life of the Keeper
// and the game stays playable.
type Keeper struct {
	store  storage.KV
	logger *log.Logger

	mu    sync.Mutex
	cache map[string]int // Records that could not be read back or persisted
}

// NewKeeper creates a Keeper over store. A nil logger discards log output.
func NewKeeper(store storage.KV, logger *log.Logger) *Keeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if store == nil {
		store = storage.NewMemoryStore()
	}
	return &Keeper{
		store:  store,
		logger: logger,
		cache:  make(map[string]int),
	}
}

// Best returns the current record for gameID.
func (k *Keeper) Best(gameID string) (int, bool) {
	g, ok := Lookup(gameID)
	if !ok {
		return 0, false
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok, _ := k.best(g)
	return v, ok
}

// best merges the stored value with any in-memory value. Caller holds mu.
// A read failure is returned along with the in-memory value alone.
func (k *Keeper) best(g Game) (int, bool, error) {
	stored, hasStored, err := k.read(g)
	cached, hasCached := k.cache[g.ID]

	switch {
	case hasStored && hasCached:
		if g.Direction.Better(cached, stored) {
			return cached, true, nil
		}
		return stored, true, nil
	case hasStored:
		return stored, true, nil
	case hasCached:
		return cached, true, err
	default:
		return 0, false, err
	}
}

func (k *Keeper) read(g Game) (int, bool, error) {
	raw, ok, err := k.store.Get(g.Key)
	if err != nil {
		k.logger.Warn("cannot read record", "game", g.ID, "key", g.Key, "error", err)
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		k.logger.Warn("ignoring malformed record", "game", g.ID, "key", g.Key, "value", raw)
		return 0, false, nil
	}
	return v, true, nil
}

// Reconcile offers a final score for gameID. A missing record is always
// beaten; otherwise the score must strictly improve the record in the game's
// direction. Equal scores never count as a new record.
func (k *Keeper) Reconcile(gameID string, score int) Outcome {
	g, ok := Lookup(gameID)
	if !ok {
		k.logger.Warn("reconcile for unknown game", "game", gameID)
		return Outcome{}
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	best, hasBest, readErr := k.best(g)
	if hasBest && !g.Direction.Better(score, best) {
		return Outcome{Best: best, HasBest: true}
	}

	out := Outcome{Best: score, HasBest: true, NewRecord: true}
	// The stored record is unknown, so it must not be overwritten.
	if readErr != nil {
		k.logger.Warn("record kept in memory", "game", g.ID, "score", score)
		k.cache[g.ID] = score
		return out
	}
	if err := k.store.Set(g.Key, strconv.Itoa(score)); err != nil {
		k.logger.Warn("record not persisted", "game", g.ID, "score", score, "error", err)
		k.cache[g.ID] = score
		return out
	}
	delete(k.cache, g.ID)
	out.Persisted = true
	k.logger.Debug("new record", "game", g.ID, "score", score)
	return out
}

// Reset removes the record for gameID.
func (k *Keeper) Reset(gameID string) error {
	g, ok := Lookup(gameID)
	if !ok {
		return errors.New("record: unknown game " + strconv.Quote(gameID))
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.cache, g.ID)
	return k.store.Remove(g.Key)
}
