// Package players keeps the nickname registry shared by everyone playing on
// one store, and ranks their best scores on the leaderboard.
package players

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/storage"
)

// Storage keys of the registry.
const (
	UsersKey         = "arcade_users"
	CurrentPlayerKey = "arcade_current_user_id"
)

// MaxNicknameLen is the longest accepted nickname, in characters.
const MaxNicknameLen = 20

var (
	ErrNicknameEmpty   = errors.New("players: nickname is empty")
	ErrNicknameTooLong = fmt.Errorf("players: nickname longer than %d characters", MaxNicknameLen)
	ErrPlayerNotFound  = errors.New("players: player not found")
)

// Player is one registered nickname with its best score per game.
// A nil score means the player has no record for that game.
type Player struct {
	ID        string          `json:"id"`
	Nickname  string          `json:"playerNickname"`
	CreatedAt time.Time       `json:"createdAt"`
	Scores    map[string]*int `json:"scores"` // Keyed by game ID
}

// Score returns the player's best score for gameID.
func (p Player) Score(gameID string) (int, bool) {
	v := p.Scores[gameID]
	if v == nil {
		return 0, false
	}
	return *v, true
}

// NormalizeNickname trims s and validates its length.
func NormalizeNickname(s string) (string, error) {
	s = strings.TrimSpace(s)
	switch n := utf8.RuneCountInString(s); {
	case n == 0:
		return "", ErrNicknameEmpty
	case n > MaxNicknameLen:
		return "", ErrNicknameTooLong
	}
	return s, nil
}

// Registry stores players as one JSON array under UsersKey. It is safe for
// concurrent use; every mutation is a read-modify-write of that key.
type Registry struct {
	store  storage.KV
	logger *log.Logger
	now    func() time.Time

	mu sync.Mutex
}

// NewRegistry creates a registry over store. A nil logger discards output.
func NewRegistry(store storage.KV, logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Registry{store: store, logger: logger, now: time.Now}
}

// Players returns every registered player in registration order.
func (r *Registry) Players() ([]Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// load reads the registry. A malformed document reads as empty.
func (r *Registry) load() ([]Player, error) {
	raw, ok, err := r.store.Get(UsersKey)
	if err != nil {
		return nil, fmt.Errorf("players: load: %w", err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var players []Player
	if err := json.Unmarshal([]byte(raw), &players); err != nil {
		r.logger.Warn("ignoring malformed player registry", "key", UsersKey, "error", err)
		return nil, nil
	}
	for i := range players {
		if players[i].Scores == nil {
			players[i].Scores = make(map[string]*int)
		}
	}
	return players, nil
}

func (r *Registry) save(players []Player) error {
	data, err := json.Marshal(players)
	if err != nil {
		return fmt.Errorf("players: encode: %w", err)
	}
	if err := r.store.Set(UsersKey, string(data)); err != nil {
		return fmt.Errorf("players: save: %w", err)
	}
	return nil
}

// Register returns the player with nickname, compared case-insensitively,
// creating one when none exists. The second result reports creation.
func (r *Registry) Register(nickname string) (Player, bool, error) {
	nickname, err := NormalizeNickname(nickname)
	if err != nil {
		return Player{}, false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	players, err := r.load()
	if err != nil {
		return Player{}, false, err
	}
	if i := indexByNickname(players, nickname); i >= 0 {
		return players[i], false, nil
	}

	p := Player{
		ID:        uuid.NewString(),
		Nickname:  nickname,
		CreatedAt: r.now().UTC(),
		Scores:    make(map[string]*int),
	}
	for _, g := range record.Catalog {
		p.Scores[g.ID] = nil
	}
	if err := r.save(append(players, p)); err != nil {
		return Player{}, false, err
	}
	r.logger.Info("registered player", "nickname", nickname, "id", p.ID)
	return p, true, nil
}

// Login registers nickname if needed and makes it the current player.
func (r *Registry) Login(nickname string) (Player, bool, error) {
	p, created, err := r.Register(nickname)
	if err != nil {
		return Player{}, false, err
	}
	if err := r.store.Set(CurrentPlayerKey, p.ID); err != nil {
		return p, created, fmt.Errorf("players: set current: %w", err)
	}
	return p, created, nil
}

// Current returns the current player, if one is set and still registered.
func (r *Registry) Current() (Player, bool, error) {
	id, ok, err := r.store.Get(CurrentPlayerKey)
	if err != nil {
		return Player{}, false, fmt.Errorf("players: current: %w", err)
	}
	if !ok {
		return Player{}, false, nil
	}
	p, err := r.Get(id)
	if errors.Is(err, ErrPlayerNotFound) {
		return Player{}, false, nil
	}
	return p, err == nil, err
}

// SwitchUser forgets the current player.
func (r *Registry) SwitchUser() error {
	if err := r.store.Remove(CurrentPlayerKey); err != nil {
		return fmt.Errorf("players: switch user: %w", err)
	}
	return nil
}

// Get returns the player with id.
func (r *Registry) Get(id string) (Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	players, err := r.load()
	if err != nil {
		return Player{}, err
	}
	for _, p := range players {
		if p.ID == id {
			return p, nil
		}
	}
	return Player{}, ErrPlayerNotFound
}

// RecordFor offers score as playerID's best for gameID. The stored value
// changes only when the score strictly improves it. It returns whether the
// player's record changed.
func (r *Registry) RecordFor(playerID, gameID string, score int) (bool, error) {
	g, ok := record.Lookup(gameID)
	if !ok {
		return false, fmt.Errorf("players: unknown game %q", gameID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	players, err := r.load()
	if err != nil {
		return false, err
	}
	i := indexByID(players, playerID)
	if i < 0 {
		return false, ErrPlayerNotFound
	}
	if !improves(players[i], g, score) {
		return false, nil
	}
	players[i].Scores[g.ID] = &score
	if err := r.save(players); err != nil {
		return false, err
	}
	return true, nil
}

// SyncCurrent copies every per-game record known to keeper into the current
// player when it improves the player's own record. It returns whether
// anything changed.
func (r *Registry) SyncCurrent(keeper *record.Keeper) (bool, error) {
	cur, ok, err := r.Current()
	if err != nil || !ok {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	players, err := r.load()
	if err != nil {
		return false, err
	}
	i := indexByID(players, cur.ID)
	if i < 0 {
		return false, nil
	}

	changed := false
	for _, g := range record.Catalog {
		best, ok := keeper.Best(g.ID)
		if !ok || !improves(players[i], g, best) {
			continue
		}
		players[i].Scores[g.ID] = &best
		changed = true
	}
	if !changed {
		return false, nil
	}
	return true, r.save(players)
}

// improves reports whether score beats p's record for g. A missing record
// is always beaten. Higher-is-better games treat a missing record as zero.
func improves(p Player, g record.Game, score int) bool {
	cur, ok := p.Score(g.ID)
	if !ok {
		if g.Direction == record.HigherIsBetter {
			return score > 0
		}
		return true
	}
	return g.Direction.Better(score, cur)
}

func indexByID(players []Player, id string) int {
	for i, p := range players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func indexByNickname(players []Player, nickname string) int {
	for i, p := range players {
		if strings.EqualFold(p.Nickname, nickname) {
			return i
		}
	}
	return -1
}
