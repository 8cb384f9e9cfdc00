package players

import (
	"sort"

	"github.com/vovakirdan/casual-arcade/internal/record"
)

// LeaderboardSize is the number of entries shown on the leaderboard.
const LeaderboardSize = 10

// Entry is one ranked (player, game) score.
type Entry struct {
	Rank      int // 1-based
	PlayerID  string
	Player    string
	GameID    string
	Game      string
	Score     int
	Unit      string
	Direction record.Directionality
	IsCurrent bool
}

// TopN ranks every non-empty per-game score of players and returns the
// first n. Each comparison uses the left entry's direction, so higher-is-
// better entries sort descending and lower-is-better ones ascending within
// one merged list. Ties keep registration order.
func TopN(n int, players []Player, currentID string) []Entry {
	return rank(n, collect(players, currentID, ""))
}

// TopForGame ranks the scores of a single game and returns the first n.
func TopForGame(n int, players []Player, gameID, currentID string) []Entry {
	return rank(n, collect(players, currentID, gameID))
}

// collect flattens non-empty scores into entries, optionally for one game.
func collect(players []Player, currentID, gameID string) []Entry {
	var entries []Entry
	for _, p := range players {
		for _, g := range record.Catalog {
			if gameID != "" && g.ID != gameID {
				continue
			}
			v := p.Scores[g.ID]
			if record.Empty(v) {
				continue
			}
			entries = append(entries, Entry{
				PlayerID:  p.ID,
				Player:    p.Nickname,
				GameID:    g.ID,
				Game:      g.Title,
				Score:     *v,
				Unit:      g.Unit,
				Direction: g.Direction,
				IsCurrent: currentID != "" && p.ID == currentID,
			})
		}
	}
	return entries
}

func rank(n int, entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Direction == record.LowerIsBetter {
			return a.Score < b.Score
		}
		return a.Score > b.Score
	})

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
