// Package record decides whether a finished session beats the stored best
// score for its game, and persists it when it does.
package record

// Directionality tells whether a larger or smaller score is better.
type Directionality int

const (
	HigherIsBetter Directionality = iota
	LowerIsBetter
)

// String returns a human-readable name for the directionality.
func (d Directionality) String() string {
	if d == LowerIsBetter {
		return "lower is better"
	}
	return "higher is better"
}

// Better reports whether candidate strictly improves on current.
func (d Directionality) Better(candidate, current int) bool {
	if d == LowerIsBetter {
		return candidate < current
	}
	return candidate > current
}

// Game identifiers.
const (
	Clicker = "clicker"
	Dodge   = "dodge"
	Memory  = "memory"
	Guess   = "guess"
	RPS     = "rps"
)

// Game describes how a game's record is stored and compared.
type Game struct {
	ID        string
	Title     string
	Key       string // Storage key of the best/high score
	Unit      string // Unit shown next to the score
	Direction Directionality
}

// Catalog lists every game in display order.
var Catalog = []Game{
	{ID: Clicker, Title: "Speed Clicker", Key: "clickerHighScore", Unit: "clicks", Direction: HigherIsBetter},
	{ID: Dodge, Title: "Dodge Master", Key: "dodgeHighScore", Unit: "points", Direction: HigherIsBetter},
	{ID: Memory, Title: "Memory Cards", Key: "memoryBestScore", Unit: "moves", Direction: LowerIsBetter},
	{ID: Guess, Title: "Number Guessing", Key: "guessBestScore", Unit: "attempts", Direction: LowerIsBetter},
	{ID: RPS, Title: "Rock Paper Scissors", Key: "rpsHighScore", Unit: "wins", Direction: HigherIsBetter},
}

// Lookup returns the catalog entry for id.
func Lookup(id string) (Game, bool) {
	for _, g := range Catalog {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// Empty reports whether a stored per-player score counts as "no score" on
// the leaderboard. Both a missing value and zero are empty for every game.
func Empty(score *int) bool {
	return score == nil || *score == 0
}
