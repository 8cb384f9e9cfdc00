// Package rules holds the pure comparison logic shared by the card, guessing
// and rock-paper-scissors games.
package rules

// PairEqual reports whether two revealed cards form a match.
func PairEqual(a, b string) bool {
	return a == b
}

// Choice is a rock-paper-scissors hand.
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
)

// Choices lists every hand in display order.
var Choices = []Choice{Rock, Paper, Scissors}

// String returns the lower-case name of the choice.
func (c Choice) String() string {
	switch c {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the three hands.
func (c Choice) Valid() bool {
	return c >= Rock && c <= Scissors
}

// Beats reports whether c defeats other: rock > scissors > paper > rock.
func (c Choice) Beats(other Choice) bool {
	switch c {
	case Rock:
		return other == Scissors
	case Paper:
		return other == Rock
	case Scissors:
		return other == Paper
	}
	return false
}

// Outcome is the result of a round from the player's side.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Lose
)

// String returns the lower-case name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Lose:
		return "lose"
	default:
		return "draw"
	}
}

// DetermineWinner resolves one round between the player and the computer.
func DetermineWinner(player, computer Choice) Outcome {
	switch {
	case player == computer:
		return Draw
	case player.Beats(computer):
		return Win
	default:
		return Lose
	}
}

// Verdict is the result of comparing a guess with the secret.
type Verdict int

const (
	Correct Verdict = iota
	TooLow
	TooHigh
)

// String returns the lower-case name of the verdict.
func (v Verdict) String() string {
	switch v {
	case TooLow:
		return "low"
	case TooHigh:
		return "high"
	default:
		return "correct"
	}
}

// Compare tells whether guess is below, above or equal to secret.
func Compare(guess, secret int) Verdict {
	switch {
	case guess < secret:
		return TooLow
	case guess > secret:
		return TooHigh
	default:
		return Correct
	}
}

// NarrowRange tightens the known [lo, hi] bounds after a wrong guess.
// A correct verdict leaves the range unchanged.
func NarrowRange(lo, hi, guess int, v Verdict) (int, int) {
	switch v {
	case TooLow:
		lo = max(lo, guess+1)
	case TooHigh:
		hi = min(hi, guess-1)
	}
	return lo, hi
}
