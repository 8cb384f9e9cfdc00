package rules

import "testing"

func TestDetermineWinner(t *testing.T) {
	tests := []struct {
		player, computer Choice
		expected         Outcome
	}{
		{Rock, Scissors, Win},
		{Scissors, Paper, Win},
		{Paper, Rock, Win},
		{Scissors, Rock, Lose},
		{Paper, Scissors, Lose},
		{Rock, Paper, Lose},
		{Paper, Paper, Draw},
		{Rock, Rock, Draw},
		{Scissors, Scissors, Draw},
	}

	for _, tc := range tests {
		t.Run(tc.player.String()+"_vs_"+tc.computer.String(), func(t *testing.T) {
			if got := DetermineWinner(tc.player, tc.computer); got != tc.expected {
				t.Errorf("DetermineWinner(%v, %v) = %v, expected %v", tc.player, tc.computer, got, tc.expected)
			}
		})
	}
}

func TestBeatsIsAntisymmetric(t *testing.T) {
	for _, a := range Choices {
		for _, b := range Choices {
			if a.Beats(b) && b.Beats(a) {
				t.Errorf("%v and %v beat each other", a, b)
			}
			if a == b && a.Beats(b) {
				t.Errorf("%v beats itself", a)
			}
		}
	}
}

func TestChoiceValid(t *testing.T) {
	if !Rock.Valid() || !Scissors.Valid() {
		t.Error("rock and scissors must be valid")
	}
	if Choice(-1).Valid() || Choice(3).Valid() {
		t.Error("out-of-range choices must be invalid")
	}
}

func TestPairEqual(t *testing.T) {
	if !PairEqual("🍎", "🍎") {
		t.Error("identical symbols must match")
	}
	if PairEqual("🍎", "🍌") {
		t.Error("different symbols must not match")
	}
}

func TestNarrowRange(t *testing.T) {
	tests := []struct {
		name           string
		lo, hi, guess  int
		verdict        Verdict
		wantLo, wantHi int
	}{
		{"low raises min", 1, 100, 40, TooLow, 41, 100},
		{"high lowers max", 1, 100, 60, TooHigh, 1, 59},
		{"low below current min", 50, 100, 10, TooLow, 50, 100},
		{"high above current max", 1, 30, 80, TooHigh, 1, 30},
		{"correct unchanged", 10, 20, 15, Correct, 10, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi := NarrowRange(tc.lo, tc.hi, tc.guess, tc.verdict)
			if lo != tc.wantLo || hi != tc.wantHi {
				t.Errorf("NarrowRange() = [%d, %d], expected [%d, %d]", lo, hi, tc.wantLo, tc.wantHi)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	if Compare(10, 50) != TooLow || Compare(90, 50) != TooHigh || Compare(50, 50) != Correct {
		t.Error("Compare() returned an unexpected verdict")
	}
}
