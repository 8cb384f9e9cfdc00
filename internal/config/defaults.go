package config

import (
	_ "embed"
)

//go:embed defaults/games.yaml
var defaultGamesYAML []byte

// Default returns the hard-coded game configuration. It matches the embedded
// defaults/games.yaml and is used when that cannot be parsed.
func Default() GamesConfig {
	return GamesConfig{
		Clicker: ClickerConfig{
			DurationSecs: 10,
		},
		Dodge: DodgeConfig{
			Field: DodgeField{
				Width:  400,
				Height: 600,
			},
			Player: DodgePlayer{
				Width:        50,
				Height:       50,
				BottomOffset: 60,
				Speed:        8,
			},
			Objects: DodgeObjects{
				Width:  30,
				Height: 30,
				SpawnY: -30,
			},
			Lives:   3,
			FlashMs: 200,
			Difficulty: DodgeDifficulty{
				Enabled:          true,
				InitialSpeed:     2,
				InitialSpawnRate: 60,
				Every:            10,
				SpeedStep:        0.5,
				MaxSpeed:         8,
				SpawnStep:        5,
				MinSpawnRate:     20,
			},
		},
		Memory: MemoryConfig{
			Symbols:         []string{"🎮", "🎯", "🎲", "🎪", "🎨", "🎭", "🎬", "🎸"},
			MatchDelayMs:    500,
			MismatchDelayMs: 1000,
			WinDelayMs:      500,
		},
		Guess: GuessConfig{
			Min:      1,
			Max:      100,
			Attempts: 10,
		},
		RPS: RPSConfig{
			WinningScore:  3,
			RevealDelayMs: 1000,
			EndDelayMs:    1500,
		},
	}
}

// DefaultYAML returns the embedded default games.yaml.
func DefaultYAML() []byte {
	return defaultGamesYAML
}
