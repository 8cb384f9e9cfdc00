// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// GamesConfig holds the tunables of every game. It is loaded from a single
// games.yaml file.
type GamesConfig struct {
	Clicker ClickerConfig `yaml:"clicker"`
	Dodge   DodgeConfig   `yaml:"dodge"`
	Memory  MemoryConfig  `yaml:"memory"`
	Guess   GuessConfig   `yaml:"guess"`
	RPS     RPSConfig     `yaml:"rps"`
}

// ClickerConfig contains all configuration for Speed Clicker.
type ClickerConfig struct {
	DurationSecs int `yaml:"duration_secs"`
}

// DodgeConfig contains all configuration for Dodge Master.
type DodgeConfig struct {
	Field      DodgeField      `yaml:"field"`
	Player     DodgePlayer     `yaml:"player"`
	Objects    DodgeObjects    `yaml:"objects"`
	Lives      int             `yaml:"lives"`
	FlashMs    int             `yaml:"flash_ms"`
	Difficulty DodgeDifficulty `yaml:"difficulty"`
}

// DodgeField defines the play area in world units.
type DodgeField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DodgePlayer defines the player box. The box sits BottomOffset units above
// the bottom edge of the field.
type DodgePlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"`
	Speed        float64 `yaml:"speed"`
}

// DodgeObjects defines falling object dimensions.
type DodgeObjects struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	SpawnY float64 `yaml:"spawn_y"`
}

// DodgeDifficulty defines the step progression of falling speed and spawn rate.
type DodgeDifficulty struct {
	Enabled          bool    `yaml:"enabled"`
	InitialSpeed     float64 `yaml:"initial_speed"`
	InitialSpawnRate int     `yaml:"initial_spawn_rate"` // Frames between spawns
	Every            int     `yaml:"every"`              // Score multiple that triggers a step
	SpeedStep        float64 `yaml:"speed_step"`
	MaxSpeed         float64 `yaml:"max_speed"`
	SpawnStep        int     `yaml:"spawn_step"`
	MinSpawnRate     int     `yaml:"min_spawn_rate"`
}

// MemoryConfig contains all configuration for Memory Cards.
type MemoryConfig struct {
	Symbols         []string `yaml:"symbols"`
	MatchDelayMs    int      `yaml:"match_delay_ms"`
	MismatchDelayMs int      `yaml:"mismatch_delay_ms"`
	WinDelayMs      int      `yaml:"win_delay_ms"`
}

// GuessConfig contains all configuration for Number Guessing.
type GuessConfig struct {
	Min      int `yaml:"min"`
	Max      int `yaml:"max"`
	Attempts int `yaml:"attempts"`
}

// RPSConfig contains all configuration for Rock Paper Scissors.
type RPSConfig struct {
	WinningScore  int `yaml:"winning_score"`
	RevealDelayMs int `yaml:"reveal_delay_ms"`
	EndDelayMs    int `yaml:"end_delay_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. An empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
