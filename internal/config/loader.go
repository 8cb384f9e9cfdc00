package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const gamesFile = "games.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.arcade/configs/games.yaml -> ./configs/games.yaml -> embedded default
//
// Files are decoded over Default(), so a partial file only overrides the
// keys it sets.
func Load(customPath string) (GamesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(gamesFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", gamesFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultGamesYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hard-coded defaults and sanitizes the result.
func parse(data []byte) (GamesConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	cfg.sanitize()
	return cfg, nil
}

// sanitize replaces values that would make a game unplayable with defaults.
func (c *GamesConfig) sanitize() {
	def := Default()

	if c.Clicker.DurationSecs <= 0 {
		c.Clicker.DurationSecs = def.Clicker.DurationSecs
	}
	if c.Dodge.Field.Width <= 0 || c.Dodge.Field.Height <= 0 {
		c.Dodge.Field = def.Dodge.Field
	}
	if c.Dodge.Lives <= 0 {
		c.Dodge.Lives = def.Dodge.Lives
	}
	if c.Dodge.Difficulty.InitialSpawnRate <= 0 {
		c.Dodge.Difficulty.InitialSpawnRate = def.Dodge.Difficulty.InitialSpawnRate
	}
	if c.Dodge.Difficulty.MinSpawnRate <= 0 {
		c.Dodge.Difficulty.MinSpawnRate = 1
	}
	if c.Dodge.Difficulty.Every <= 0 {
		c.Dodge.Difficulty.Every = def.Dodge.Difficulty.Every
	}
	if len(c.Memory.Symbols) == 0 {
		c.Memory.Symbols = def.Memory.Symbols
	}
	if c.Guess.Min > c.Guess.Max {
		c.Guess.Min, c.Guess.Max = c.Guess.Max, c.Guess.Min
	}
	if c.Guess.Attempts <= 0 {
		c.Guess.Attempts = def.Guess.Attempts
	}
	if c.RPS.WinningScore <= 0 {
		c.RPS.WinningScore = def.RPS.WinningScore
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Only Dodge Master has a difficulty curve; the other games are unaffected.
func ApplyPreset(cfg *GamesConfig, preset DifficultyPreset) {
	d := &cfg.Dodge
	if IsFixedPreset(preset) {
		d.Difficulty.Enabled = false
		return
	}
	d.Difficulty.Enabled = true

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		d.Lives = 5
	case DifficultyHard:
		d.Lives = 2
		d.Difficulty.InitialSpeed = 3
		d.Difficulty.InitialSpawnRate = 45
	}
}
