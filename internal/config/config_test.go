package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded games.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded defaults differ from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.yaml")
	data := []byte("clicker:\n  duration_secs: 30\nguess:\n  attempts: 7\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Clicker.DurationSecs != 30 {
		t.Errorf("DurationSecs = %d, expected 30", cfg.Clicker.DurationSecs)
	}
	if cfg.Guess.Attempts != 7 {
		t.Errorf("Attempts = %d, expected 7", cfg.Guess.Attempts)
	}
	// Unset keys keep their defaults
	if cfg.Guess.Max != 100 || cfg.RPS.WinningScore != 3 {
		t.Errorf("partial file lost defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("clicker: [unclosed"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestSanitize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.yaml")
	data := []byte("clicker:\n  duration_secs: 0\nguess:\n  min: 50\n  max: 10\nmemory:\n  symbols: []\n")
	os.WriteFile(path, data, 0o644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Clicker.DurationSecs != 10 {
		t.Errorf("DurationSecs = %d, expected default 10", cfg.Clicker.DurationSecs)
	}
	if cfg.Guess.Min != 10 || cfg.Guess.Max != 50 {
		t.Errorf("guess range = [%d, %d], expected [10, 50]", cfg.Guess.Min, cfg.Guess.Max)
	}
	if len(cfg.Memory.Symbols) != 8 {
		t.Errorf("symbols = %v, expected defaults", cfg.Memory.Symbols)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		lives     int
		speed     float64
		spawnRate int
		enabled   bool
	}{
		{DifficultyEasy, 5, 2, 60, true},
		{DifficultyNormal, 3, 2, 60, true},
		{DifficultyHard, 2, 3, 45, true},
		{DifficultyFixed, 3, 2, 60, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			d := cfg.Dodge
			if d.Lives != tc.lives || d.Difficulty.InitialSpeed != tc.speed ||
				d.Difficulty.InitialSpawnRate != tc.spawnRate || d.Difficulty.Enabled != tc.enabled {
				t.Errorf("ApplyPreset(%s) = %+v", tc.preset, d)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("unknown preset should be rejected")
	}
}
