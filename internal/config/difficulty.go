package config

import "math"

// DifficultyLevel is the dodge game's current falling speed and spawn rate.
type DifficultyLevel struct {
	Speed     float64
	SpawnRate int // Frames between spawns
	LastScore int // Score that triggered the most recent step, 0 if none
}

// DifficultyPolicy maps the current score to updated speed and spawn rate.
// It is a pure step function: the caller owns the level and feeds it back.
type DifficultyPolicy struct {
	cfg DodgeDifficulty
}

// NewDifficultyPolicy creates a policy for cfg.
func NewDifficultyPolicy(cfg DodgeDifficulty) DifficultyPolicy {
	return DifficultyPolicy{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (p DifficultyPolicy) IsEnabled() bool {
	return p.cfg.Enabled
}

// Initial returns the level at the start of a session.
func (p DifficultyPolicy) Initial() DifficultyLevel {
	return DifficultyLevel{
		Speed:     p.cfg.InitialSpeed,
		SpawnRate: p.cfg.InitialSpawnRate,
	}
}

// Step applies one increment when score is a positive multiple of Every that
// has not triggered a step yet. Speed rises by SpeedStep capped at MaxSpeed;
// spawn rate drops by SpawnStep floored at MinSpawnRate. The second result
// reports whether the level changed.
func (p DifficultyPolicy) Step(cur DifficultyLevel, score int) (DifficultyLevel, bool) {
	if !p.cfg.Enabled || p.cfg.Every <= 0 {
		return cur, false
	}
	if score <= 0 || score%p.cfg.Every != 0 || score == cur.LastScore {
		return cur, false
	}

	return DifficultyLevel{
		Speed:     math.Min(cur.Speed+p.cfg.SpeedStep, p.cfg.MaxSpeed),
		SpawnRate: max(cur.SpawnRate-p.cfg.SpawnStep, p.cfg.MinSpawnRate),
		LastScore: score,
	}, true
}
