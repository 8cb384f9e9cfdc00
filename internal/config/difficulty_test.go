package config

import "testing"

func TestDifficultyProgression(t *testing.T) {
	p := NewDifficultyPolicy(Default().Dodge.Difficulty)
	lvl := p.Initial()
	if lvl.Speed != 2 || lvl.SpawnRate != 60 {
		t.Fatalf("Initial() = %+v, expected speed 2, spawn 60", lvl)
	}

	prev := lvl
	for _, score := range []int{10, 20, 30} {
		next, changed := p.Step(prev, score)
		if !changed {
			t.Fatalf("Step at %d did not change the level", score)
		}
		if next.Speed <= prev.Speed {
			t.Errorf("score %d: speed %v did not increase from %v", score, next.Speed, prev.Speed)
		}
		if next.SpawnRate >= prev.SpawnRate {
			t.Errorf("score %d: spawn rate %d did not decrease from %d", score, next.SpawnRate, prev.SpawnRate)
		}
		prev = next
	}
	if prev.Speed != 3.5 || prev.SpawnRate != 45 {
		t.Errorf("after 30 = %+v, expected speed 3.5, spawn 45", prev)
	}
}

func TestDifficultyStepOncePerMultiple(t *testing.T) {
	p := NewDifficultyPolicy(Default().Dodge.Difficulty)
	lvl, _ := p.Step(p.Initial(), 10)

	again, changed := p.Step(lvl, 10)
	if changed || again != lvl {
		t.Errorf("repeated step at the same score changed the level: %+v -> %+v", lvl, again)
	}
}

func TestDifficultyIgnoresNonMultiples(t *testing.T) {
	p := NewDifficultyPolicy(Default().Dodge.Difficulty)
	for _, score := range []int{0, 1, 9, 11, 15, -10} {
		if _, changed := p.Step(p.Initial(), score); changed {
			t.Errorf("Step at %d should not change the level", score)
		}
	}
}

func TestDifficultyBounds(t *testing.T) {
	p := NewDifficultyPolicy(Default().Dodge.Difficulty)
	lvl := p.Initial()
	for score := 10; score <= 1000; score += 10 {
		lvl, _ = p.Step(lvl, score)
		if lvl.Speed > 8 {
			t.Fatalf("speed %v exceeded cap at score %d", lvl.Speed, score)
		}
		if lvl.SpawnRate < 20 {
			t.Fatalf("spawn rate %d fell below floor at score %d", lvl.SpawnRate, score)
		}
	}
	if lvl.Speed != 8 || lvl.SpawnRate != 20 {
		t.Errorf("final level = %+v, expected speed 8, spawn 20", lvl)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := Default().Dodge.Difficulty
	cfg.Enabled = false
	p := NewDifficultyPolicy(cfg)
	if p.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if _, changed := p.Step(p.Initial(), 10); changed {
		t.Error("disabled policy should never step")
	}
}
