package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Level(%d) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 600},
	})
	if got := d.Level(9999, 300); got != 0.5 {
		t.Errorf("Level at half time = %v, want 0.5", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})
	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := d.Level(1000, 1000); got != 0.4 {
		t.Errorf("disabled Level = %v, want initial 0.4", got)
	}
}

func TestDifficultyGravityAndPads(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{GravityMultiplier: 1.0, PadReduction: 3},
	})

	if got := d.Gravity(0.01, 0, 0); got != 0.01 {
		t.Errorf("Gravity at level 0 = %v, want base", got)
	}
	if got := d.Gravity(0.01, 100, 0); math.Abs(got-0.02) > 1e-12 {
		t.Errorf("Gravity at max = %v, want doubled", got)
	}

	if got := d.Pads(3, 0, 0); got != 3 {
		t.Errorf("Pads at level 0 = %d, want 3", got)
	}
	if got := d.Pads(3, 100, 0); got != 1 {
		t.Errorf("Pads at max = %d, want floor of 1", got)
	}
	if got := d.Pads(0, 0, 0); got != 0 {
		t.Errorf("Pads with base 0 = %d, want 0", got)
	}
}
