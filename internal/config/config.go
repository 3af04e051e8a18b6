// Package config provides YAML-based game configuration loading and
// difficulty management for the lander.
package config

import (
	"errors"
	"fmt"
)

// LanderConfig contains all configuration for the lander and its drift prototype.
type LanderConfig struct {
	Physics    LanderPhysics    `yaml:"physics"`
	Ship       LanderShip       `yaml:"ship"`
	Fuel       LanderFuel       `yaml:"fuel"`
	Terrain    LanderTerrain    `yaml:"terrain"`
	Land       LanderLanding    `yaml:"land"`
	Drift      DriftConfig      `yaml:"drift"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LanderPhysics defines per-tick physics parameters, in cells and radians.
type LanderPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	Thrust        float64 `yaml:"thrust"`
	SideThrust    float64 `yaml:"side_thrust"`
	RetroThrust   float64 `yaml:"retro_thrust"`
	MaxSpeed      float64 `yaml:"max_speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`
}

// LanderShip defines the ship's collision box and spawn point.
// Spawn coordinates are fractions of the playfield size.
type LanderShip struct {
	Size   float64 `yaml:"size"`
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
}

// LanderFuel defines the fuel budget.
type LanderFuel struct {
	Initial  float64 `yaml:"initial"`
	Burn     float64 `yaml:"burn"`      // per tick of main or retro engine
	SideBurn float64 `yaml:"side_burn"` // per tick of a side thruster
	Refill   float64 `yaml:"refill"`    // added after each landing
}

// LanderTerrain defines the mountain and starfield generation.
type LanderTerrain struct {
	Step      int     `yaml:"step"`      // columns between polyline points
	Amplitude float64 `yaml:"amplitude"` // fraction of screen height
	Frequency float64 `yaml:"frequency"` // noise samples per column
	Alpha     float64 `yaml:"alpha"`     // perlin weight divisor
	Beta      float64 `yaml:"beta"`      // perlin harmonic scaling
	Octaves   int32   `yaml:"octaves"`
	Pads      int     `yaml:"pads"`
	Stars     int     `yaml:"stars"`
}

// LanderLanding defines what counts as a safe landing and how it scores.
type LanderLanding struct {
	MaxHSpeed  float64 `yaml:"max_hspeed"`
	MaxVSpeed  float64 `yaml:"max_vspeed"`
	MaxAngle   float64 `yaml:"max_angle"`
	Points     int     `yaml:"points"`
	FuelBonus  float64 `yaml:"fuel_bonus"` // points per unit of fuel left
	PauseTicks int     `yaml:"pause_ticks"`
}

// DriftConfig tunes the drift prototype.
type DriftConfig struct {
	MoveStep   float64 `yaml:"move_step"`
	RotateStep float64 `yaml:"rotate_step"`
	DriftX     float64 `yaml:"drift_x"`
	DriftY     float64 `yaml:"drift_y"`
}

// InputConfig tunes key handling.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	GravityMultiplier float64 `yaml:"gravity_multiplier"` // added to gravity at max difficulty
	PadReduction      int     `yaml:"pad_reduction"`      // pads removed at max difficulty
}

// Validate reports configuration values that would break the simulation.
func (c LanderConfig) Validate() error {
	var errs []error
	if c.Physics.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_speed must be positive, got %v", c.Physics.MaxSpeed))
	}
	if c.Physics.Gravity < 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must not be negative, got %v", c.Physics.Gravity))
	}
	if c.Ship.Size <= 0 {
		errs = append(errs, fmt.Errorf("ship.size must be positive, got %v", c.Ship.Size))
	} else if c.Physics.MaxSpeed > c.Ship.Size {
		errs = append(errs, fmt.Errorf("physics.max_speed must not exceed ship.size, got %v > %v", c.Physics.MaxSpeed, c.Ship.Size))
	}
	if c.Terrain.Step <= 0 {
		errs = append(errs, fmt.Errorf("terrain.step must be positive, got %d", c.Terrain.Step))
	}
	if c.Terrain.Amplitude < 0 || c.Terrain.Amplitude > 0.5 {
		errs = append(errs, fmt.Errorf("terrain.amplitude must be in [0, 0.5], got %v", c.Terrain.Amplitude))
	}
	if c.Terrain.Octaves <= 0 {
		errs = append(errs, fmt.Errorf("terrain.octaves must be positive, got %d", c.Terrain.Octaves))
	}
	if c.Terrain.Pads < 1 {
		errs = append(errs, fmt.Errorf("terrain.pads must be at least 1, got %d", c.Terrain.Pads))
	}
	if c.Fuel.Initial < 0 {
		errs = append(errs, fmt.Errorf("fuel.initial must not be negative, got %v", c.Fuel.Initial))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid lander config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty input means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
