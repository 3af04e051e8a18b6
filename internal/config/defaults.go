package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the built-in lander configuration.
// It mirrors defaults/lander.yaml and is used if the embedded file is unusable.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		Physics: LanderPhysics{
			Gravity:       0.0015,
			Thrust:        0.004,
			SideThrust:    0.002,
			RetroThrust:   0.003,
			MaxSpeed:      0.5,
			RotationSpeed: 0.05,
		},
		Ship: LanderShip{
			Size:   1.0,
			SpawnX: 0.1,
			SpawnY: 0.1,
		},
		Fuel: LanderFuel{
			Initial:  1000,
			Burn:     1,
			SideBurn: 0.5,
			Refill:   250,
		},
		Terrain: LanderTerrain{
			Step:      3,
			Amplitude: 0.35,
			Frequency: 0.05,
			Alpha:     2,
			Beta:      2,
			Octaves:   3,
			Pads:      2,
			Stars:     30,
		},
		Land: LanderLanding{
			MaxHSpeed:  0.05,
			MaxVSpeed:  0.08,
			MaxAngle:   0.2,
			Points:     50,
			FuelBonus:  0.1,
			PauseTicks: 120,
		},
		Drift: DriftConfig{
			MoveStep:   0.5,
			RotateStep: 0.1,
			DriftX:     0.03,
			DriftY:     -0.02,
		},
		Input: InputConfig{
			HoldTicks: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				GravityMultiplier: 1.0,
				PadReduction:      1,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLanderYAML
}
