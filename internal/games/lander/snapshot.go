package lander

import "github.com/vovakirdan/tui-lander/internal/core"

// Snapshot is a comparable view of the simulation used by determinism
// tests and telemetry.
type Snapshot struct {
	Tick     int
	Level    int
	State    FlightState
	Pos      core.Vec2
	Velocity core.Vec2
	Facing   float64
	Fuel     float64
	Altitude float64
	Score    int
}

// Snapshot captures the current simulation state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.ticks,
		Level:    g.level,
		State:    g.state,
		Pos:      g.ship.Pos,
		Velocity: g.ship.Velocity,
		Facing:   g.ship.Facing,
		Fuel:     g.ship.Fuel,
		Altitude: g.Altitude(),
		Score:    g.score,
	}
}

// Telemetry reports the snapshot in wire form.
func (g *Game) Telemetry() core.Telemetry {
	return g.Snapshot().Telemetry()
}

// Telemetry converts the snapshot to its wire form.
func (s Snapshot) Telemetry() core.Telemetry {
	return core.Telemetry{
		Tick:     s.Tick,
		Level:    s.Level,
		State:    string(s.State),
		X:        s.Pos.X,
		Y:        s.Pos.Y,
		VX:       s.Velocity.X,
		VY:       s.Velocity.Y,
		Facing:   s.Facing,
		Fuel:     s.Fuel,
		Altitude: s.Altitude,
		Score:    s.Score,
	}
}
