package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/collision"
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// Controls is the engine/rotation input for one tick.
type Controls struct {
	Main        bool // main engine, along the facing
	Retro       bool // retro engine, against the facing
	Left        bool // side thruster pushing the ship to its left
	Right       bool // side thruster pushing the ship to its right
	RotateLeft  bool
	RotateRight bool
}

// ControlsFrom maps platform actions to ship controls.
func ControlsFrom(in core.InputFrame) Controls {
	return Controls{
		Main:        in.Has(core.ActionThrustUp),
		Retro:       in.Has(core.ActionThrustDown),
		Left:        in.Has(core.ActionThrustLeft),
		Right:       in.Has(core.ActionThrustRight),
		RotateLeft:  in.Has(core.ActionRotateLeft),
		RotateRight: in.Has(core.ActionRotateRight),
	}
}

// Ship is the player actor. Positions are screen cells (y down); Facing is
// in radians with 0 pointing up and positive angles turning clockwise.
type Ship struct {
	Pos      core.Vec2
	Facing   float64
	Velocity core.Vec2
	AngVel   float64
	BBoxSize float64
	Fuel     float64

	// Engine state for the current tick, used for rendering the flame.
	MainEngine  bool
	RetroEngine bool
	SideEngine  bool
}

// Rotate sets the angular velocity from the rotation controls and turns the ship.
func (s *Ship) Rotate(c Controls, speed float64) {
	switch {
	case c.RotateLeft && !c.RotateRight:
		s.AngVel = -speed
	case c.RotateRight && !c.RotateLeft:
		s.AngVel = speed
	default:
		s.AngVel = 0
	}
	s.Facing = core.NormalizeAngle(s.Facing + s.AngVel)
}

// Fire applies engine thrust for one tick and burns fuel.
// Engines only fire while there is fuel left; fuel never goes negative.
func (s *Ship) Fire(c Controls, p config.LanderPhysics, f config.LanderFuel) {
	s.MainEngine, s.RetroEngine, s.SideEngine = false, false, false

	heading := core.FromAngle(s.Facing)
	starboard := heading.Rotate(math.Pi / 2)

	if c.Main && s.burn(f.Burn) {
		s.Velocity = s.Velocity.Add(heading.Scale(p.Thrust))
		s.MainEngine = true
	}
	if c.Retro && s.burn(f.Burn) {
		s.Velocity = s.Velocity.Sub(heading.Scale(p.RetroThrust))
		s.RetroEngine = true
	}
	if c.Left && s.burn(f.SideBurn) {
		s.Velocity = s.Velocity.Sub(starboard.Scale(p.SideThrust))
		s.SideEngine = true
	}
	if c.Right && s.burn(f.SideBurn) {
		s.Velocity = s.Velocity.Add(starboard.Scale(p.SideThrust))
		s.SideEngine = true
	}
}

// burn consumes amount of fuel and reports whether the engine may fire.
func (s *Ship) burn(amount float64) bool {
	if s.Fuel <= 0 {
		return false
	}
	s.Fuel = math.Max(s.Fuel-amount, 0)
	return true
}

// Thrusting reports whether any engine fired this tick.
func (s *Ship) Thrusting() bool {
	return s.MainEngine || s.RetroEngine || s.SideEngine
}

// ApplyGravity accelerates the ship downward.
func (s *Ship) ApplyGravity(g float64) {
	s.Velocity.Y += g
}

// ClampVelocity limits the speed to max, keeping the direction.
func (s *Ship) ClampVelocity(max float64) {
	s.Velocity = s.Velocity.ClampLen(max)
}

// Integrate moves the ship by its velocity.
func (s *Ship) Integrate() {
	s.Pos = s.Pos.Add(s.Velocity)
}

// Bound wraps the ship around the playfield horizontally and stops it at
// the ceiling.
func (s *Ship) Bound(width float64) {
	s.Pos.X = core.Wrap(s.Pos.X, width)

	if top := s.BBoxSize / 2; s.Pos.Y < top {
		s.Pos.Y = top
		if s.Velocity.Y < 0 {
			s.Velocity.Y = 0
		}
	}
}

// Box returns the ship's collision box.
func (s *Ship) Box() collision.Box {
	return collision.Box{Center: s.Pos, Size: s.BBoxSize}
}

// Glyph returns the arrow that best matches the ship's facing.
func (s *Ship) Glyph() rune {
	return facingGlyph(s.Facing)
}

var octantGlyphs = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

func facingGlyph(facing float64) rune {
	octant := int(math.Round(core.NormalizeAngle(facing)/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return octantGlyphs[octant]
}
