package lander

import (
	"fmt"

	"github.com/vovakirdan/tui-lander/internal/collision"
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/terrain"
)

// Drift is the early flight prototype: the ship is pushed around directly
// by the arrow keys and carried by a constant drift, wrapping on both axes.
// It has no fuel, gravity or landing and never ends.
//
// The ship lives in world coordinates centred on the screen with y up and
// is converted with core.WorldToScreen for drawing and contact checks.
type Drift struct {
	cfg      config.LanderConfig
	fixedCfg bool
	runtime  core.RuntimeConfig

	pos    core.Vec2
	facing float64

	mountain *terrain.Mountain
	world    *collision.World
	stars    []terrain.Star
	contact  collision.Contact

	ticks  int
	paused bool
}

// NewDrift creates a drift prototype that loads its configuration on Reset.
func NewDrift() *Drift {
	return &Drift{}
}

// NewDriftWithConfig creates a drift prototype with a fixed configuration.
func NewDriftWithConfig(cfg config.LanderConfig) *Drift {
	return &Drift{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (d *Drift) ID() string {
	return "drift"
}

// Title returns the display name for this game.
func (d *Drift) Title() string {
	return "Drift Prototype"
}

// Description returns a one-line summary for menus.
func (d *Drift) Description() string {
	return "Free-flying sandbox: arrows move, space turns, no gravity"
}

// Reset initializes or restarts the prototype.
func (d *Drift) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	d.runtime = runtime
	if !d.fixedCfg {
		d.cfg = loadConfig()
	}

	w, h := runtime.ScreenW, runtime.ScreenH
	d.mountain = terrain.NewMountain(terrain.Options{
		Width:     w,
		Height:    h,
		Step:      d.cfg.Terrain.Step,
		Amplitude: d.cfg.Terrain.Amplitude,
		Noise: terrain.NoiseParams{
			Frequency: d.cfg.Terrain.Frequency,
			Alpha:     d.cfg.Terrain.Alpha,
			Beta:      d.cfg.Terrain.Beta,
			Octaves:   d.cfg.Terrain.Octaves,
		},
		Pads: d.cfg.Terrain.Pads,
	}, runtime.Seed)
	d.world = collision.NewWorld(d.mountain, w, h)
	d.stars = terrain.Stars(d.cfg.Terrain.Stars, w, h, runtime.Seed)

	d.pos = core.Vec2{}
	d.facing = 0
	d.contact = collision.Contact{Pad: -1}
	d.ticks = 0
	d.paused = false
}

// Step advances the prototype by one tick.
func (d *Drift) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		d.paused = !d.paused
	}
	if d.paused {
		return core.StepResult{State: d.State()}
	}

	d.ticks++
	step := d.cfg.Drift.MoveStep

	if in.Has(core.ActionThrustUp) {
		d.pos.Y += step
	}
	if in.Has(core.ActionThrustDown) {
		d.pos.Y -= step
	}
	if in.Has(core.ActionThrustLeft) {
		d.pos.X -= step
	}
	if in.Has(core.ActionThrustRight) {
		d.pos.X += step
	}
	if in.Has(core.ActionRotateLeft) {
		d.facing = core.NormalizeAngle(d.facing - d.cfg.Drift.RotateStep)
	}

	w, h := float64(d.runtime.ScreenW), float64(d.runtime.ScreenH)
	d.pos.X = wrapCentered(d.pos.X, w)
	d.pos.Y = wrapCentered(d.pos.Y, h)

	d.pos = d.pos.Add(core.V(d.cfg.Drift.DriftX, d.cfg.Drift.DriftY))

	d.contact = d.world.Contact(collision.Box{Center: d.screenPos(), Size: d.cfg.Ship.Size})
	return core.StepResult{State: d.State()}
}

// wrapCentered keeps v within [-size/2, size/2], re-entering on the far side.
func wrapCentered(v, size float64) float64 {
	half := size / 2
	switch {
	case v > half:
		return v - size
	case v < -half:
		return v + size
	}
	return v
}

// screenPos returns the ship position in screen cells.
func (d *Drift) screenPos() core.Vec2 {
	return core.WorldToScreen(float64(d.runtime.ScreenW), float64(d.runtime.ScreenH), d.pos)
}

// Render draws the prototype to the screen.
func (d *Drift) Render(dst *core.Screen) {
	dst.Clear()

	drawStars(dst, d.stars)
	drawMountain(dst, d.mountain, d.contact.Segments)

	p := d.screenPos()
	c := core.ColorBrightWhite
	if d.contact.Hit {
		c = core.ColorBrightRed
	}
	dst.SetColor(round(p.X), round(p.Y), facingGlyph(d.facing), c)

	hud := fmt.Sprintf(" DRIFT  TIME %s  X %6.1f  Y %6.1f ", clock(d.ticks, d.runtime.TickRate), d.pos.X, d.pos.Y)
	dst.DrawTextColor(1, 0, hud, core.ColorWhite)

	if d.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (d *Drift) State() core.GameState {
	return core.GameState{
		Score:  d.ticks / max(d.runtime.TickRate, 1),
		Paused: d.paused,
	}
}

// Snapshot captures the prototype state.
func (d *Drift) Snapshot() Snapshot {
	return Snapshot{
		Tick:   d.ticks,
		Level:  1,
		State:  StateFlying,
		Pos:    d.pos,
		Facing: d.facing,
		Score:  d.State().Score,
	}
}

// Telemetry reports the prototype state in wire form.
func (d *Drift) Telemetry() core.Telemetry {
	return d.Snapshot().Telemetry()
}

// Level is always 1; the prototype has no levels.
func (d *Drift) Level() int {
	return 1
}

// Ticks returns the number of unpaused ticks since Reset.
func (d *Drift) Ticks() int {
	return d.ticks
}

// Fuel is always 0; the prototype has no fuel.
func (d *Drift) Fuel() float64 {
	return 0
}
