// Package lander implements the lunar lander game and its drift prototype.
//
// The lander flies a thrust-and-gravity ship over a noise-generated mountain
// and must touch down gently on one of the flattened landing pads.
package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/collision"
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/terrain"
)

// FlightState is the lander's phase.
type FlightState string

const (
	StateFlying  FlightState = "flying"
	StateLanded  FlightState = "landed"
	StateCrashed FlightState = "crashed"
)

// CrashReason explains a failed touchdown.
type CrashReason string

const (
	CrashTerrain  CrashReason = "hit the mountain"
	CrashTooFast  CrashReason = "came in too fast"
	CrashSideways CrashReason = "drifting sideways"
	CrashTilted   CrashReason = "not upright"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path used by new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used by new games.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// loadConfig resolves the game configuration from the CLI settings.
func loadConfig() config.LanderConfig {
	cfg, err := config.LoadLander(configPath)
	if err != nil {
		cfg = config.DefaultLanderConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	return cfg
}

// Game implements the lander game logic.
type Game struct {
	cfg        config.LanderConfig
	fixedCfg   bool // cfg was supplied by NewWithConfig; Reset must not reload
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager

	ship     Ship
	mountain *terrain.Mountain
	world    *collision.World
	stars    []terrain.Star

	state       FlightState
	crash       CrashReason
	score       int
	level       int
	ticks       int // flying ticks over the whole game
	levelTicks  int
	landedTimer int
	lastBonus   int
	paused      bool
}

// New creates a lander that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a lander with a fixed configuration.
func NewWithConfig(cfg config.LanderConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "lander"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lunar Lander"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Thrust, rotate and touch down gently on a landing pad"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	if !g.fixedCfg {
		g.cfg = loadConfig()
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.score = 0
	g.level = 1
	g.ticks = 0
	g.paused = false
	g.ship.Fuel = g.cfg.Fuel.Initial
	g.startLevel()
}

// startLevel generates terrain for the current level and respawns the ship.
func (g *Game) startLevel() {
	w, h := g.runtime.ScreenW, g.runtime.ScreenH
	seed := g.runtime.Seed + int64(g.level-1)

	g.mountain = terrain.NewMountain(terrain.Options{
		Width:     w,
		Height:    h,
		Step:      g.cfg.Terrain.Step,
		Amplitude: g.cfg.Terrain.Amplitude,
		Noise: terrain.NoiseParams{
			Frequency: g.cfg.Terrain.Frequency,
			Alpha:     g.cfg.Terrain.Alpha,
			Beta:      g.cfg.Terrain.Beta,
			Octaves:   g.cfg.Terrain.Octaves,
		},
		Pads: g.difficulty.Pads(g.cfg.Terrain.Pads, g.score, g.ticks),
	}, seed)
	g.world = collision.NewWorld(g.mountain, w, h)
	g.stars = terrain.Stars(g.cfg.Terrain.Stars, w, h, seed)

	fuel := g.ship.Fuel
	g.ship = Ship{
		Pos:      core.V(g.cfg.Ship.SpawnX*float64(w), g.cfg.Ship.SpawnY*float64(h)),
		BBoxSize: g.cfg.Ship.Size,
		Fuel:     fuel,
	}

	g.state = StateFlying
	g.crash = ""
	g.levelTicks = 0
	g.landedTimer = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == StateCrashed {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.state == StateLanded {
		return g.stepLanded()
	}

	g.ticks++
	g.levelTicks++

	c := ControlsFrom(in)
	g.ship.Rotate(c, g.cfg.Physics.RotationSpeed)
	g.ship.Fire(c, g.cfg.Physics, g.cfg.Fuel)
	g.ship.ApplyGravity(g.gravity())
	g.ship.ClampVelocity(g.cfg.Physics.MaxSpeed)
	g.ship.Integrate()
	g.ship.Bound(float64(g.runtime.ScreenW))

	contact := g.world.Contact(g.ship.Box())
	if !contact.Hit {
		return core.StepResult{State: g.State()}
	}
	return g.touchdown(contact)
}

// gravity returns the difficulty-scaled gravity for this tick.
func (g *Game) gravity() float64 {
	return g.difficulty.Gravity(g.cfg.Physics.Gravity, g.score, g.ticks)
}

// touchdown resolves a contact with the mountain into a landing or a crash.
func (g *Game) touchdown(contact collision.Contact) core.StepResult {
	reason := g.judge(contact)
	if reason != "" {
		g.state = StateCrashed
		g.crash = reason
		return core.StepResult{State: g.State(), Events: []core.Event{core.EventCrashed}}
	}

	pad := g.mountain.Pads[contact.Pad]
	g.lastBonus = pad.Multiplier*g.cfg.Land.Points + int(g.ship.Fuel*g.cfg.Land.FuelBonus)
	g.score += g.lastBonus

	// Rest on the pad
	g.ship.Pos.Y = pad.Y - g.ship.BBoxSize/2
	g.ship.Velocity = core.Vec2{}
	g.ship.AngVel = 0
	g.ship.MainEngine, g.ship.RetroEngine, g.ship.SideEngine = false, false, false

	g.state = StateLanded
	g.landedTimer = g.cfg.Land.PauseTicks
	return core.StepResult{State: g.State(), Events: []core.Event{core.EventLanded}}
}

// judge returns why a contact is a crash, or "" for a safe landing.
func (g *Game) judge(contact collision.Contact) CrashReason {
	land := g.cfg.Land
	switch {
	case !contact.OnPadOnly:
		return CrashTerrain
	case math.Abs(g.ship.Velocity.Y) > land.MaxVSpeed:
		return CrashTooFast
	case math.Abs(g.ship.Velocity.X) > land.MaxHSpeed:
		return CrashSideways
	case math.Abs(core.NormalizeAngle(g.ship.Facing)) > land.MaxAngle:
		return CrashTilted
	}
	return ""
}

// stepLanded waits out the post-landing pause, then starts the next level.
func (g *Game) stepLanded() core.StepResult {
	if g.landedTimer > 0 {
		g.landedTimer--
		return core.StepResult{State: g.State()}
	}

	g.level++
	g.ship.Fuel += g.cfg.Fuel.Refill
	g.startLevel()
	return core.StepResult{State: g.State(), Events: []core.Event{core.EventLevel}}
}

// Altitude returns the height of the ship's bottom above the terrain below it.
func (g *Game) Altitude() float64 {
	if g.mountain == nil {
		return 0
	}
	alt := g.mountain.HeightAt(g.ship.Pos.X) - g.ship.Box().Bottom()
	return math.Max(alt, 0)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateCrashed,
		Paused:   g.paused,
	}
}

// Flight returns the current flight phase.
func (g *Game) Flight() FlightState {
	return g.state
}

// Level returns the 1-based level number.
func (g *Game) Level() int {
	return g.level
}

// Ticks returns the number of flying ticks since Reset.
func (g *Game) Ticks() int {
	return g.ticks
}

// Fuel returns the remaining fuel.
func (g *Game) Fuel() float64 {
	return g.ship.Fuel
}

// Register the lander and the drift prototype with the registry
func init() {
	registry.Register("lander", func() registry.Game {
		return New()
	})
	registry.Register("drift", func() registry.Game {
		return NewDrift()
	})
}
