package lander

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/collision"
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/terrain"
)

const eps = 1e-9

func testConfig() config.LanderConfig {
	cfg := config.DefaultLanderConfig()
	cfg.Difficulty.Enabled = false
	return cfg
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 30, TickRate: 60, Seed: seed}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(testConfig())
	g.Reset(testRuntime(7))
	return g
}

// flatPad replaces the terrain with a flat floor at y=20 whose second
// segment (x 10..20) is a x5 pad.
func flatPad(g *Game) {
	m := terrain.NewMountainFromPoints([]core.Vec2{
		{X: 0, Y: 20}, {X: 10, Y: 20}, {X: 20, Y: 20}, {X: 30, Y: 20}, {X: 39, Y: 20},
	}, terrain.Pad{First: 1, Span: 1, Multiplier: 5})
	g.mountain = m
	g.world = collision.NewWorld(m, g.runtime.ScreenW, g.runtime.ScreenH)
}

func hasEvent(res core.StepResult, ev core.Event) bool {
	for _, e := range res.Events {
		if e == ev {
			return true
		}
	}
	return false
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical flights
	script := make([]core.InputFrame, 400)
	for i := range script {
		script[i] = core.NewInputFrame()
		switch {
		case i%7 == 0:
			script[i].Set(core.ActionThrustUp)
		case i%11 == 0:
			script[i].Set(core.ActionRotateRight)
		case i%13 == 0:
			script[i].Set(core.ActionThrustLeft)
		}
	}

	run := func() []Snapshot {
		g := NewWithConfig(testConfig())
		g.Reset(testRuntime(12345))
		var out []Snapshot
		for _, in := range script {
			g.Step(in)
			out = append(out, g.Snapshot())
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d: snapshots differ:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < 50; i++ {
		g.Step(core.NewInputFrame(core.ActionThrustUp))
	}

	g.Reset(testRuntime(7))

	s := g.Snapshot()
	if s.Score != 0 || s.Tick != 0 || s.Level != 1 {
		t.Errorf("Reset should clear score/ticks/level, got %+v", s)
	}
	if s.State != StateFlying {
		t.Errorf("Reset state = %q, want %q", s.State, StateFlying)
	}
	if s.Fuel != testConfig().Fuel.Initial {
		t.Errorf("Reset fuel = %v, want %v", s.Fuel, testConfig().Fuel.Initial)
	}
	if s.Velocity != (core.Vec2{}) {
		t.Errorf("Reset velocity = %+v, want zero", s.Velocity)
	}
}

func TestGameSameSeedSameTerrain(t *testing.T) {
	a, b := newTestGame(t), newTestGame(t)
	if len(a.mountain.Points) != len(b.mountain.Points) {
		t.Fatalf("point counts differ: %d vs %d", len(a.mountain.Points), len(b.mountain.Points))
	}
	for i := range a.mountain.Points {
		if a.mountain.Points[i] != b.mountain.Points[i] {
			t.Fatalf("point %d differs: %+v vs %+v", i, a.mountain.Points[i], b.mountain.Points[i])
		}
	}
}

func TestGameGravity(t *testing.T) {
	g := newTestGame(t)
	cfg := testConfig()

	g.Step(core.NewInputFrame())

	if math.Abs(g.ship.Velocity.Y-cfg.Physics.Gravity) > eps {
		t.Errorf("vy after one tick = %v, want %v", g.ship.Velocity.Y, cfg.Physics.Gravity)
	}
	if g.ship.Velocity.X != 0 {
		t.Errorf("vx = %v, want 0", g.ship.Velocity.X)
	}
}

func TestGameMainEngine(t *testing.T) {
	g := newTestGame(t)
	cfg := testConfig()

	g.Step(core.NewInputFrame(core.ActionThrustUp))

	want := cfg.Physics.Gravity - cfg.Physics.Thrust
	if math.Abs(g.ship.Velocity.Y-want) > eps {
		t.Errorf("vy = %v, want %v", g.ship.Velocity.Y, want)
	}
	if g.ship.Fuel != cfg.Fuel.Initial-cfg.Fuel.Burn {
		t.Errorf("fuel = %v, want %v", g.ship.Fuel, cfg.Fuel.Initial-cfg.Fuel.Burn)
	}
	if !g.ship.MainEngine {
		t.Error("main engine should be marked as firing")
	}
}

func TestGameSideThrusters(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		sign   float64
	}{
		{"left", core.ActionThrustLeft, -1},
		{"right", core.ActionThrustRight, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.Step(core.NewInputFrame(tt.action))

			want := tt.sign * testConfig().Physics.SideThrust
			if math.Abs(g.ship.Velocity.X-want) > eps {
				t.Errorf("vx = %v, want %v", g.ship.Velocity.X, want)
			}
		})
	}
}

func TestGameFuelNeverNegative(t *testing.T) {
	g := newTestGame(t)
	g.ship.Fuel = 0.5

	g.Step(core.NewInputFrame(core.ActionThrustUp, core.ActionThrustLeft))
	if g.ship.Fuel != 0 {
		t.Fatalf("fuel = %v, want 0", g.ship.Fuel)
	}

	vy := g.ship.Velocity.Y
	g.Step(core.NewInputFrame(core.ActionThrustUp))
	if g.ship.Fuel < 0 {
		t.Errorf("fuel went negative: %v", g.ship.Fuel)
	}
	if g.ship.MainEngine {
		t.Error("engine must not fire without fuel")
	}
	if g.ship.Velocity.Y <= vy {
		t.Errorf("without fuel only gravity applies: vy %v -> %v", vy, g.ship.Velocity.Y)
	}
}

func TestGameRotation(t *testing.T) {
	g := newTestGame(t)
	speed := testConfig().Physics.RotationSpeed

	g.Step(core.NewInputFrame(core.ActionRotateRight))
	if math.Abs(g.ship.Facing-speed) > eps {
		t.Errorf("facing = %v, want %v", g.ship.Facing, speed)
	}

	g.Step(core.NewInputFrame(core.ActionRotateLeft))
	g.Step(core.NewInputFrame(core.ActionRotateLeft))
	if math.Abs(g.ship.Facing+speed) > eps {
		t.Errorf("facing = %v, want %v", g.ship.Facing, -speed)
	}

	g.Step(core.NewInputFrame())
	if g.ship.AngVel != 0 {
		t.Errorf("angular velocity without input = %v, want 0", g.ship.AngVel)
	}
}

func TestGameVelocityClamp(t *testing.T) {
	g := newTestGame(t)
	g.ship.Velocity = core.V(3, -4)

	g.Step(core.NewInputFrame())

	if l := g.ship.Velocity.Len(); l > testConfig().Physics.MaxSpeed+eps {
		t.Errorf("speed = %v, want <= %v", l, testConfig().Physics.MaxSpeed)
	}
}

func TestGameHorizontalWrap(t *testing.T) {
	tests := []struct {
		name  string
		x, vx float64
		want  float64
	}{
		{"right edge", 39.9, 0.3, 0.2},
		{"left edge", 0.1, -0.3, 39.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.ship.Pos.X = tt.x
			g.ship.Velocity = core.V(tt.vx, 0)

			g.Step(core.NewInputFrame())

			if math.Abs(g.ship.Pos.X-tt.want) > 1e-6 {
				t.Errorf("x = %v, want %v", g.ship.Pos.X, tt.want)
			}
		})
	}
}

func TestGameCeiling(t *testing.T) {
	g := newTestGame(t)
	g.ship.Pos.Y = 0.6
	g.ship.Velocity = core.V(0, -0.4)

	g.Step(core.NewInputFrame())

	if top := g.ship.Box().Top(); top < 0 {
		t.Errorf("ship top = %v, want >= 0", top)
	}
	if g.ship.Velocity.Y < 0 {
		t.Errorf("upward velocity should be cancelled at the ceiling, vy = %v", g.ship.Velocity.Y)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.NewInputFrame())

	res := g.Step(core.NewInputFrame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}

	before := g.Snapshot()
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame(core.ActionThrustUp))
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("paused game changed:\n%+v\n%+v", before, after)
	}

	res = g.Step(core.NewInputFrame(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestGameLanding(t *testing.T) {
	g := newTestGame(t)
	flatPad(g)
	cfg := testConfig()

	g.ship.Pos = core.V(15, 19.5)
	g.ship.Velocity = core.V(0, 0.05)

	res := g.Step(core.NewInputFrame())
	if !hasEvent(res, core.EventLanded) {
		t.Fatalf("expected landing, got state %q crash %q", g.state, g.crash)
	}

	want := 5*cfg.Land.Points + int(cfg.Fuel.Initial*cfg.Land.FuelBonus)
	if res.State.Score != want {
		t.Errorf("score = %d, want %d", res.State.Score, want)
	}
	if res.State.GameOver {
		t.Error("landing must not end the game")
	}
	if g.ship.Velocity != (core.Vec2{}) {
		t.Errorf("landed ship should be at rest, v = %+v", g.ship.Velocity)
	}

	// Landed pause, then the next level
	for i := 0; i < cfg.Land.PauseTicks; i++ {
		res = g.Step(core.NewInputFrame(core.ActionThrustUp))
		if g.state != StateLanded {
			t.Fatalf("tick %d: state = %q, want landed", i, g.state)
		}
	}
	res = g.Step(core.NewInputFrame())
	if !hasEvent(res, core.EventLevel) {
		t.Fatal("expected a new level after the landed pause")
	}
	if g.Level() != 2 {
		t.Errorf("level = %d, want 2", g.Level())
	}
	if g.Fuel() != cfg.Fuel.Initial+cfg.Fuel.Refill {
		t.Errorf("fuel = %v, want %v", g.Fuel(), cfg.Fuel.Initial+cfg.Fuel.Refill)
	}
	if res.State.Score != want {
		t.Errorf("score changed across levels: %d, want %d", res.State.Score, want)
	}
}

func TestGameFastShipCannotPassThroughGround(t *testing.T) {
	cfg := testConfig()
	cfg.Physics.MaxSpeed = 3
	g := NewWithConfig(cfg)
	g.Reset(testRuntime(7))
	flatPad(g)

	g.ship.Pos = core.V(5, 15)
	g.ship.Velocity = core.V(0, 3)

	for i := 0; i < 20 && g.state == StateFlying; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.state != StateCrashed {
		t.Fatalf("state = %q at y = %.1f, want crashed", g.state, g.ship.Pos.Y)
	}
	if g.ship.Pos.Y > 20+3 {
		t.Errorf("ship sank to y = %.1f before the crash registered", g.ship.Pos.Y)
	}
}

func TestGameCrash(t *testing.T) {
	tests := []struct {
		name   string
		pos    core.Vec2
		vel    core.Vec2
		facing float64
		want   CrashReason
	}{
		{"off pad", core.V(5, 19.5), core.V(0, 0.05), 0, CrashTerrain},
		{"too fast", core.V(15, 19.4), core.V(0, 0.2), 0, CrashTooFast},
		{"sideways", core.V(15, 19.5), core.V(0.2, 0.05), 0, CrashSideways},
		{"tilted", core.V(15, 19.5), core.V(0, 0.05), 0.5, CrashTilted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			flatPad(g)
			g.ship.Pos = tt.pos
			g.ship.Velocity = tt.vel
			g.ship.Facing = tt.facing

			res := g.Step(core.NewInputFrame())
			if !hasEvent(res, core.EventCrashed) {
				t.Fatalf("expected crash, state %q", g.state)
			}
			if !res.State.GameOver {
				t.Error("crash should end the game")
			}
			if g.crash != tt.want {
				t.Errorf("crash reason = %q, want %q", g.crash, tt.want)
			}

			// Crashed game is frozen
			before := g.Snapshot()
			g.Step(core.NewInputFrame(core.ActionThrustUp))
			if g.Snapshot() != before {
				t.Error("crashed game should not change")
			}
		})
	}
}

func TestGameAltitude(t *testing.T) {
	g := newTestGame(t)
	flatPad(g)
	g.ship.Pos = core.V(15, 10)

	want := 20 - g.ship.Box().Bottom()
	if got := g.Altitude(); math.Abs(got-want) > eps {
		t.Errorf("altitude = %v, want %v", got, want)
	}

	g.ship.Pos = core.V(15, 25)
	if got := g.Altitude(); got != 0 {
		t.Errorf("altitude below terrain = %v, want 0", got)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(40, 30)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "SCORE") {
		t.Errorf("HUD missing from top row: %q", screen.Row(0))
	}
	x, y := round(g.ship.Pos.X), round(g.ship.Pos.Y)
	if r := screen.Get(x, y); r != '↑' {
		t.Errorf("ship glyph at (%d,%d) = %q, want '↑'", x, y, r)
	}

	// Game over message
	flatPad(g)
	g.ship.Pos = core.V(5, 19.5)
	g.ship.Velocity = core.V(0, 0.05)
	g.Step(core.NewInputFrame())
	g.Render(screen)
	if !strings.Contains(screen.String(), "CRASHED") {
		t.Error("crash message should be rendered")
	}
}

func TestGameHUDShowsPadBelow(t *testing.T) {
	g := newTestGame(t)
	flatPad(g)
	screen := core.NewScreen(40, 30)

	g.ship.Pos = core.V(15, 10)
	g.Render(screen)
	if !strings.Contains(screen.Row(1), "OVER PAD x5") {
		t.Errorf("row 1 = %q, want pad indicator", screen.Row(1))
	}

	g.ship.Pos = core.V(5, 10)
	g.Render(screen)
	if strings.Contains(screen.Row(1), "PAD") {
		t.Errorf("row 1 = %q, want no pad indicator off the pad", screen.Row(1))
	}
}

func TestGameTelemetry(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.NewInputFrame(core.ActionThrustUp))

	tm := g.Telemetry()
	s := g.Snapshot()
	if tm.Tick != s.Tick || tm.X != s.Pos.X || tm.VY != s.Velocity.Y || tm.Fuel != s.Fuel {
		t.Errorf("telemetry %+v does not match snapshot %+v", tm, s)
	}
	if tm.State != string(StateFlying) {
		t.Errorf("telemetry state = %q, want %q", tm.State, StateFlying)
	}
}

func TestFacingGlyph(t *testing.T) {
	tests := []struct {
		facing float64
		want   rune
	}{
		{0, '↑'},
		{math.Pi / 4, '↗'},
		{math.Pi / 2, '→'},
		{math.Pi, '↓'},
		{-math.Pi / 2, '←'},
		{-math.Pi / 4, '↖'},
		{0.1, '↑'},
	}

	for _, tt := range tests {
		if got := facingGlyph(tt.facing); got != tt.want {
			t.Errorf("facingGlyph(%v) = %q, want %q", tt.facing, got, tt.want)
		}
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		ticks int
		want  string
	}{
		{0, "0:00"},
		{59, "0:00"},
		{60 * 61, "1:01"},
		{60 * 600, "10:00"},
	}

	for _, tt := range tests {
		if got := clock(tt.ticks, 60); got != tt.want {
			t.Errorf("clock(%d) = %q, want %q", tt.ticks, got, tt.want)
		}
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"lander", "drift"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}
}
