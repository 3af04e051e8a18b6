package lander

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// drawHUD draws the flight instruments on the top row.
// The platform reserves the top-right corner for its FPS counter.
func (g *Game) drawHUD(dst *core.Screen) {
	rate := float64(g.runtime.TickRate)
	hspd := g.ship.Velocity.X * rate
	vspd := g.ship.Velocity.Y * rate

	fuelColor := core.ColorGreen
	switch {
	case g.ship.Fuel <= 0:
		fuelColor = core.ColorBrightRed
	case g.ship.Fuel < g.cfg.Fuel.Initial/4:
		fuelColor = core.ColorYellow
	}

	x := 1
	x = hudField(dst, x, fmt.Sprintf("SCORE %04d", g.score), core.ColorBrightWhite)
	x = hudField(dst, x, fmt.Sprintf("LVL %d", g.level), core.ColorWhite)
	x = hudField(dst, x, "TIME "+clock(g.ticks, g.runtime.TickRate), core.ColorWhite)
	x = hudField(dst, x, fmt.Sprintf("FUEL %04d", int(math.Ceil(g.ship.Fuel))), fuelColor)
	x = hudField(dst, x, fmt.Sprintf("ALT %5.1f", g.Altitude()), core.ColorCyan)
	x = hudField(dst, x, fmt.Sprintf("HSPD %s%4.1f", hArrow(hspd), math.Abs(hspd)), speedColor(g.ship.Velocity.X, g.cfg.Land.MaxHSpeed))
	hudField(dst, x, fmt.Sprintf("VSPD %s%4.1f", vArrow(vspd), math.Abs(vspd)), speedColor(g.ship.Velocity.Y, g.cfg.Land.MaxVSpeed))

	if g.mountain == nil || g.state != StateFlying {
		return
	}
	if pad, ok := g.mountain.PadAt(g.ship.Pos.X); ok {
		dst.DrawTextColor(1, 1, fmt.Sprintf("OVER PAD x%d", pad.Multiplier), core.ColorYellow)
	}
}

// hudField draws text at x and returns the column after it plus a gap.
func hudField(dst *core.Screen, x int, text string, c core.Color) int {
	dst.DrawTextColor(x, 0, text, c)
	return x + len([]rune(text)) + 2
}

// speedColor is green while v is within the landing limit.
func speedColor(v, limit float64) core.Color {
	if math.Abs(v) <= limit {
		return core.ColorGreen
	}
	return core.ColorRed
}

// clock formats ticks as m:ss.
func clock(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	secs := ticks / tickRate
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func hArrow(v float64) string {
	switch {
	case v > 0:
		return "→"
	case v < 0:
		return "←"
	}
	return " "
}

func vArrow(v float64) string {
	switch {
	case v > 0:
		return "↓"
	case v < 0:
		return "↑"
	}
	return " "
}
