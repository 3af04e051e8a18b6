package lander

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/terrain"
)

// Glyphs used for drawing
const (
	PadChar   = '='
	FlameChar = '*'
	HitChar   = 'X'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	drawStars(dst, g.stars)
	drawMountain(dst, g.mountain, nil)

	if g.state == StateCrashed {
		dst.SetColor(round(g.ship.Pos.X), round(g.ship.Pos.Y), HitChar, core.ColorBrightRed)
	} else {
		if g.ship.Thrusting() {
			drawFlames(dst, &g.ship)
		}
		dst.SetColor(round(g.ship.Pos.X), round(g.ship.Pos.Y), g.ship.Glyph(), core.ColorBrightWhite)
	}

	g.drawHUD(dst)

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.state == StateLanded:
		drawCenteredMessage(dst, "THE EAGLE HAS LANDED",
			fmt.Sprintf("+%d  |  Level %d next", g.lastBonus, g.level+1))
	case g.state == StateCrashed:
		drawCenteredMessage(dst, "CRASHED: "+string(g.crash),
			fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawStars draws the background starfield.
func drawStars(dst *core.Screen, stars []terrain.Star) {
	for _, s := range stars {
		dst.SetColor(round(s.X), round(s.Y), s.Glyph(), core.ColorDim)
	}
}

// drawMountain draws the mountain polyline with pads highlighted.
// Segments listed in hit are drawn in red.
func drawMountain(dst *core.Screen, m *terrain.Mountain, hit []int) {
	if m == nil {
		return
	}

	touched := make(map[int]bool, len(hit))
	for _, s := range hit {
		touched[s] = true
	}

	for i := 0; i < m.Segments(); i++ {
		if m.PadForSegment(i) >= 0 {
			continue
		}
		a, b := m.Segment(i)
		c := core.ColorGray
		if touched[i] {
			c = core.ColorRed
		}
		dst.DrawLine(round(a.X), round(a.Y), round(b.X), round(b.Y), slopeGlyph(a, b), c)
	}

	// Pads go on top, with their multiplier one row above
	for _, p := range m.Pads {
		c := core.ColorBrightYellow
		for seg := p.First; seg < p.First+p.Span; seg++ {
			if touched[seg] {
				c = core.ColorRed
			}
		}
		dst.DrawPolyline(m.Points[p.First:p.First+p.Span+1], PadChar, c)

		label := fmt.Sprintf("x%d", p.Multiplier)
		x := round((p.X0+p.X1)/2) - len(label)/2
		dst.DrawTextColor(x, round(p.Y)-1, label, core.ColorYellow)
	}
}

// slopeGlyph picks a line character for a segment from a to b (y down).
func slopeGlyph(a, b core.Vec2) rune {
	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case math.Abs(dy) <= math.Abs(dx)/3:
		return '_'
	case math.Abs(dx) <= math.Abs(dy)/3:
		return '|'
	case dy < 0:
		return '/'
	default:
		return '\\'
	}
}

// drawFlames draws exhaust opposite each firing engine.
func drawFlames(dst *core.Screen, s *Ship) {
	heading := core.FromAngle(s.Facing)
	if s.MainEngine {
		p := s.Pos.Sub(heading)
		dst.SetColor(round(p.X), round(p.Y), FlameChar, core.ColorOrange)
	}
	if s.RetroEngine {
		p := s.Pos.Add(heading)
		dst.SetColor(round(p.X), round(p.Y), FlameChar, core.ColorOrange)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len([]rune(title)))/2
	dst.DrawTextColor(titleX, boxY+1, title, core.ColorBrightWhite)

	dst.DrawTextCentered(boxY+3, subtitle)
}

func round(f float64) int {
	return int(math.Round(f))
}
