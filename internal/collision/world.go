// Package collision answers contact queries between the ship and the
// mountain polyline. Segments live in a resolv spatial hash so a query only
// tests the few segments near the ship; the final touch test is exact.
package collision

import (
	"math"
	"slices"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/terrain"
)

const (
	// cellSize is the spatial hash cell edge, in playfield cells.
	cellSize = 4

	// queryMargin pads the broadphase column on every side.
	queryMargin = 1.0
)

var (
	tagTerrain = resolv.NewTag("terrain")
	tagPad     = resolv.NewTag("pad")
	tagQuery   = resolv.NewTag("query")
)

// Box is an axis-aligned square centred on a point.
type Box struct {
	Center core.Vec2
	Size   float64
}

// Top returns the y of the box's top edge.
func (b Box) Top() float64 {
	return b.Center.Y - b.Size/2
}

// Bottom returns the y of the box's bottom edge.
func (b Box) Bottom() float64 {
	return b.Center.Y + b.Size/2
}

// Contact is the result of a contact query.
type Contact struct {
	Hit       bool
	OnPadOnly bool  // every touched segment belongs to the same pad
	Pad       int   // pad index of the touched pad, or -1
	Segments  []int // touched segment indices, ascending
}

// World holds the mountain's segments in a resolv space.
type World struct {
	mountain *terrain.Mountain
	space    *resolv.Space
	width    float64
	height   float64
	segments map[resolv.IShape]int
}

// NewWorld indexes every segment of m for a width x height playfield.
func NewWorld(m *terrain.Mountain, width, height int) *World {
	width = max(width, 1)
	height = max(height, 1)

	w := &World{
		mountain: m,
		space:    resolv.NewSpace(width, height, cellSize, cellSize),
		width:    float64(width),
		height:   float64(height),
		segments: make(map[resolv.IShape]int, m.Segments()),
	}

	for i := 0; i < m.Segments(); i++ {
		a, b := m.Segment(i)
		line := resolv.NewLine(a.X, a.Y, b.X, b.Y)
		line.Tags().Set(tagTerrain)
		if m.PadForSegment(i) >= 0 {
			line.Tags().Set(tagPad)
		}
		w.space.Add(line)
		w.segments[line] = i
	}
	return w
}

// Contact tests the box against the mountain polyline. A box touches a
// segment when any part of the segment under the box's columns lies at or
// above the box bottom, so a box resting exactly on the line counts and a
// box that has sunk below the line still counts.
// Boxes partly outside the playfield are clamped into it first.
func (w *World) Contact(b Box) Contact {
	c := Contact{Pad: -1}
	if b.Size <= 0 || len(w.segments) == 0 {
		return c
	}

	x0 := core.ClampF(b.Center.X-b.Size/2, 0, w.width-b.Size)
	x1 := x0 + b.Size
	bottom := b.Bottom()

	for _, seg := range w.candidates(x0, x1, bottom) {
		a, z := w.mountain.Segment(seg)
		if touches(a, z, x0, x1, bottom) {
			c.Segments = append(c.Segments, seg)
		}
	}

	if len(c.Segments) == 0 {
		return c
	}
	slices.Sort(c.Segments)
	c.Segments = slices.Compact(c.Segments)
	c.Hit = true

	c.Pad = w.mountain.PadForSegment(c.Segments[0])
	c.OnPadOnly = c.Pad >= 0
	for _, seg := range c.Segments[1:] {
		if w.mountain.PadForSegment(seg) != c.Pad {
			c.OnPadOnly = false
		}
	}
	return c
}

// candidates returns the segments near the column [x0, x1] from the top of
// the playfield down to just below bottom.
func (w *World) candidates(x0, x1, bottom float64) []int {
	left := math.Max(x0-queryMargin, 0)
	right := math.Min(x1+queryMargin, w.width)
	depth := math.Min(bottom+queryMargin, w.height)
	if depth <= 0 || right <= left {
		return nil
	}

	column := resolv.NewRectangleTopLeft(left, 0, right-left, depth)
	column.Tags().Set(tagQuery)
	w.space.Add(column)
	defer w.space.Remove(column)

	var out []int
	column.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: column.SelectTouchingCells(1).FilterShapes().ByTags(tagTerrain),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			if seg, ok := w.segments[set.OtherShape]; ok {
				out = append(out, seg)
			}
			return true
		},
	})
	return out
}

// touches reports whether segment a-z reaches bottom anywhere in [x0, x1].
func touches(a, z core.Vec2, x0, x1, bottom float64) bool {
	if a.X > z.X {
		a, z = z, a
	}
	lo := math.Max(a.X, x0)
	hi := math.Min(z.X, x1)
	if hi < lo {
		return false
	}
	return math.Min(yAt(a, z, lo), yAt(a, z, hi)) <= bottom
}

// yAt interpolates the segment's height at x.
func yAt(a, z core.Vec2, x float64) float64 {
	if z.X == a.X {
		return math.Min(a.Y, z.Y)
	}
	t := (x - a.X) / (z.X - a.X)
	return a.Y + t*(z.Y-a.Y)
}
