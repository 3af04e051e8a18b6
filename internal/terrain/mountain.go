package terrain

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Options describes the playfield a mountain is generated for.
type Options struct {
	Width     int     // playfield width in columns
	Height    int     // playfield height in rows
	Step      int     // columns between polyline points
	Amplitude float64 // mountain height as a fraction of Height
	Noise     NoiseParams
	Pads      int
}

// Pad is a flattened run of polyline segments where the ship may land.
type Pad struct {
	First      int // index of the first segment
	Span       int // number of segments
	X0, X1     float64
	Y          float64
	Multiplier int
}

// Width returns the pad width in columns.
func (p Pad) Width() float64 {
	return p.X1 - p.X0
}

// padMultipliers maps a pad span (in segments) to its score multiplier.
// Narrow pads are harder to hit and pay more.
var padMultipliers = map[int]int{1: 5, 2: 3, 3: 2}

// Mountain is the terrain silhouette: a polyline spanning the playfield.
type Mountain struct {
	Points []core.Vec2
	Pads   []Pad
	Width  int

	padOf map[int]int // segment index -> pad index
}

// NewMountain generates a mountain for the given options and seed.
//
// Heights come from scaled gradient noise between the vertical midpoint
// and midpoint + amplitude*height (kept above the bottom row). The
// polyline samples every Step columns from 0 and always ends on the last
// column.
func NewMountain(opts Options, seed int64) *Mountain {
	if opts.Step <= 0 {
		opts.Step = 1
	}

	minY := float64(opts.Height) / 2
	maxY := math.Min(minY+opts.Amplitude*float64(opts.Height), float64(opts.Height-1))
	maxY = math.Max(maxY, minY)

	heights := Heights(opts.Width, seed, opts.Noise, minY, maxY)

	m := &Mountain{Width: opts.Width}
	for x := 0; x < opts.Width; x += opts.Step {
		m.Points = append(m.Points, core.V(float64(x), heights[x]))
	}
	if last := opts.Width - 1; last > 0 && last%opts.Step != 0 {
		m.Points = append(m.Points, core.V(float64(last), heights[last]))
	}

	m.placePads(opts.Pads, rand.New(rand.NewSource(seed)))
	return m
}

// NewMountainFromPoints builds a mountain from an explicit polyline.
// Pads are given as (first segment, span, multiplier) and flatten the polyline.
func NewMountainFromPoints(points []core.Vec2, pads ...Pad) *Mountain {
	m := &Mountain{Points: append([]core.Vec2(nil), points...)}
	if len(points) > 0 {
		m.Width = int(points[len(points)-1].X) + 1
	}
	for _, p := range pads {
		m.addPad(p.First, p.Span, p.Multiplier)
	}
	return m
}

// placePads flattens n non-touching pads at random positions.
func (m *Mountain) placePads(n int, rng *rand.Rand) {
	segments := len(m.Points) - 1
	if n <= 0 || segments <= 0 {
		return
	}

	// Bounded attempts: tiny playfields may not fit every pad
	for attempts := 0; len(m.Pads) < n && attempts < n*20; attempts++ {
		span := 1 + rng.Intn(3)
		if span > segments {
			span = segments
		}
		first := rng.Intn(segments - span + 1)
		if !m.free(first, span) {
			continue
		}
		m.addPad(first, span, padMultipliers[span])
	}
}

// free reports whether segments [first, first+span) and their neighbours carry no pad.
func (m *Mountain) free(first, span int) bool {
	for s := first - 1; s <= first+span; s++ {
		if _, taken := m.padOf[s]; taken {
			return false
		}
	}
	return true
}

func (m *Mountain) addPad(first, span, multiplier int) {
	if m.padOf == nil {
		m.padOf = make(map[int]int)
	}
	if first < 0 || span <= 0 || first+span >= len(m.Points) {
		return
	}

	y := m.Points[first].Y
	for i := first + 1; i <= first+span; i++ {
		m.Points[i].Y = y
	}

	idx := len(m.Pads)
	for s := first; s < first+span; s++ {
		m.padOf[s] = idx
	}
	m.Pads = append(m.Pads, Pad{
		First:      first,
		Span:       span,
		X0:         m.Points[first].X,
		X1:         m.Points[first+span].X,
		Y:          y,
		Multiplier: multiplier,
	})
}

// Segments returns the number of polyline segments.
func (m *Mountain) Segments() int {
	return max(len(m.Points)-1, 0)
}

// Segment returns the endpoints of segment i.
func (m *Mountain) Segment(i int) (a, b core.Vec2) {
	return m.Points[i], m.Points[i+1]
}

// PadForSegment returns the pad index covering segment i, or -1.
func (m *Mountain) PadForSegment(i int) int {
	if idx, ok := m.padOf[i]; ok {
		return idx
	}
	return -1
}

// HeightAt returns the mountain's y at column x by linear interpolation.
// Outside the polyline the nearest endpoint's height is used.
func (m *Mountain) HeightAt(x float64) float64 {
	pts := m.Points
	switch {
	case len(pts) == 0:
		return 0
	case x <= pts[0].X:
		return pts[0].Y
	case x >= pts[len(pts)-1].X:
		return pts[len(pts)-1].Y
	}

	// First point strictly right of x
	i := 1
	for pts[i].X < x {
		i++
	}
	a, b := pts[i-1], pts[i]
	if b.X == a.X {
		return a.Y
	}
	t := (x - a.X) / (b.X - a.X)
	return a.Y + t*(b.Y-a.Y)
}

// PadAt returns the pad spanning column x, if any.
func (m *Mountain) PadAt(x float64) (Pad, bool) {
	for _, p := range m.Pads {
		if x >= p.X0 && x <= p.X1 {
			return p, true
		}
	}
	return Pad{}, false
}
