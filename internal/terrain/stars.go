package terrain

import "math/rand"

// Star is a background point. Z is its depth in [1.0, 2.5); deeper stars
// render brighter.
type Star struct {
	X, Y float64
	Z    float64
}

// Glyph returns the rune used to draw the star.
func (s Star) Glyph() rune {
	switch {
	case s.Z < 1.5:
		return '.'
	case s.Z < 2.0:
		return '+'
	default:
		return '*'
	}
}

// Stars scatters n stars over the top half of a width x height playfield.
func Stars(n, width, height int, seed int64) []Star {
	if n <= 0 || width <= 0 || height <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	maxY := float64(height) / 2

	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X: rng.Float64() * float64(width),
			Y: rng.Float64() * maxY,
			Z: 1.0 + rng.Float64()*1.5,
		}
	}
	return stars
}
