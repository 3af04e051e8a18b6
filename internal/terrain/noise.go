// Package terrain generates the lander's playfield: a mountain silhouette
// from scaled 1-D gradient noise, landing pads cut into it, and a starfield.
package terrain

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// NoiseParams controls the gradient noise used for mountain heights.
type NoiseParams struct {
	Frequency float64 // noise-space distance between adjacent columns
	Alpha     float64 // weight divisor between octaves
	Beta      float64 // frequency multiplier between octaves
	Octaves   int32
}

// DefaultNoise returns parameters that give a few peaks per 80 columns.
func DefaultNoise() NoiseParams {
	return NoiseParams{Frequency: 0.05, Alpha: 2, Beta: 2, Octaves: 3}
}

// Heights samples 1-D gradient noise at every column in [0, width) and
// rescales the samples into [minY, maxY]: the lowest sample maps to minY and
// the highest to maxY. The same seed always yields the same heights.
func Heights(width int, seed int64, p NoiseParams, minY, maxY float64) []float64 {
	if width <= 0 {
		return nil
	}
	if p.Octaves <= 0 {
		p.Octaves = 1
	}
	if p.Frequency == 0 {
		p.Frequency = DefaultNoise().Frequency
	}

	gen := perlin.NewPerlin(p.Alpha, p.Beta, p.Octaves, seed)
	raw := make([]float64, width)
	for x := range raw {
		raw[x] = gen.Noise1D(float64(x) * p.Frequency)
	}
	return Scale(raw, minY, maxY)
}

// Scale linearly maps samples so that their minimum becomes lo and their
// maximum becomes hi. A constant signal maps to the midpoint of [lo, hi].
// The input slice is not modified.
func Scale(samples []float64, lo, hi float64) []float64 {
	out := make([]float64, len(samples))
	if len(samples) == 0 {
		return out
	}

	min, max := math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		min = math.Min(min, s)
		max = math.Max(max, s)
	}

	span := max - min
	if span == 0 {
		mid := lo + (hi-lo)/2
		for i := range out {
			out[i] = mid
		}
		return out
	}

	for i, s := range samples {
		out[i] = lo + (s-min)/span*(hi-lo)
	}
	return out
}
