// Package random wraps a unit-interval source with the helpers sketches
// reach for: ranged floats and ints, picks, shuffles and samples.
package random

import (
	"math"
	"math/rand/v2"
	"slices"

	"crayon/vec2"
)

// Rand draws from a function returning values in [0, 1).
type Rand struct {
	src func() float64
}

// New configures helpers around source. A nil source uses math/rand/v2.
func New(source func() float64) *Rand {
	if source == nil {
		source = rand.Float64
	}
	return &Rand{src: source}
}

// Seeded is a reproducible generator.
func Seeded(seed uint64) *Rand {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return New(r.Float64)
}

// Default uses the global math/rand/v2 source.
var Default = New(nil)

// Float returns a number in [min, max).
func (r *Rand) Float(min, max float64) float64 {
	return r.src()*(max-min) + min
}

// Int returns floor(Float(min, max)), an integer in [min, max).
func (r *Rand) Int(min, max int) int {
	return int(math.Floor(r.Float(float64(min), float64(max))))
}

// NFloat returns n numbers in [min, max).
func (r *Rand) NFloat(n int, min, max float64) []float64 {
	out := make([]float64, max0(n))
	for i := range out {
		out[i] = r.Float(min, max)
	}
	return out
}

// Vecs returns n vectors whose components are in [min, max).
func (r *Rand) Vecs(n int, min, max float64) []vec2.Vec {
	out := make([]vec2.Vec, max0(n))
	for i := range out {
		out[i] = vec2.V(r.Float(min, max), r.Float(min, max))
	}
	return out
}

func max0(n int) int { return max(n, 0) }

// Choice picks one element. ok is false for an empty slice.
func Choice[T any](r *Rand, xs []T) (v T, ok bool) {
	if len(xs) == 0 {
		return v, false
	}
	return xs[r.Int(0, len(xs))], true
}

// Shuffle returns a shuffled copy of xs.
func Shuffle[T any](r *Rand, xs []T) []T {
	out := slices.Clone(xs)
	for i := len(out) - 1; i > 0; i-- {
		j := r.Int(0, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample picks n elements of xs, keeping their original order. n is capped
// at len(xs).
func Sample[T any](r *Rand, xs []T, n int) []T {
	n = min(max0(n), len(xs))
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	idx = Shuffle(r, idx)[:n]
	slices.Sort(idx)
	out := make([]T, n)
	for i, k := range idx {
		out[i] = xs[k]
	}
	return out
}
