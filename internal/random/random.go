// Package random wraps a seedable pseudo-random source shared by the art and
// music passes.
package random

import "math/rand/v2"

// Source is the subset of *rand.Rand used by the generators.
type Source interface {
	Float64() float64
	IntN(n int) int
}

// New returns a PCG-backed source. A zero seed draws one from the runtime's
// auto-seeded generator, so runs are not reproducible.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Uniform returns a value drawn uniformly from [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// Choice returns an element of items picked uniformly at random.
// It panics if items is empty.
func Choice[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}
