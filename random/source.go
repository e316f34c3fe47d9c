// Package random provides the seeded random source that drives generation.
//
// Generation only needs a small capability, described by Source. Rand is the
// default implementation: a PCG stream that produces the same sequence for
// the same seed, so a failing test can be replayed from its seed alone.
package random

import (
	"math"
	"math/rand/v2"
)

// Source is the random capability consumed by generators.
//
// A Source is not safe for concurrent use; give each goroutine its own.
type Source interface {
	// Bool returns true with probability p.
	Bool(p float64) bool
	// IntN returns a uniform integer in [min, max). Panics if max <= min.
	IntN(min, max int) int
}

// Rand is a deterministic Source seeded with a 64-bit value.
type Rand struct {
	seed uint64
	r    *rand.Rand
}

// pcgStream is the fixed PCG increment paired with every seed.
const pcgStream = 0x9E3779B97F4A7C15

// New returns a Rand seeded with seed.
func New(seed uint64) *Rand {
	return &Rand{
		seed: seed,
		r:    rand.New(rand.NewPCG(seed, pcgStream)),
	}
}

// NewFromOS returns a Rand seeded from operating system entropy.
func NewFromOS() *Rand {
	return New(Seed())
}

// Seed returns the seed the source was created with.
func (r *Rand) Seed() uint64 {
	return r.seed
}

// Bool returns true with probability p.
func (r *Rand) Bool(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return r.r.Float64() < p
}

// IntN returns a uniform integer in [min, max).
func (r *Rand) IntN(min, max int) int {
	if max <= min {
		panic("random: IntN called with max <= min")
	}
	return min + r.r.IntN(max-min)
}

// Float64 returns a uniform float in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Gaussian returns an integer drawn from a normal distribution with the
// given mean and standard deviation, rounded to the nearest integer.
func (r *Rand) Gaussian(mean, stddev float64) int {
	return int(math.Round(r.r.NormFloat64()*stddev + mean))
}

// Element returns a uniformly chosen element of items.
// Panics if items is empty.
func Element[T any](src Source, items []T) T {
	if len(items) == 0 {
		panic("random: Element of empty slice")
	}
	return items[src.IntN(0, len(items))]
}
