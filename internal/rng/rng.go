// Package rng provides the default seedable random source used by
// renderers for entity spawning. Visual randomness does not need to be
// cryptographic, it needs to be reproducible under a fixed seed.
package rng

import "math/rand/v2"

// Source wraps a PCG generator behind the ports.Rand contract.
type Source struct {
	r *rand.Rand
}

// New creates a deterministic source from the given seed.
func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// IntN returns a value in [0, n).
func (s *Source) IntN(n int) int {
	return s.r.IntN(n)
}
