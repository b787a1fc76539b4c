package core

import "math/rand/v2"

// RNG is a reseedable PCG stream owned by one automaton.
type RNG struct {
	src *rand.PCG
	r   *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	src := rand.NewPCG(uint64(seed), 0)
	return &RNG{src: src, r: rand.New(src)}
}

// Seed rewinds the generator to the stream for seed.
func (r *RNG) Seed(seed int64) {
	r.src.Seed(uint64(seed), 0)
}

// IntN returns a random int in [0, n), or 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}
