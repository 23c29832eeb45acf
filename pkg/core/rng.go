package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	src *rand.PCG
	r   *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	src := rand.NewPCG(uint64(seed), 0)
	return &RNG{src: src, r: rand.New(src)}
}

// Reseed rewinds the generator to the stream for seed. Every *rand.Rand handed
// out by Source follows the new stream.
func (r *RNG) Reseed(seed int64) {
	r.src.Seed(uint64(seed), 0)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
