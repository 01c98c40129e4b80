package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int64s returns n pseudo-random int64 values.
func (r *RNG) Int64s(n int) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int64, n)
	for i := range out {
		out[i] = r.rand.Int63() - r.rand.Int63()
	}
	return out
}

// Float64s returns n pseudo-random float64 values in [0, 1).
func (r *RNG) Float64s(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	for i := range out {
		out[i] = r.rand.Float64()
	}
	return out
}

// Validity generates one presence flag per position.
// nullRate is the probability that a position is null (0.3 = 30% null).
func (r *RNG) Validity(n int, nullRate float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	present := make([]bool, n)
	for i := range n {
		present[i] = r.rand.Float64() >= nullRate
	}

	return present
}

// Partition returns parts-1 sorted cut points in [0, n], splitting [0, n)
// into parts contiguous, possibly empty, ranges.
func (r *RNG) Partition(n, parts int) []int {
	if parts < 1 {
		parts = 1
	}

	r.mu.Lock()
	cuts := make([]int, parts-1)
	for i := range cuts {
		cuts[i] = r.rand.Intn(n + 1)
	}
	r.mu.Unlock()

	sort.Ints(cuts)
	return cuts
}
