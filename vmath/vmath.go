package vmath

import "cmp"

// --- Clamping ---

// Clamp limits v to [lo, hi]
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Randomness ---

// FastRand is a xorshift64 generator; not safe for concurrent use
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n) using rejection sampling to avoid modulo bias
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	bound := uint64(n)
	limit := ^uint64(0) - (^uint64(0) % bound)
	for {
		v := r.Next()
		if v < limit {
			return int(v % bound)
		}
	}
}

// Shuffle permutes n elements in place with Fisher-Yates; every permutation is equally likely
func (r *FastRand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}
