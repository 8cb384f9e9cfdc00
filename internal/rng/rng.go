// Package rng provides the seeded random source shared by all games:
// secret numbers, deck shuffles, computer choices and spawn positions.
package rng

import (
	"math/rand"
	"time"
)

// Rand is a deterministic random source. A zero seed is replaced by the
// current time so interactive play differs between runs.
type Rand struct {
	r *rand.Rand
}

// New creates a Rand seeded with seed.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform integer in [0, n). n <= 0 yields 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.Intn(n)
}

// IntRange returns a uniform integer in the closed range [lo, hi].
func (r *Rand) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}

// Float64 returns a uniform float in [0, 1).
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Shuffle permutes s in place (Fisher-Yates, walking down from the end).
func Shuffle[T any](r *Rand, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Pick returns a uniformly chosen element of s. s must not be empty.
func Pick[T any](r *Rand, s []T) T {
	return s[r.Intn(len(s))]
}
