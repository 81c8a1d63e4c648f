// Package randutil centralises RNG construction so every nondeterministic
// path in the module derives from a single reproducible seed.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from the provided int64.
// rand/v2's PCG wants two 64-bit seeds; both are derived from the one input
// so call sites stay reproducible.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed returns the given seed if set, otherwise one taken from the clock.
// Commands use it so that an explicit --seed wins and everything else still
// logs a seed that can replay the run.
func Seed(explicit *int64) int64 {
	if explicit != nil {
		return *explicit
	}
	return time.Now().UnixNano()
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
