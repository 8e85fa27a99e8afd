package game

import (
	"math/rand"
	"time"
)

// Rand is the random source used by the level generator and enemies.
// *math/rand.Rand satisfies it; tests can inject a scripted source.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded source. A zero seed is replaced by the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// uniform returns a value in [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}
