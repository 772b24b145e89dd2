package core

import (
	"math/rand"
	"time"
)

// Rand is the randomness source used by generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed falls back to the current time.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
