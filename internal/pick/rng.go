package pick

import (
	cryptoRand "crypto/rand"
	"math/rand/v2"
)

// RandomSource is what the engine draws from. *rand.Rand from math/rand/v2
// satisfies it.
type RandomSource interface {
	Uint64N(n uint64) uint64 // [0, n)
	NormFloat64() float64    // mean 0, stddev 1
}

// DefaultRNG returns a ChaCha8 generator seeded from crypto/rand.
func DefaultRNG() RandomSource {
	var seed [32]byte
	if _, err := cryptoRand.Read(seed[:]); err != nil {
		// back to the runtime-seeded global source
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewChaCha8(seed))
}

// NewSeededRNG returns a reproducible generator (tests, --seed, simulation).
func NewSeededRNG(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, 0))
}
