package slots

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// RNG is the randomness source threaded through every draw.
// *rand.Rand from math/rand/v2 satisfies it.
type RNG interface {
	Float64() float64
	IntN(n int) int
}

// pcgStream is mixed into the seed to derive the second PCG word
const pcgStream = 0x9e3779b97f4a7c15

// NewRNG returns a deterministic generator for the given seed
func NewRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStream))
}

// NewSeed draws a high-entropy seed from crypto/rand
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// chance reports a Bernoulli(p) trial
func chance(rng RNG, p float64) bool {
	return rng.Float64() < p
}
