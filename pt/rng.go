package pt

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

const Pi = 3.1415926535897932385

// RNG is the random source threaded explicitly through every call that
// needs randomness, instead of drawing from a shared global generator.
// This is what makes the render pipeline's determinism hook (see
// RenderSettings.Seed) and its per-pixel RNG derivation possible: each
// *rand.Rand is created for one pixel's sample and used only by the
// goroutine shading it.
type RNG = *rand.Rand

// NewRNG returns a new independent random source seeded deterministically
// from seed, or from OS entropy when seed is zero.
func NewRNG(seed int64) RNG {
	if seed == 0 {
		var buf [8]byte
		if _, err := cryptorand.Read(buf[:]); err == nil {
			seed = int64(binary.BigEndian.Uint64(buf[:]))
		}
		if seed == 0 {
			seed = 1
		}
	}
	return rand.New(rand.NewSource(seed))
}

func DegreesToRadians(degrees float64) float64 {
	return degrees * Pi / 180.0
}

func RandomDouble(rng RNG) float64 {
	return rng.Float64()
}

func RandomDoubleRange(rng RNG, min, max float64) float64 {
	return min + (max-min)*RandomDouble(rng)
}
