package rng

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/TheZoc/squirrelnoise/noise"
)

// math/rand adapter over the 64-bit noise family, for code that wants the
// stdlib Rand API with a reproducible, seekable source underneath.

const maxInt63 = (1 << 63) - 1

type noiseSource struct {
	seed     uint64
	position int64
}

// NewSource returns a rand.Source64 whose draw n is the 64-bit hash of
// position n under the seed.
func NewSource(seed int64) rand.Source64 {
	return &noiseSource{seed: uint64(seed)}
}

// NewRand returns a *rand.Rand over a noise-backed source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(NewSource(seed))
}

// NewSeed draws a seed from the operating system's entropy source, for
// callers that want an arbitrary starting point rather than a replayable one.
func NewSeed() int64 {
	var seed [8]byte
	if _, err := cryptorand.Read(seed[:]); err != nil {
		// A failed read would leave the buffer zeroed; a clock seed is
		// still unpredictable enough for noise exploration.
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(seed[:]))
}

func (s *noiseSource) Uint64() uint64 {
	v := noise.Noise1D64(s.position, s.seed)
	s.position++
	return v
}

func (s *noiseSource) Int63() int64 {
	return int64(s.Uint64() & maxInt63)
}

func (s *noiseSource) Seed(seed int64) {
	s.seed = uint64(seed)
	s.position = 0
}
