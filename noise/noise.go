// Package noise implements the SquirrelNoise5 deterministic noise/hash
// family: pure functions mapping an integer lattice position (1 to 4 axes)
// plus a seed to a well-distributed unsigned integer.
//
// The same (position, seed) pair always produces the same output, on any
// platform, which makes the family usable both as procedural noise and as
// a seedable RNG substitute. There are no tables, no floating point in the
// mixer, and no hidden state; every function here is safe to call from any
// number of goroutines.
package noise

// Mixing constants for the 32-bit family. These are the published
// SquirrelNoise5 constants (Squirrel Eiserloh, public domain). Changing any
// of them, or the shift schedule, produces a different value for every
// (position, seed) pair and therefore a different noise field everywhere
// downstream. Treat as frozen.
const (
	bitNoise1 = 0xd2a80a3f
	bitNoise2 = 0xa884f197
	bitNoise3 = 0x6c736f4b
	bitNoise4 = 0xb79f3abb
	bitNoise5 = 0x1b56c4f5
)

// Large odd primes used to fold the extra axes into the 1D position before
// hashing. The fold order is fixed: x, then y, then z, then t.
const (
	primeY = 198491317
	primeZ = 6542989
	primeT = 357239
)

// Noise1D hashes a 1D lattice position with the given seed and returns a
// pseudo-random 32-bit value. Negative positions are valid; they contribute
// their raw bit pattern. All arithmetic wraps, by contract.
func Noise1D(x int32, seed uint32) uint32 {
	mangled := uint32(x) * bitNoise1
	mangled += seed
	mangled ^= mangled >> 9
	mangled += bitNoise2
	mangled ^= mangled >> 11
	mangled *= bitNoise3
	mangled ^= mangled >> 13
	mangled += bitNoise4
	mangled ^= mangled >> 15
	mangled *= bitNoise5
	mangled ^= mangled >> 17
	return mangled
}

// Noise2D hashes a 2D lattice position with the given seed.
func Noise2D(x, y int32, seed uint32) uint32 {
	return Noise1D(x+primeY*y, seed)
}

// Noise3D hashes a 3D lattice position with the given seed.
func Noise3D(x, y, z int32, seed uint32) uint32 {
	return Noise1D(x+primeY*y+primeZ*z, seed)
}

// Noise4D hashes a 4D lattice position with the given seed.
func Noise4D(x, y, z, t int32, seed uint32) uint32 {
	return Noise1D(x+primeY*y+primeZ*z+primeT*t, seed)
}

// ToZeroToOne maps a raw 32-bit noise value onto [0, 1).
func ToZeroToOne(raw uint32) float64 {
	return float64(raw) / (1 << 32)
}

// ToNegOneToOne maps a raw 32-bit noise value onto [-1, 1).
func ToNegOneToOne(raw uint32) float64 {
	return float64(int32(raw)) / (1 << 31)
}

// ZeroToOne1D returns 1D noise scaled onto [0, 1).
func ZeroToOne1D(x int32, seed uint32) float64 {
	return ToZeroToOne(Noise1D(x, seed))
}

// ZeroToOne2D returns 2D noise scaled onto [0, 1).
func ZeroToOne2D(x, y int32, seed uint32) float64 {
	return ToZeroToOne(Noise2D(x, y, seed))
}

// ZeroToOne3D returns 3D noise scaled onto [0, 1).
func ZeroToOne3D(x, y, z int32, seed uint32) float64 {
	return ToZeroToOne(Noise3D(x, y, z, seed))
}

// ZeroToOne4D returns 4D noise scaled onto [0, 1).
func ZeroToOne4D(x, y, z, t int32, seed uint32) float64 {
	return ToZeroToOne(Noise4D(x, y, z, t, seed))
}

// NegOneToOne1D returns 1D noise scaled onto [-1, 1).
func NegOneToOne1D(x int32, seed uint32) float64 {
	return ToNegOneToOne(Noise1D(x, seed))
}

// NegOneToOne2D returns 2D noise scaled onto [-1, 1).
func NegOneToOne2D(x, y int32, seed uint32) float64 {
	return ToNegOneToOne(Noise2D(x, y, seed))
}

// NegOneToOne3D returns 3D noise scaled onto [-1, 1).
func NegOneToOne3D(x, y, z int32, seed uint32) float64 {
	return ToNegOneToOne(Noise3D(x, y, z, seed))
}

// NegOneToOne4D returns 4D noise scaled onto [-1, 1).
func NegOneToOne4D(x, y, z, t int32, seed uint32) float64 {
	return ToNegOneToOne(Noise4D(x, y, z, t, seed))
}
