package noise

// The 64-bit family is tuned independently of the 32-bit one: avalanche
// quality does not survive a mechanical widening of 32-bit constants. It
// keeps the SquirrelNoise round structure (premultiply, add seed, then
// alternating xorshift/add/multiply rounds) but uses 64-bit constants with
// known-good diffusion: the xxHash64 primes weight the position and axis
// folds, and the two multipliers are the splitmix64 finalizer constants.
// Outputs are NOT compatible with the 32-bit family in any way; treat this
// as its own versioned noise family.
const (
	bit64Noise1 = 0x9e3779b185ebca87
	bit64Noise2 = 0xc2b2ae3d27d4eb4f
	bit64Noise3 = 0xbf58476d1ce4e5b9
	bit64Noise4 = 0x27d4eb2f165667c5
	bit64Noise5 = 0x94d049bb133111eb
)

// Axis folding primes for the 64-bit family, fixed fold order x, y, z, t.
const (
	prime64Y = 0xc2b2ae3d27d4eb4f
	prime64Z = 0x165667b19e3779f9
	prime64T = 0x27d4eb2f165667c5
)

// Noise1D64 hashes a 1D lattice position with the given seed and returns a
// pseudo-random 64-bit value. Arithmetic wraps, by contract.
func Noise1D64(x int64, seed uint64) uint64 {
	mangled := uint64(x) * bit64Noise1
	mangled += seed
	mangled ^= mangled >> 31
	mangled += bit64Noise2
	mangled ^= mangled >> 29
	mangled *= bit64Noise3
	mangled ^= mangled >> 27
	mangled += bit64Noise4
	mangled ^= mangled >> 33
	mangled *= bit64Noise5
	mangled ^= mangled >> 31
	return mangled
}

// Noise2D64 hashes a 2D lattice position with the given seed. The fold is
// computed in unsigned arithmetic because the fold primes exceed int64.
func Noise2D64(x, y int64, seed uint64) uint64 {
	return Noise1D64(int64(uint64(x)+prime64Y*uint64(y)), seed)
}

// Noise3D64 hashes a 3D lattice position with the given seed.
func Noise3D64(x, y, z int64, seed uint64) uint64 {
	return Noise1D64(int64(uint64(x)+prime64Y*uint64(y)+prime64Z*uint64(z)), seed)
}

// Noise4D64 hashes a 4D lattice position with the given seed.
func Noise4D64(x, y, z, t int64, seed uint64) uint64 {
	return Noise1D64(int64(uint64(x)+prime64Y*uint64(y)+prime64Z*uint64(z)+prime64T*uint64(t)), seed)
}
