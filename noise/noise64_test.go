package noise

import (
	"math"
	"math/bits"
	"testing"
)

// --- Reference Literal Tests ---

// TestNoise1D64_ReferenceLiterals locks the 64-bit family's constants and
// round schedule. This family is versioned independently of the 32-bit one.
func TestNoise1D64_ReferenceLiterals(t *testing.T) {
	cases := []struct {
		x    int64
		seed uint64
		want uint64
	}{
		{0, 0, 0x3668b46ff5acca5b},
		{1, 0, 0x30027d86d1c68ae5},
		{7, 42, 0x993b6474a91c6453},
		{-1, 0, 0xbf6b1b1b2debd961},
		{987654321, 123456789, 0xc67154d7bddb39c3},
		{0, math.MaxUint64, 0xbd00a81a93bd6ad7},
	}
	for _, c := range cases {
		if got := Noise1D64(c.x, c.seed); got != c.want {
			t.Errorf("Noise1D64(%d, %d) = %#016x, want %#016x", c.x, c.seed, got, c.want)
		}
	}
}

// TestNoiseND64_ReferenceLiterals locks the 64-bit folds.
func TestNoiseND64_ReferenceLiterals(t *testing.T) {
	if got := Noise2D64(3, 7, 0); got != 0xe51c0dab29c16e7c {
		t.Errorf("Noise2D64(3, 7, 0) = %#016x, want 0xe51c0dab29c16e7c", got)
	}
	if got := Noise3D64(1, 2, 3, 99); got != 0x3020b211ccca8342 {
		t.Errorf("Noise3D64(1, 2, 3, 99) = %#016x, want 0x3020b211ccca8342", got)
	}
	if got := Noise4D64(1, 2, 3, 4, 99); got != 0x71a5be2b2c86c7e0 {
		t.Errorf("Noise4D64(1, 2, 3, 4, 99) = %#016x, want 0x71a5be2b2c86c7e0", got)
	}
}

// --- Boundary Input Tests ---

// TestNoise1D64_BoundaryInputs checks the extremes return stable values
// without trapping.
func TestNoise1D64_BoundaryInputs(t *testing.T) {
	if got := Noise1D64(math.MinInt64, 0); got != 0xabfe3d201978d0e5 {
		t.Errorf("Noise1D64(MinInt64, 0) = %#016x, want 0xabfe3d201978d0e5", got)
	}
	if got := Noise1D64(math.MaxInt64, math.MaxUint64); got != 0x2b964ebcf55c8d36 {
		t.Errorf("Noise1D64(MaxInt64, MaxUint64) = %#016x, want 0x2b964ebcf55c8d36", got)
	}
	_ = Noise4D64(math.MinInt64, math.MaxInt64, math.MinInt64, math.MaxInt64, math.MaxUint64)
}

// --- Family Independence Tests ---

// TestNoise1D64_NotAWidenedNoise1D verifies the 64-bit family is not the
// 32-bit mixer in disguise for inputs both can represent.
func TestNoise1D64_NotAWidenedNoise1D(t *testing.T) {
	matches := 0
	for x := int64(0); x < 64; x++ {
		if uint64(Noise1D(int32(x), 5)) == Noise1D64(x, 5) ||
			uint32(Noise1D64(x, 5)) == Noise1D(int32(x), 5) {
			matches++
		}
	}
	if matches > 0 {
		t.Errorf("64-bit outputs coincide with 32-bit outputs at %d of 64 positions", matches)
	}
}

// TestNoiseND64_FoldReducesToLowerDimension mirrors the 32-bit fold
// contract for the 64-bit family.
func TestNoiseND64_FoldReducesToLowerDimension(t *testing.T) {
	positions := []int64{0, 1, -1, 8, 123456789, math.MinInt64, math.MaxInt64}
	for _, x := range positions {
		if Noise2D64(x, 0, 5) != Noise1D64(x, 5) {
			t.Errorf("Noise2D64(%d, 0, 5) != Noise1D64(%d, 5)", x, x)
		}
		if Noise3D64(x, 3, 0, 5) != Noise2D64(x, 3, 5) {
			t.Errorf("Noise3D64(%d, 3, 0, 5) != Noise2D64(%d, 3, 5)", x, x)
		}
		if Noise4D64(x, 3, 9, 0, 5) != Noise3D64(x, 3, 9, 5) {
			t.Errorf("Noise4D64(%d, 3, 9, 0, 5) != Noise3D64(%d, 3, 9, 5)", x, x)
		}
	}
}

// --- Avalanche & Distribution Tests ---

// TestNoise1D64_SeedAvalanche checks single seed-bit flips move about half
// of the 64 output bits.
func TestNoise1D64_SeedAvalanche(t *testing.T) {
	const trials = 2000
	total := 0
	s := uint64(7)
	for i := 0; i < trials; i++ {
		s = testLCG(s)
		x := int64(s)
		s = testLCG(s)
		seed := s
		bit := uint64(1) << (i % 64)

		total += bits.OnesCount64(Noise1D64(x, seed) ^ Noise1D64(x, seed^bit))
	}
	avg := float64(total) / trials
	if avg < 29 || avg > 35 {
		t.Errorf("seed avalanche average %.2f bits, want ~32", avg)
	}
}

// TestNoise1D64_BitFrequency samples a contiguous range and checks coarse
// per-bit uniformity.
func TestNoise1D64_BitFrequency(t *testing.T) {
	const n = 32768
	var counts [64]int
	for i := 0; i < n; i++ {
		v := Noise1D64(int64(i), 0)
		for b := 0; b < 64; b++ {
			if v>>b&1 == 1 {
				counts[b]++
			}
		}
	}
	for b, c := range counts {
		if c < n/2-1200 || c > n/2+1200 {
			t.Errorf("bit %d set %d times over %d samples, want ~%d", b, c, n, n/2)
		}
	}
}
