package noise

import "math"

// Smooth noise layered on the raw hash. Lattice corners are hashed with the
// 32-bit family and interpolated with a quintic fade, so everything here
// inherits the core's determinism: same coordinates + same seed, same value,
// with no permutation tables and no per-call state.

// fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// lerp linearly interpolates between a and b.
func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// fastFloor is a floor that stays correct for negative coordinates.
func fastFloor(x float64) int32 {
	i := int32(x)
	if float64(i) > x {
		i--
	}
	return i
}

// Value2D returns smooth value noise at (x, y) in roughly [-1, 1).
// At integer coordinates it equals NegOneToOne2D of the lattice point.
func Value2D(x, y float64, seed uint32) float64 {
	xi := fastFloor(x)
	yi := fastFloor(y)
	xf := x - float64(xi)
	yf := y - float64(yi)

	u := fade(xf)
	v := fade(yf)

	c00 := NegOneToOne2D(xi, yi, seed)
	c10 := NegOneToOne2D(xi+1, yi, seed)
	c01 := NegOneToOne2D(xi, yi+1, seed)
	c11 := NegOneToOne2D(xi+1, yi+1, seed)

	return lerp(v, lerp(u, c00, c10), lerp(u, c01, c11))
}

// Value3D returns smooth value noise at (x, y, z) in roughly [-1, 1).
// The third axis is typically used to animate a 2D field over time.
func Value3D(x, y, z float64, seed uint32) float64 {
	xi := fastFloor(x)
	yi := fastFloor(y)
	zi := fastFloor(z)
	xf := x - float64(xi)
	yf := y - float64(yi)
	zf := z - float64(zi)

	u := fade(xf)
	v := fade(yf)
	w := fade(zf)

	c000 := NegOneToOne3D(xi, yi, zi, seed)
	c100 := NegOneToOne3D(xi+1, yi, zi, seed)
	c010 := NegOneToOne3D(xi, yi+1, zi, seed)
	c110 := NegOneToOne3D(xi+1, yi+1, zi, seed)
	c001 := NegOneToOne3D(xi, yi, zi+1, seed)
	c101 := NegOneToOne3D(xi+1, yi, zi+1, seed)
	c011 := NegOneToOne3D(xi, yi+1, zi+1, seed)
	c111 := NegOneToOne3D(xi+1, yi+1, zi+1, seed)

	bottom := lerp(v, lerp(u, c000, c100), lerp(u, c010, c110))
	top := lerp(v, lerp(u, c001, c101), lerp(u, c011, c111))
	return lerp(w, bottom, top)
}

// FBM2D sums octaves of Value2D as fractal Brownian motion. The result is
// normalized by the total amplitude so it stays in roughly [-1, 1).
func FBM2D(x, y float64, seed uint32, octaves int, lacunarity, persistence float64) float64 {
	total := 0.0
	frequency := 1.0
	amplitude := 1.0
	maxAmplitude := 0.0

	for i := 0; i < octaves; i++ {
		// Each octave gets a derived seed so the layers decorrelate.
		total += Value2D(x*frequency, y*frequency, Noise1D(int32(i), seed)) * amplitude
		maxAmplitude += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	if maxAmplitude == 0 {
		return 0
	}
	return total / maxAmplitude
}

// FBM3D is the 3D counterpart of FBM2D.
func FBM3D(x, y, z float64, seed uint32, octaves int, lacunarity, persistence float64) float64 {
	total := 0.0
	frequency := 1.0
	amplitude := 1.0
	maxAmplitude := 0.0

	for i := 0; i < octaves; i++ {
		total += Value3D(x*frequency, y*frequency, z*frequency, Noise1D(int32(i), seed)) * amplitude
		maxAmplitude += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}

	if maxAmplitude == 0 {
		return 0
	}
	return total / maxAmplitude
}

// Ridge2D turns fractal noise into sharp ridges in [0, 1]: the absolute
// value inverts creases into peaks, squaring sharpens them.
func Ridge2D(x, y float64, seed uint32, octaves int, lacunarity, persistence float64) float64 {
	n := FBM2D(x, y, seed, octaves, lacunarity, persistence)
	n = 1.0 - math.Abs(n)
	return n * n
}
