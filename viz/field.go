// Package viz renders noise fields for the browser demo. The field and
// palette logic in this file is plain Go with no DOM dependencies, so it is
// testable natively; the js-tagged files wire it to a canvas.
package viz

import "github.com/TheZoc/squirrelnoise/noise"

// Mode selects how the field samples the noise family.
type Mode int

const (
	// ModeRaw shows the raw per-pixel hash (white noise).
	ModeRaw Mode = iota
	// ModeValue shows smooth value noise.
	ModeValue
	// ModeFBM shows a fractal octave sum.
	ModeFBM
	// ModeRidge shows ridged fractal noise.
	ModeRidge

	modeCount
)

// String names the mode for the HUD.
func (m Mode) String() string {
	switch m {
	case ModeRaw:
		return "raw hash"
	case ModeValue:
		return "value"
	case ModeFBM:
		return "fbm"
	case ModeRidge:
		return "ridge"
	}
	return "unknown"
}

// Next cycles to the following mode.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

// Field renders a rectangular window of a noise field into an RGBA buffer.
type Field struct {
	Width, Height int

	Seed        uint32
	Scale       float64 // world units per pixel in the smooth modes
	Octaves     int
	Lacunarity  float64
	Persistence float64
	Mode        Mode
	PaletteIdx  int

	// Pix is the RGBA pixel buffer, row-major, 4 bytes per pixel.
	Pix []byte
}

// Default field parameters.
const (
	DefaultScale       = 0.02
	DefaultOctaves     = 4
	DefaultLacunarity  = 2.0
	DefaultPersistence = 0.5
)

// NewField creates a field with default parameters and an allocated
// pixel buffer.
func NewField(width, height int) *Field {
	return &Field{
		Width:       width,
		Height:      height,
		Scale:       DefaultScale,
		Octaves:     DefaultOctaves,
		Lacunarity:  DefaultLacunarity,
		Persistence: DefaultPersistence,
		Mode:        ModeFBM,
		Pix:         make([]byte, width*height*4),
	}
}

// paletteIndex wraps any int, including negatives, onto a valid index.
// Remote view state arrives unvalidated, so a raw modulo is not enough:
// Go's % keeps the sign of the dividend.
func paletteIndex(i int) int {
	i %= len(Palettes)
	if i < 0 {
		i += len(Palettes)
	}
	return i
}

// Palette returns the field's active palette.
func (f *Field) Palette() Palette {
	return Palettes[paletteIndex(f.PaletteIdx)]
}

// CyclePalette advances to the next palette.
func (f *Field) CyclePalette() {
	f.PaletteIdx = paletteIndex(f.PaletteIdx + 1)
}

// Sample returns the field value at pixel (x, y) in [0, 1] for animation
// time t (seconds).
func (f *Field) Sample(x, y int, t float64) float64 {
	switch f.Mode {
	case ModeRaw:
		// Per-pixel hash; the time axis reseeds every quarter second so
		// the static visibly flickers.
		return noise.ZeroToOne3D(int32(x), int32(y), int32(t*4), f.Seed)
	case ModeValue:
		v := noise.Value3D(float64(x)*f.Scale, float64(y)*f.Scale, t*0.25, f.Seed)
		return (v + 1) / 2
	case ModeRidge:
		return noise.Ridge2D(float64(x)*f.Scale+t*0.1, float64(y)*f.Scale, f.Seed,
			f.Octaves, f.Lacunarity, f.Persistence)
	default: // ModeFBM
		v := noise.FBM3D(float64(x)*f.Scale, float64(y)*f.Scale, t*0.25, f.Seed,
			f.Octaves, f.Lacunarity, f.Persistence)
		return (v + 1) / 2
	}
}

// Render fills the pixel buffer for animation time t.
func (f *Field) Render(t float64) {
	pal := f.Palette()
	i := 0
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := pal.Lookup(f.Sample(x, y, t))
			f.Pix[i] = r
			f.Pix[i+1] = g
			f.Pix[i+2] = b
			f.Pix[i+3] = 255
			i += 4
		}
	}
}
