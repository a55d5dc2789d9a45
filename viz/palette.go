package viz

// Theme holds visual styling constants for the demo HUD.
var Theme = struct {
	// Page/canvas background
	BackgroundColor string

	// HUD text colors
	HUDColor          string
	HUDGlow           string
	HUDSecondaryColor string

	// Fonts
	HUDFont      string
	InstructFont string

	// Shadow/glow blur values
	HUDShadowBlur float64
}{
	BackgroundColor:   "#000",
	HUDColor:          "#9F0",
	HUDGlow:           "#9F0",
	HUDSecondaryColor: "#FFF",
	HUDFont:           "16px Consolas,monospace",
	InstructFont:      "12px Consolas,monospace",
	HUDShadowBlur:     6.0,
}

// Stop is a gradient control point: the color the palette takes at
// position At, with At in [0, 1].
type Stop struct {
	At      float64
	R, G, B uint8
}

// Palette maps a noise value in [0, 1] onto a color by interpolating
// between gradient stops.
type Palette struct {
	Name  string
	Stops []Stop
}

// Lookup returns the interpolated color at v. Values outside [0, 1] clamp
// to the first/last stop.
func (p Palette) Lookup(v float64) (r, g, b uint8) {
	stops := p.Stops
	if len(stops) == 0 {
		return 0, 0, 0
	}
	if v <= stops[0].At {
		s := stops[0]
		return s.R, s.G, s.B
	}
	last := stops[len(stops)-1]
	if v >= last.At {
		return last.R, last.G, last.B
	}
	for i := 1; i < len(stops); i++ {
		if v > stops[i].At {
			continue
		}
		lo, hi := stops[i-1], stops[i]
		t := (v - lo.At) / (hi.At - lo.At)
		r = uint8(float64(lo.R) + t*(float64(hi.R)-float64(lo.R)))
		g = uint8(float64(lo.G) + t*(float64(hi.G)-float64(lo.G)))
		b = uint8(float64(lo.B) + t*(float64(hi.B)-float64(lo.B)))
		return r, g, b
	}
	return last.R, last.G, last.B
}

// Palettes are the selectable gradients, cycled by the demo's palette key.
var Palettes = []Palette{
	{
		Name: "grayscale",
		Stops: []Stop{
			{0, 0, 0, 0},
			{1, 255, 255, 255},
		},
	},
	{
		Name: "terrain",
		Stops: []Stop{
			{0.00, 12, 30, 82},    // deep water
			{0.42, 36, 98, 179},   // shallow water
			{0.46, 225, 208, 160}, // beach
			{0.55, 66, 135, 50},   // grass
			{0.75, 92, 76, 58},    // rock
			{0.88, 130, 130, 130}, // high rock
			{1.00, 255, 255, 255}, // snow
		},
	},
	{
		Name: "inferno",
		Stops: []Stop{
			{0.00, 0, 0, 4},
			{0.30, 87, 16, 110},
			{0.60, 188, 55, 84},
			{0.85, 249, 142, 9},
			{1.00, 252, 255, 164},
		},
	},
	{
		Name: "ice",
		Stops: []Stop{
			{0.00, 3, 6, 26},
			{0.40, 24, 62, 120},
			{0.70, 90, 160, 210},
			{1.00, 235, 250, 255},
		},
	},
}
