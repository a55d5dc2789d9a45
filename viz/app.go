//go:build js
// +build js

package viz

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// Canvas and timing constants for the demo.
const (
	WIDTH         = 1024
	HEIGHT        = 576
	FieldWidth    = 256
	FieldHeight   = 144
	FrameDuration = 33.33 // ~30 FPS
)

// App owns the canvas, the field being rendered, and the animation loop.
type App struct {
	Canvas *js.Object
	Ctx    *js.Object

	// Offscreen render target at field resolution, upscaled onto the
	// visible canvas each frame.
	Buffer    *js.Object
	BufferCtx *js.Object
	ImageData *js.Object

	Field   *Field
	Keys    map[int]bool
	Paused  bool
	ShowHUD bool

	Session *Session

	AnimationFrameID int
	LastFrameTime    float64
	startTime        float64
	elapsed          float64 // animation time in seconds, frozen while paused

	fps            float64
	fpsFrames      int
	fpsWindowStart float64
}

// NewApp creates the demo application bound to a visible canvas.
func NewApp(canvas, ctx *js.Object) *App {
	a := &App{
		Canvas:  canvas,
		Ctx:     ctx,
		Field:   NewField(FieldWidth, FieldHeight),
		Keys:    make(map[int]bool),
		ShowHUD: true,
	}
	a.Buffer = RenderTarget(FieldWidth, FieldHeight)
	a.BufferCtx = a.Buffer.Call("getContext", "2d")
	a.ImageData = a.BufferCtx.Call("createImageData", FieldWidth, FieldHeight)
	return a
}

// RenderTarget creates an off-screen canvas of the given size.
func RenderTarget(width, height int) *js.Object {
	canvas := js.Global.Get("document").Call("createElement", "canvas")
	canvas.Set("width", width)
	canvas.Set("height", height)
	return canvas
}

// Start wires input handlers and kicks off the animation loop.
func (a *App) Start() {
	a.SetupInputHandlers()
	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.LoopRAF).Int()
}

// LoopRAF is the main loop driven by requestAnimationFrame.
func (a *App) LoopRAF(currentTime float64) {
	// Schedule next frame
	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.LoopRAF).Int()

	if a.startTime == 0 {
		a.startTime = currentTime
		a.fpsWindowStart = currentTime
	}
	a.updateFPS(currentTime)

	// Fixed timestep
	if currentTime-a.LastFrameTime < FrameDuration {
		return
	}
	delta := currentTime - a.LastFrameTime
	a.LastFrameTime = currentTime

	if !a.Paused {
		a.elapsed += delta / 1000
	}

	Debug("Frame time:", currentTime, "Delta:", delta)
	a.RenderFrame()
}

// updateFPS tracks frames over a one second window.
func (a *App) updateFPS(currentTime float64) {
	a.fpsFrames++
	if currentTime-a.fpsWindowStart >= 1000 {
		a.fps = float64(a.fpsFrames) * 1000 / (currentTime - a.fpsWindowStart)
		a.fpsFrames = 0
		a.fpsWindowStart = currentTime
	}
}

// RenderFrame renders the field into the offscreen buffer and upscales it
// onto the visible canvas, then draws the HUD.
func (a *App) RenderFrame() {
	a.Field.Render(a.elapsed)

	a.ImageData.Get("data").Call("set", a.Field.Pix)
	a.BufferCtx.Call("putImageData", a.ImageData, 0, 0)

	a.Ctx.Set("imageSmoothingEnabled", a.Field.Mode != ModeRaw)
	a.Ctx.Call("drawImage", a.Buffer, 0, 0, WIDTH, HEIGHT)

	if a.ShowHUD {
		a.RenderHUD()
	}
}

// RenderHUD draws the parameter readout and key help.
func (a *App) RenderHUD() {
	ctx := a.Ctx
	ctx.Call("save")
	ctx.Set("font", Theme.HUDFont)
	ctx.Set("textAlign", "left")
	ctx.Set("shadowBlur", Theme.HUDShadowBlur)
	ctx.Set("shadowColor", Theme.HUDGlow)
	ctx.Set("fillStyle", Theme.HUDColor)

	line := "seed " + strconv.FormatUint(uint64(a.Field.Seed), 10) +
		"  mode " + a.Field.Mode.String() +
		"  palette " + a.Field.Palette().Name +
		"  octaves " + strconv.Itoa(a.Field.Octaves) +
		"  fps " + strconv.FormatFloat(a.fps, 'f', 0, 64)
	if a.Session != nil && a.Session.Connected() {
		line += "  room " + a.Session.RoomID
	}
	if a.Paused {
		line += "  [paused]"
	}
	ctx.Call("fillText", line, 12, 24)

	ctx.Set("font", Theme.InstructFont)
	ctx.Set("fillStyle", Theme.HUDSecondaryColor)
	ctx.Set("shadowColor", Theme.HUDSecondaryColor)
	ctx.Call("fillText",
		"arrows: seed/octaves  M: mode  C: palette  +/-: zoom  P: pause  H: hud  F: fullscreen",
		12, HEIGHT-12)
	ctx.Call("restore")
}

// ViewState captures the shareable parameters of the field.
func (a *App) ViewState() ViewState {
	return ViewState{
		Seed:    a.Field.Seed,
		Mode:    int(a.Field.Mode),
		Octaves: a.Field.Octaves,
		Scale:   a.Field.Scale,
		Palette: a.Field.PaletteIdx,
	}
}

// ApplyViewState adopts parameters received from a shared-view session.
// Remote state is untrusted, so every index is wrapped onto its valid
// range rather than taken as-is.
func (a *App) ApplyViewState(s ViewState) {
	a.Field.Seed = s.Seed
	mode := Mode(s.Mode) % modeCount
	if mode < 0 {
		mode += modeCount
	}
	a.Field.Mode = mode
	if s.Octaves > 0 && s.Octaves <= 8 {
		a.Field.Octaves = s.Octaves
	}
	if s.Scale > 0 {
		a.Field.Scale = s.Scale
	}
	a.Field.PaletteIdx = paletteIndex(s.Palette)
}

// publish pushes the current view state to the session, if connected.
func (a *App) publish() {
	if a.Session != nil && a.Session.Connected() {
		a.Session.Publish(a.ViewState())
	}
}
