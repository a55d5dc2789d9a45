//go:build js
// +build js

package viz

import (
	"github.com/gopherjs/gopherjs/js"
)

// KeyMap maps alternative keys to canonical control codes.
var KeyMap = map[int]int{
	27: 80, // Esc => P
	32: 80, // Space => P
	65: 37, // A => Left
	68: 39, // D => Right
	74: 37, // J => Left
	75: 40, // K => Down
	76: 39, // L => Right
	83: 40, // S => Down
	87: 38, // W => Up
}

// TranslateKeyCode converts alternative key codes to canonical control codes.
func TranslateKeyCode(keyCode int) int {
	if mapped, ok := KeyMap[keyCode]; ok {
		return mapped
	}
	return keyCode
}

// SetupInputHandlers initializes keyboard event handlers.
func (a *App) SetupInputHandlers() {
	js.Global.Get("document").Call("addEventListener", "keydown",
		func(event *js.Object) {
			rawKeyCode := event.Get("keyCode").Int()
			keyCode := TranslateKeyCode(rawKeyCode)
			a.Keys[keyCode] = true

			switch keyCode {
			case 39: // Right - next seed
				a.Field.Seed++
				a.publish()
			case 37: // Left - previous seed
				a.Field.Seed--
				a.publish()
			case 38: // Up - more octaves
				if a.Field.Octaves < 8 {
					a.Field.Octaves++
					a.publish()
				}
			case 40: // Down - fewer octaves
				if a.Field.Octaves > 1 {
					a.Field.Octaves--
					a.publish()
				}
			case 77: // M - cycle mode
				a.Field.Mode = a.Field.Mode.Next()
				a.publish()
			case 67: // C - cycle palette
				a.Field.CyclePalette()
				a.publish()
			case 187, 107: // + (and numpad) - zoom in
				a.Field.Scale /= 1.25
				a.publish()
			case 189, 109: // - (and numpad) - zoom out
				a.Field.Scale *= 1.25
				a.publish()
			case 80: // P - pause animation
				a.Paused = !a.Paused
			case 72: // H - toggle HUD
				a.ShowHUD = !a.ShowHUD
			case 70: // F - fullscreen
				a.requestFullscreen()
			default:
				return
			}
			event.Call("preventDefault")
		})

	js.Global.Get("document").Call("addEventListener", "keyup",
		func(event *js.Object) {
			keyCode := TranslateKeyCode(event.Get("keyCode").Int())
			a.Keys[keyCode] = false
		})
}

// requestFullscreen asks the browser to expand the canvas, trying the
// prefixed variants older engines expose.
func (a *App) requestFullscreen() {
	canvas := a.Canvas
	if canvas.Get("requestFullscreen") != nil && canvas.Get("requestFullscreen") != js.Undefined {
		canvas.Call("requestFullscreen")
	} else if canvas.Get("webkitRequestFullscreen") != nil && canvas.Get("webkitRequestFullscreen") != js.Undefined {
		canvas.Call("webkitRequestFullscreen")
	} else if canvas.Get("mozRequestFullScreen") != nil && canvas.Get("mozRequestFullScreen") != js.Undefined {
		canvas.Call("mozRequestFullScreen")
	}
}
