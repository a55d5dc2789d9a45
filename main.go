//go:build js
// +build js

package main

import (
	"github.com/gopherjs/gopherjs/js"

	"github.com/TheZoc/squirrelnoise/viz"
)

func main() {
	// Get the canvas element
	doc := js.Global.Get("document")
	canvas := doc.Call("getElementById", "c")
	if canvas == nil || canvas == js.Undefined {
		panic("canvas element not found")
	}
	// Set canvas dimensions
	canvas.Set("width", viz.WIDTH)
	canvas.Set("height", viz.HEIGHT)

	// Get 2D context
	ctx := canvas.Call("getContext", "2d")

	// Create the demo application
	app := viz.NewApp(canvas, ctx)
	app.Session = viz.NewSession(app)

	// Expose the demo API to JavaScript
	js.Global.Set("NoiseDemo", map[string]interface{}{
		"join": func(roomID string) {
			app.Session.Join(roomID)
		},
		"leave": func() {
			app.Session.Leave()
		},
		"isConnected": func() bool {
			return app.Session.Connected()
		},
		"setSeed": func(seed int) {
			app.Field.Seed = uint32(seed)
		},
		"setDebug": func(enabled bool) {
			viz.EnableDebug = enabled
		},
	})

	// Close the session when the browser is closed
	js.Global.Call("addEventListener", "beforeunload", func() {
		app.Session.Leave()
	})

	app.Start()

	select {}
}
