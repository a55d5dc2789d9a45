//go:build js
// +build js

package viz

import (
	"github.com/gopherjs/gopherjs/js"
)

// EnableDebug gates console logging; toggled through the page's JS API.
var EnableDebug = false

// Debug logs a message to the browser console if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		js.Global.Get("console").Call("log", args...)
	}
}

// DebugWarn logs a warning to the browser console if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug {
		js.Global.Get("console").Call("warn", args...)
	}
}

// DebugError logs an error to the browser console regardless of the debug
// flag; errors should not be silently dropped.
func DebugError(args ...interface{}) {
	js.Global.Get("console").Call("error", args...)
}
