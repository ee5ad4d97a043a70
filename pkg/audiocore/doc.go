// ABOUTME: High-level audiocore library API
// ABOUTME: Boundary-safe handle over the engine for binding layers
// Package audiocore provides the boundary surface of the audio engine.
//
// A Core handle wraps the engine controller so that no operation can fail
// across the boundary: operations return booleans and introspection returns
// sentinel strings. This is the surface a CLI or foreign-language binding
// should drive.
//
// Example:
//
//	core := audiocore.New()
//	defer core.Close()
//
//	core.SetBackend("auto")
//	if core.Start(48000, 256) {
//	    core.PlayFile("take1.wav")
//	}
//
// For error details and direct control, use the engine package instead.
package audiocore
