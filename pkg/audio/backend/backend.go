// ABOUTME: Audio backend interface definition
// ABOUTME: Common interface for interchangeable playback backends
package backend

import (
	"github.com/musiccreate/audiocore-go/pkg/audio"
)

// Backend represents a playback backend the engine can delegate to.
// At most one backend is active at a time; the engine owns it exclusively.
type Backend interface {
	// ID returns the stable backend identifier (e.g. "winmm")
	ID() string

	// Name returns a human-readable backend name
	Name() string

	// Available reports whether the backend can produce sound on this host
	Available() bool

	// Start prepares the backend for playback with the given configuration
	Start(cfg audio.Config) bool

	// Stop halts playback and releases the device
	Stop()

	// PlayFile begins fire-and-forget playback of the file at path
	PlayFile(path string) bool

	// StopPlayback stops the current playback without stopping the backend
	StopPlayback() bool
}
