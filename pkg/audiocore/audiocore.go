// ABOUTME: Boundary facade over the audio engine
// ABOUTME: Converts all internal failures to boolean and sentinel-string results
package audiocore

import (
	"github.com/musiccreate/audiocore-go/pkg/audio"
	"github.com/musiccreate/audiocore-go/pkg/audio/engine"
)

// Core is the caller-owned handle a binding layer drives. Every method maps
// an engine operation to a result that cannot fail across the boundary:
// booleans for operations, sentinel strings for introspection. Lifecycle is
// explicit: New, use, Close.
type Core struct {
	engine *engine.Engine
}

// New creates a core handle with the built-in backends
func New() *Core {
	return &Core{engine: engine.New()}
}

// NewWithEngine creates a core handle driving eng
func NewWithEngine(eng *engine.Engine) *Core {
	return &Core{engine: eng}
}

// Start configures and starts the engine. Zero sample rate or buffer size
// yields false, as does an unavailable or refusing backend.
func (c *Core) Start(sampleRate, bufferSize uint32) bool {
	cfg := audio.Config{
		SampleRate: int(sampleRate),
		BufferSize: int(bufferSize),
	}
	return c.engine.Start(cfg) == nil
}

// Stop halts the engine. Always succeeds, even when nothing was started.
func (c *Core) Stop() bool {
	c.engine.Stop()
	return true
}

// IsRunning reports the engine run state
func (c *Core) IsRunning() bool {
	return c.engine.IsRunning()
}

// PlayFile plays the file at path, starting the engine implicitly if
// needed. Empty paths are rejected.
func (c *Core) PlayFile(path string) bool {
	return c.engine.PlayFile(path)
}

// StopPlayback stops the current playback
func (c *Core) StopPlayback() bool {
	return c.engine.StopPlayback()
}

// BackendName returns the active or would-be backend name, "unavailable"
// when nothing resolves. Never fails.
func (c *Core) BackendName() string {
	return c.engine.BackendName()
}

// BackendID returns the active or would-be backend identifier, falling back
// to the selected identifier when nothing resolves. Never fails.
func (c *Core) BackendID() string {
	return c.engine.BackendID()
}

// SetBackend selects a backend identifier; false for unrecognized input
func (c *Core) SetBackend(id string) bool {
	return c.engine.SetBackend(id)
}

// IsBackendAvailable reports platform availability for an identifier
func (c *Core) IsBackendAvailable(id string) bool {
	return c.engine.IsBackendAvailable(id)
}

// Close stops the engine and releases the handle's resources
func (c *Core) Close() {
	c.engine.Stop()
}
