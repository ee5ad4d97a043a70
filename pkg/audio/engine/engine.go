// ABOUTME: Audio engine controller
// ABOUTME: Owns run state and the active backend, delegates playback to it
package engine

import (
	"errors"

	"github.com/musiccreate/audiocore-go/pkg/audio"
	"github.com/musiccreate/audiocore-go/pkg/audio/backend"
)

var (
	// ErrInvalidConfig is returned when sample rate or buffer size is zero
	ErrInvalidConfig = errors.New("engine: sample rate and buffer size must be positive")

	// ErrBackendUnavailable is returned when no usable backend resolves
	ErrBackendUnavailable = errors.New("engine: selected backend is unavailable")

	// ErrStartFailed is returned when the resolved backend refuses to start
	ErrStartFailed = errors.New("engine: backend failed to start")
)

// Cached identity sentinels reported while no backend has resolved
const (
	nameUnavailable   = "unavailable"
	nameUninitialized = "uninitialized"
)

// Engine holds the run state and the single active backend. It is driven by
// one caller at a time; there is no internal locking, and callers sharing an
// Engine across goroutines must serialize access themselves.
type Engine struct {
	registry   *backend.Registry
	running    bool
	config     audio.Config
	selectedID string
	backend    backend.Backend
	nameCache  string
	idCache    string
}

// New creates an engine with the built-in backend registry
func New() *Engine {
	return NewWithRegistry(backend.NewRegistry())
}

// NewWithRegistry creates an engine resolving backends through reg
func NewWithRegistry(reg *backend.Registry) *Engine {
	return &Engine{
		registry:   reg,
		selectedID: backend.Auto,
		nameCache:  nameUnavailable,
		idCache:    backend.Auto,
	}
}

// Start validates and stores the configuration, resolves a backend if none
// is active, and starts it. On success the engine is running.
func (e *Engine) Start(cfg audio.Config) error {
	if !cfg.Valid() {
		return ErrInvalidConfig
	}
	e.config = cfg
	if !e.ensureBackend() {
		return ErrBackendUnavailable
	}
	if !e.backend.Start(cfg) {
		return ErrStartFailed
	}
	e.running = true
	return nil
}

// Stop halts the active backend, if any, and clears the running flag. It is
// safe to call repeatedly and before any Start.
func (e *Engine) Stop() {
	if e.backend != nil {
		e.backend.Stop()
	}
	e.running = false
}

// IsRunning reports whether the engine is running
func (e *Engine) IsRunning() bool {
	return e.running
}

// PlayFile delegates fire-and-forget playback of the file at path. An empty
// path is rejected. If the engine is not running it attempts an implicit
// Start with the last stored configuration, or the default configuration if
// none was ever set; failures during that implicit start are absorbed into
// a false return.
func (e *Engine) PlayFile(path string) bool {
	if path == "" {
		return false
	}
	if !e.running {
		cfg := e.config
		if cfg.SampleRate == 0 {
			cfg = audio.DefaultConfig()
		}
		if err := e.Start(cfg); err != nil {
			return false
		}
	}
	if !e.ensureBackend() {
		return false
	}
	return e.backend.PlayFile(path)
}

// StopPlayback stops the current playback on the active backend, resolving
// one if necessary. Returns false when no usable backend resolves.
func (e *Engine) StopPlayback() bool {
	if !e.ensureBackend() {
		return false
	}
	return e.backend.StopPlayback()
}

// SetBackend selects the backend identifier used for future resolution.
// Unrecognized identifiers are rejected without state change. A running
// engine is stopped first, and any active backend is discarded so the next
// operation re-resolves.
func (e *Engine) SetBackend(id string) bool {
	normalized := backend.Normalize(id)
	if !e.registry.Recognized(normalized) {
		return false
	}
	if e.running {
		e.Stop()
	}
	e.selectedID = normalized
	e.backend = nil
	e.idCache = normalized
	e.nameCache = nameUninitialized
	return true
}

// IsBackendAvailable reports whether the identifier maps to a backend that
// can produce sound on this host. Pure query; the active backend is not
// touched.
func (e *Engine) IsBackendAvailable(id string) bool {
	return e.registry.Available(id)
}

// BackendName returns the active backend's name, or the name of the backend
// that would be selected by the current identifier. Never fails; when
// nothing resolves it reports "unavailable".
func (e *Engine) BackendName() string {
	if e.backend != nil {
		e.nameCache = e.backend.Name()
		e.idCache = e.backend.ID()
		return e.nameCache
	}
	if resolved, ok := e.registry.Resolve(e.selectedID); ok {
		e.nameCache = resolved.Name()
		e.idCache = resolved.ID()
	} else {
		e.nameCache = nameUnavailable
		e.idCache = e.selectedID
	}
	return e.nameCache
}

// BackendID returns the active backend's identifier, or the identifier the
// current selection would resolve to. Never fails; when nothing resolves it
// reports the selected identifier itself.
func (e *Engine) BackendID() string {
	if e.backend != nil {
		e.idCache = e.backend.ID()
		return e.idCache
	}
	if resolved, ok := e.registry.Resolve(e.selectedID); ok {
		e.idCache = resolved.ID()
		e.nameCache = resolved.Name()
	} else {
		e.idCache = e.selectedID
	}
	return e.idCache
}

// ensureBackend resolves and caches a backend if none is active, refreshes
// the identity caches, and reports whether the backend is usable. Resolution
// is repeated on every call while no backend is cached; availability may
// change between calls (e.g. a device appearing), so the decision is not
// memoized.
func (e *Engine) ensureBackend() bool {
	if e.backend != nil {
		e.nameCache = e.backend.Name()
		e.idCache = e.backend.ID()
		return e.backend.Available()
	}
	resolved, ok := e.registry.Resolve(e.selectedID)
	if !ok {
		e.nameCache = nameUnavailable
		e.idCache = e.selectedID
		return false
	}
	e.backend = resolved
	e.nameCache = resolved.Name()
	e.idCache = resolved.ID()
	return resolved.Available()
}
