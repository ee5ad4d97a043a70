// ABOUTME: Backend registry and resolver
// ABOUTME: Maps normalized identifiers to backend factories and owns auto resolution
package backend

import (
	"runtime"
	"strings"
)

// Auto is the pseudo-identifier that triggers platform resolution. It is
// never a concrete backend.
const Auto = "auto"

// fallbackID is the backend auto resolution falls back to when the
// platform-preferred backend is unavailable.
const fallbackID = "juce"

// Factory constructs a backend instance
type Factory func() Backend

// Registry maps normalized backend identifiers to factories. It owns the
// "auto" resolution policy: prefer the platform default, fall back to the
// placeholder when the default is unavailable.
type Registry struct {
	factories map[string]Factory
	defaultID string
}

// NewRegistry creates a registry with the built-in backends registered
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		defaultID: fallbackID,
	}
	r.Register("winmm", NewWinMM)
	r.Register("juce", NewJUCE)
	if runtime.GOOS == "windows" {
		r.defaultID = "winmm"
	}
	return r
}

// Normalize lower-cases a backend identifier. Empty input normalizes to the
// empty string, which no registry ever recognizes.
func Normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Register adds or replaces the factory for an identifier
func (r *Registry) Register(id string, f Factory) {
	r.factories[Normalize(id)] = f
}

// SetDefault changes the backend preferred by auto resolution
func (r *Registry) SetDefault(id string) {
	r.defaultID = Normalize(id)
}

// DefaultID returns the backend auto resolution prefers on this platform
func (r *Registry) DefaultID() string {
	return r.defaultID
}

// Recognized reports whether a normalized identifier names "auto" or a
// registered backend
func (r *Registry) Recognized(id string) bool {
	if id == Auto {
		return true
	}
	_, ok := r.factories[id]
	return ok
}

// Create instantiates the backend for a normalized identifier. The second
// return value is false when the identifier is unknown.
func (r *Registry) Create(id string) (Backend, bool) {
	f, ok := r.factories[id]
	if !ok {
		return nil, false
	}
	b := f()
	if b == nil {
		return nil, false
	}
	return b, true
}

// Resolve produces the backend a selected identifier maps to. "auto" picks
// the platform default when available and otherwise falls back to the
// placeholder, which may itself be unavailable; the caller decides what an
// unavailable backend means. A concrete identifier resolves directly.
func (r *Registry) Resolve(selected string) (Backend, bool) {
	if selected != Auto {
		return r.Create(selected)
	}
	if preferred, ok := r.Create(r.defaultID); ok && preferred.Available() {
		return preferred, true
	}
	return r.Create(fallbackID)
}

// Available reports whether the backend an identifier maps to can produce
// sound on this host. "auto" is checked against the platform default. The
// candidate is constructed purely for the check and discarded.
func (r *Registry) Available(id string) bool {
	normalized := Normalize(id)
	if normalized == "" {
		return false
	}
	if normalized == Auto {
		normalized = r.defaultID
	}
	candidate, ok := r.Create(normalized)
	return ok && candidate.Available()
}
