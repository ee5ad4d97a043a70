// ABOUTME: JUCE backend placeholder
// ABOUTME: Reserved identifier for a richer engine, currently never available
package backend

import (
	"github.com/musiccreate/audiocore-go/pkg/audio"
)

// JUCE is a placeholder for a fuller audio engine integration. It is
// registered so the identifier is reserved, but it reports unavailable and
// refuses all playback operations.
type JUCE struct{}

// NewJUCE creates the placeholder backend
func NewJUCE() Backend {
	return &JUCE{}
}

// ID returns the backend identifier
func (j *JUCE) ID() string { return "juce" }

// Name returns the backend name
func (j *JUCE) Name() string { return "go-juce-placeholder" }

// Available always reports false for the placeholder
func (j *JUCE) Available() bool { return false }

// Start always fails for the placeholder
func (j *JUCE) Start(cfg audio.Config) bool { return false }

// Stop is a no-op
func (j *JUCE) Stop() {}

// PlayFile always fails for the placeholder
func (j *JUCE) PlayFile(path string) bool { return false }

// StopPlayback always fails for the placeholder
func (j *JUCE) StopPlayback() bool { return false }
