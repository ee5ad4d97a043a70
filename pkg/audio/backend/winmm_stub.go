//go:build !windows

// ABOUTME: WinMM backend stub for non-Windows platforms
// ABOUTME: Keeps the identifier registered while reporting unavailable
package backend

import (
	"github.com/musiccreate/audiocore-go/pkg/audio"
)

// WinMM targets the Windows multimedia API; on other platforms it exists
// only so the identifier resolves, and reports unavailable.
type WinMM struct {
	running bool
}

// NewWinMM creates the WinMM backend (stub)
func NewWinMM() Backend {
	return &WinMM{}
}

// ID returns the backend identifier
func (w *WinMM) ID() string { return "winmm" }

// Name returns the backend name
func (w *WinMM) Name() string { return "go-winmm" }

// Available always reports false off Windows
func (w *WinMM) Available() bool { return false }

// Start always fails off Windows
func (w *WinMM) Start(cfg audio.Config) bool { return false }

// Stop is a no-op
func (w *WinMM) Stop() {
	w.running = false
}

// PlayFile always fails off Windows
func (w *WinMM) PlayFile(path string) bool { return false }

// StopPlayback always fails off Windows
func (w *WinMM) StopPlayback() bool { return false }
