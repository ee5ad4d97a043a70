//go:build windows

// ABOUTME: WinMM backend for Windows
// ABOUTME: Plays files through the waveform multimedia API via PlaySoundW
package backend

import (
	"log"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/musiccreate/audiocore-go/pkg/audio"
)

var (
	modwinmm       = windows.NewLazySystemDLL("winmm.dll")
	procPlaySoundW = modwinmm.NewProc("PlaySoundW")
)

// PlaySoundW fdwSound flags
const (
	sndAsync     = 0x0001
	sndNoDefault = 0x0002
	sndFilename  = 0x00020000
)

// WinMM plays audio files through the Windows multimedia API. Playback is
// asynchronous: PlayFile hands the file to the OS and returns immediately.
type WinMM struct {
	running bool
}

// NewWinMM creates the WinMM backend
func NewWinMM() Backend {
	return &WinMM{}
}

// ID returns the backend identifier
func (w *WinMM) ID() string { return "winmm" }

// Name returns the backend name
func (w *WinMM) Name() string { return "go-winmm" }

// Available reports whether winmm.dll can be loaded
func (w *WinMM) Available() bool {
	return modwinmm.Load() == nil
}

// Start validates the configuration and marks the backend running
func (w *WinMM) Start(cfg audio.Config) bool {
	if !w.Available() {
		return false
	}
	if !cfg.Valid() {
		return false
	}
	w.running = true
	return true
}

// Stop halts playback and marks the backend stopped
func (w *WinMM) Stop() {
	w.StopPlayback()
	w.running = false
}

// PlayFile starts asynchronous playback of the file at path
func (w *WinMM) PlayFile(path string) bool {
	if !w.Available() || path == "" {
		return false
	}
	if !w.running {
		if !w.Start(audio.DefaultConfig()) {
			return false
		}
	}
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		log.Printf("winmm: invalid path %q: %v", path, err)
		return false
	}
	ret, _, _ := procPlaySoundW.Call(
		uintptr(unsafe.Pointer(p)),
		0,
		sndFilename|sndAsync|sndNoDefault,
	)
	return ret != 0
}

// StopPlayback cancels any in-flight playback
func (w *WinMM) StopPlayback() bool {
	ret, _, _ := procPlaySoundW.Call(0, 0, 0)
	return ret != 0
}
