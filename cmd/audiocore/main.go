// ABOUTME: Entry point for the audiocore CLI
// ABOUTME: Drives the engine facade for playback, inspection and self-tests
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/musiccreate/audiocore-go/internal/preview"
	"github.com/musiccreate/audiocore-go/internal/version"
	"github.com/musiccreate/audiocore-go/pkg/audiocore"
	"github.com/musiccreate/audiocore-go/pkg/wav"
)

var (
	backendID   = flag.String("backend", "auto", "Backend to use: auto, winmm or juce")
	sampleRate  = flag.Uint("sample-rate", 48000, "Engine sample rate in Hz")
	bufferSize  = flag.Uint("buffer-size", 256, "Engine buffer size in frames")
	playPath    = flag.String("play", "", "Play a file through the engine backend")
	wait        = flag.Duration("wait", 3*time.Second, "How long to keep the engine running after -play")
	previewPath = flag.String("preview", "", "Audition a WAV/MP3 file through the default output device")
	infoPath    = flag.String("info", "", "Print waveform info for a WAV file")
	toneFor     = flag.Duration("tone", 0, "Play a 440Hz test tone for the given duration")
	listOnly    = flag.Bool("list", false, "List backends and their availability")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s (%s)\n", version.Product, version.Version, version.Manufacturer)
		return
	}

	core := audiocore.New()
	defer core.Close()

	if !core.SetBackend(*backendID) {
		log.Fatalf("Unrecognized backend %q (want auto, winmm or juce)", *backendID)
	}

	switch {
	case *listOnly:
		listBackends(core)
	case *infoPath != "":
		printInfo(*infoPath)
	case *toneFor > 0:
		if err := preview.PlayTone(440, *toneFor); err != nil {
			log.Fatalf("Tone self-test failed: %v", err)
		}
	case *previewPath != "":
		if err := preview.Play(*previewPath); err != nil {
			log.Fatalf("Preview failed: %v", err)
		}
	case *playPath != "":
		playThroughEngine(core, *playPath)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// listBackends prints each identifier with its availability and the backend
// the current selection would resolve to
func listBackends(core *audiocore.Core) {
	for _, id := range []string{"auto", "winmm", "juce"} {
		fmt.Printf("%-6s available=%v\n", id, core.IsBackendAvailable(id))
	}
	fmt.Printf("selected: %s (%s)\n", core.BackendID(), core.BackendName())
}

// printInfo loads a WAV file and reports its waveform metadata
func printInfo(path string) {
	repo := wav.NewRepository()
	track, err := repo.Load("", path)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", path, err)
	}
	fmt.Printf("track:       %s\n", track.ID)
	fmt.Printf("path:        %s\n", track.Path)
	fmt.Printf("sample rate: %d Hz\n", track.SampleRate)
	fmt.Printf("channels:    %d\n", track.Channels)
	fmt.Printf("duration:    %s\n", track.Duration)
	fmt.Printf("samples:     %d\n", len(track.Samples))
}

// playThroughEngine starts the engine, delegates playback to the selected
// backend and stops again after the wait period
func playThroughEngine(core *audiocore.Core, path string) {
	if !core.Start(uint32(*sampleRate), uint32(*bufferSize)) {
		log.Fatalf("Engine start failed (backend %s, %dHz/%d frames)",
			core.BackendName(), *sampleRate, *bufferSize)
	}
	log.Printf("Engine running with backend %s (%s)", core.BackendID(), core.BackendName())

	if !core.PlayFile(path) {
		core.Stop()
		log.Fatalf("Playback of %s was rejected by backend %s", path, core.BackendID())
	}

	// Playback is fire-and-forget; keep the process alive while it plays
	time.Sleep(*wait)

	core.StopPlayback()
	core.Stop()
	log.Printf("Engine stopped")
}
