// ABOUTME: Audition playback for WAV and MP3 files
// ABOUTME: Plays decoded audio through the default output device via oto
package preview

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/go-mp3"

	"github.com/musiccreate/audiocore-go/internal/tone"
	"github.com/musiccreate/audiocore-go/pkg/audio"
	"github.com/musiccreate/audiocore-go/pkg/wav"
)

// Play decodes the file at path and plays it through the default output
// device, blocking until playback finishes. This is audition playback for
// the CLI; it bypasses the engine's backend selection so previews work on
// platforms where no native backend is available.
//
// oto allows one context per process, so only one preview (or tone) can be
// played per process run.
func Play(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		return playMP3(path)
	case ".wav":
		return playWAV(path)
	default:
		return fmt.Errorf("preview: unsupported file type %q", filepath.Ext(path))
	}
}

// PlayTone plays a sine test tone for the given duration
func PlayTone(frequency float64, duration time.Duration) error {
	generator := tone.New(frequency, audio.DefaultSampleRate)
	// 2 channels x int16
	limit := int64(duration.Seconds()*float64(audio.DefaultSampleRate)) * 4
	log.Printf("Playing %.0fHz test tone for %s", frequency, duration)
	return playStream(io.LimitReader(generator, limit), audio.DefaultSampleRate)
}

func playMP3(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("preview: open %s: %w", path, err)
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return fmt.Errorf("preview: decode %s: %w", path, err)
	}
	log.Printf("Previewing %s (mp3, %dHz)", path, decoder.SampleRate())
	return playStream(decoder, decoder.SampleRate())
}

func playWAV(path string) error {
	waveform, err := wav.Load(path)
	if err != nil {
		return err
	}
	// Duplicate the mono samples to both channels
	buf := make([]byte, len(waveform.Samples)*4)
	for i, sample := range waveform.Samples {
		value := uint16(audio.SampleToInt16(sample))
		binary.LittleEndian.PutUint16(buf[i*4:], value)
		binary.LittleEndian.PutUint16(buf[i*4+2:], value)
	}
	log.Printf("Previewing %s (wav, %dHz, %s)", path, waveform.SampleRate, waveform.Duration())
	return playStream(bytes.NewReader(buf), waveform.SampleRate)
}

// playStream plays interleaved stereo 16-bit PCM until the reader drains
func playStream(r io.Reader, sampleRate int) error {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("preview: create output context: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(r)
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return player.Close()
}
