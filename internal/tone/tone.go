// ABOUTME: Sine test tone generator
// ABOUTME: Produces stereo 16-bit PCM for output device verification
package tone

import (
	"encoding/binary"
	"math"

	"github.com/musiccreate/audiocore-go/pkg/audio"
)

// Generator produces an endless sine tone as interleaved stereo 16-bit
// little-endian PCM. It implements io.Reader so it can feed a player
// directly; bound it with io.LimitReader for a finite beep.
type Generator struct {
	frequency   float64
	sampleRate  int
	volume      float64
	sampleIndex uint64
}

// New creates a tone generator at the given frequency and sample rate
func New(frequency float64, sampleRate int) *Generator {
	return &Generator{
		frequency:  frequency,
		sampleRate: sampleRate,
		volume:     0.5,
	}
}

// Read fills p with as many whole stereo frames as fit. Never returns an
// error; the stream is endless.
func (g *Generator) Read(p []byte) (int, error) {
	const frameBytes = 4 // 2 channels x int16
	frames := len(p) / frameBytes
	for i := 0; i < frames; i++ {
		t := float64(g.sampleIndex+uint64(i)) / float64(g.sampleRate)
		value := audio.SampleToInt16(math.Sin(2*math.Pi*g.frequency*t) * g.volume)
		binary.LittleEndian.PutUint16(p[i*frameBytes:], uint16(value))
		binary.LittleEndian.PutUint16(p[i*frameBytes+2:], uint16(value))
	}
	g.sampleIndex += uint64(frames)
	return frames * frameBytes, nil
}

// SampleRate returns the generator's sample rate
func (g *Generator) SampleRate() int { return g.sampleRate }
