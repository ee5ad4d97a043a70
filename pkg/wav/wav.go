// ABOUTME: WAV file loading for waveform analysis and playback
// ABOUTME: Parses RIFF/WAVE PCM data into channel-averaged mono float samples
package wav

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/musiccreate/audiocore-go/pkg/audio"
)

// Waveform is a decoded WAV file reduced to mono float samples in [-1, 1]
type Waveform struct {
	SampleRate int
	Channels   int
	FrameCount int
	Samples    []float64
}

// Duration returns the playback length of the waveform
func (w *Waveform) Duration() time.Duration {
	if w.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(w.FrameCount) / float64(w.SampleRate) * float64(time.Second))
}

// Load reads a PCM WAV file and averages its channels down to mono
func Load(path string) (*Waveform, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wav: read %s: %w", path, err)
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("wav: %s is not a RIFF/WAVE file", path)
	}

	var (
		channels    int
		sampleRate  int
		sampleWidth int
		raw         []byte
		haveFormat  bool
	)

	// Walk the chunk list; only "fmt " and "data" matter here
	offset := 12
	for offset+8 <= len(data) {
		chunkID := string(data[offset : offset+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + 8
		if body+chunkSize > len(data) {
			chunkSize = len(data) - body
		}
		switch chunkID {
		case "fmt ":
			if chunkSize < 16 {
				return nil, fmt.Errorf("wav: truncated fmt chunk in %s", path)
			}
			audioFormat := binary.LittleEndian.Uint16(data[body : body+2])
			if audioFormat != 1 {
				return nil, fmt.Errorf("wav: unsupported audio format %d (only PCM)", audioFormat)
			}
			channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			sampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			bitsPerSample := int(binary.LittleEndian.Uint16(data[body+14 : body+16]))
			sampleWidth = bitsPerSample / 8
			haveFormat = true
		case "data":
			raw = data[body : body+chunkSize]
		}
		// Chunks are word-aligned
		offset = body + chunkSize + chunkSize%2
	}

	if !haveFormat {
		return nil, fmt.Errorf("wav: missing fmt chunk in %s", path)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("wav: invalid channel count %d", channels)
	}
	if sampleWidth < 1 || sampleWidth > 4 {
		return nil, fmt.Errorf("wav: unsupported sample width: %d", sampleWidth)
	}

	samples := decodeMonoFloatSamples(raw, channels, sampleWidth)
	return &Waveform{
		SampleRate: sampleRate,
		Channels:   channels,
		FrameCount: len(samples),
		Samples:    samples,
	}, nil
}

// decodeMonoFloatSamples averages interleaved channels into mono floats
func decodeMonoFloatSamples(raw []byte, channels, sampleWidth int) []float64 {
	frameSize := channels * sampleWidth
	if frameSize <= 0 {
		return nil
	}
	samples := make([]float64, 0, len(raw)/frameSize)
	for frameStart := 0; frameStart+frameSize <= len(raw); frameStart += frameSize {
		total := 0.0
		for ch := 0; ch < channels; ch++ {
			total += decodeSample(raw[frameStart+ch*sampleWidth:], sampleWidth)
		}
		samples = append(samples, total/float64(channels))
	}
	return samples
}

// decodeSample converts one little-endian PCM sample to a float in [-1, 1]
func decodeSample(b []byte, sampleWidth int) float64 {
	switch sampleWidth {
	case 1:
		// 8-bit WAV is unsigned
		return (float64(b[0]) - 128.0) / 128.0
	case 2:
		v := int16(binary.LittleEndian.Uint16(b))
		return float64(v) / 32768.0
	case 3:
		v := audio.SampleFrom24Bit([3]byte{b[0], b[1], b[2]})
		return float64(v) / 8388608.0
	default:
		v := int32(binary.LittleEndian.Uint32(b))
		return float64(v) / 2147483648.0
	}
}
