// ABOUTME: Shared audio type definitions
// ABOUTME: Defines engine configuration and PCM sample helpers
package audio

const (
	// DefaultSampleRate is the engine's default output rate in Hz
	DefaultSampleRate = 48000

	// DefaultBufferSize is the engine's default buffer size in frames
	DefaultBufferSize = 256
)

// Config describes the audio device configuration the engine runs with.
// SampleRate and BufferSize must be positive; DeviceID may be empty to
// select the system default device.
type Config struct {
	SampleRate int
	BufferSize int
	DeviceID   string
}

// DefaultConfig returns the standard engine configuration
func DefaultConfig() Config {
	return Config{
		SampleRate: DefaultSampleRate,
		BufferSize: DefaultBufferSize,
	}
}

// Valid reports whether the configuration can be used to start the engine
func (c Config) Valid() bool {
	return c.SampleRate > 0 && c.BufferSize > 0
}

// SampleToInt16 converts a float sample in [-1, 1] to 16-bit PCM
func SampleToInt16(sample float64) int16 {
	if sample > 1.0 {
		sample = 1.0
	} else if sample < -1.0 {
		sample = -1.0
	}
	return int16(sample * 32767.0)
}

// SampleFrom24Bit converts 24-bit packed bytes to int32 (little-endian)
func SampleFrom24Bit(b [3]byte) int32 {
	val := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	// Sign extend from 24-bit to 32-bit
	if val&0x800000 != 0 {
		val |= ^0xFFFFFF
	}
	return val
}
