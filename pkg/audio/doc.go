// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines the engine Config and sample conversion functions
// Package audio provides fundamental audio types and utilities.
//
// This package defines the types shared across the audiocore library:
//   - Config: Engine device configuration (sample rate, buffer size, device)
//   - Sample conversion helpers between float, 16-bit and 24-bit PCM
//
// Example:
//
//	cfg := audio.Config{
//	    SampleRate: 48000,
//	    BufferSize: 256,
//	}
//	if !cfg.Valid() {
//	    // reject before touching a backend
//	}
package audio
