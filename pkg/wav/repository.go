// ABOUTME: Track to waveform mapping for analysis and playback
// ABOUTME: Caches loaded waveforms keyed by track identifier
package wav

import (
	"time"

	"github.com/google/uuid"
)

// Track is a loaded waveform bound to a track identifier
type Track struct {
	ID         string
	Path       string
	SampleRate int
	Channels   int
	Duration   time.Duration
	Samples    []float64
}

// Repository caches loaded waveforms by track identifier. Like the engine
// it is single-owner; callers sharing it must serialize access.
type Repository struct {
	items map[string]*Track
}

// NewRepository creates an empty waveform repository
func NewRepository() *Repository {
	return &Repository{items: make(map[string]*Track)}
}

// Load reads the WAV file at path and stores it under trackID. An empty
// trackID gets a generated identifier. Reloading an identifier replaces the
// previous entry.
func (r *Repository) Load(trackID, path string) (*Track, error) {
	waveform, err := Load(path)
	if err != nil {
		return nil, err
	}
	if trackID == "" {
		trackID = uuid.NewString()
	}
	track := &Track{
		ID:         trackID,
		Path:       path,
		SampleRate: waveform.SampleRate,
		Channels:   waveform.Channels,
		Duration:   waveform.Duration(),
		Samples:    waveform.Samples,
	}
	r.items[trackID] = track
	return track, nil
}

// Get returns the track stored under an identifier
func (r *Repository) Get(trackID string) (*Track, bool) {
	track, ok := r.items[trackID]
	return track, ok
}

// Samples returns the mono samples for a track, or nil when unknown
func (r *Repository) Samples(trackID string) []float64 {
	track, ok := r.items[trackID]
	if !ok {
		return nil
	}
	return track.Samples
}

// Len returns the number of cached tracks
func (r *Repository) Len() int {
	return len(r.items)
}
