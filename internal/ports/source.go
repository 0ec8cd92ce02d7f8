package ports

import "github.com/tejashwikalptaru/soundscape/internal/domain"

// SpectrumSource produces per-frame magnitude arrays. The audio-to-spectrum
// transformation itself is an external collaborator; sources only deliver
// its output to the render loop.
type SpectrumSource interface {
	// Start begins producing frames. It must be called before Frames.
	Start() error

	// Frames returns the channel frames are delivered on. The channel is
	// closed when the source stops.
	Frames() <-chan domain.Frame

	// Close stops the source and releases its resources. Safe to call
	// more than once.
	Close() error
}
