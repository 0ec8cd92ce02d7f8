// Package domain contains the core models shared by all renderers.
// It has no dependency on any drawing backend or audio source.
package domain

// Frame is one render tick worth of input. Magnitudes carry the raw
// spectrum for the frame; their length and scaling are owned by the
// upstream analysis collaborator. Delta is the elapsed time in seconds
// since the previous frame, supplied by the host animation clock.
type Frame struct {
	// Magnitudes is the current frame's spectrum. May be empty, in which
	// case renderers skip the frame's work.
	Magnitudes []float32

	// Delta is the elapsed time since the last frame in seconds.
	Delta float64
}

// RenderParams describes the bar layout decided by the host. Renderers
// treat these as read-only inputs; a change triggers a layout rebuild.
type RenderParams struct {
	// BarWidth is the width of a single bar in pixels.
	BarWidth float64

	// BarSpacing is the gap between adjacent bars in pixels.
	BarSpacing float64

	// BarCount is the number of buckets the spectrum is resampled into.
	BarCount int

	// StartOffset shifts the first bar from the left edge in pixels.
	StartOffset float64
}

// DefaultRenderParams returns a layout suitable for a medium-sized window.
func DefaultRenderParams() RenderParams {
	return RenderParams{
		BarWidth:    8,
		BarSpacing:  2,
		BarCount:    64,
		StartOffset: 0,
	}
}
