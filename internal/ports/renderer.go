package ports

import (
	"image/color"

	"github.com/tejashwikalptaru/soundscape/internal/domain"
)

// Renderer is one visual style of the spectrum pipeline. A renderer owns
// all of its cross-frame state (smoothed spectrum, entity pools, cached
// tables); the host drives it with one Render call per frame.
//
// Render processes the frame start to finish: sample the spectrum, advance
// the simulation by frame.Delta, build geometry and issue draw calls
// against cv. Renderers recover from drawing-layer panics internally; a
// failed frame renders nothing and the renderer stays usable.
type Renderer interface {
	// Name returns the human-readable style name.
	Name() string

	// Render draws one frame. An empty spectrum or degenerate canvas size
	// skips the frame's work.
	Render(cv Canvas, frame domain.Frame)

	// SetQuality swaps the active quality configuration as a whole unit.
	// May resize dependent buffers (entity pools, cached tables).
	SetQuality(tier domain.QualityTier)

	// SetLayout applies host-decided bar geometry.
	SetLayout(params domain.RenderParams)

	// SetBaseColor themes the effect with the caller-selected accent color.
	SetBaseColor(c color.Color)

	// SetOverlay toggles the compact overlay mode.
	SetOverlay(active bool)

	// Reset clears all cross-frame state.
	Reset()
}
