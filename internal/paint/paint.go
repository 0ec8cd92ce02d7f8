// Package paint provides the mutable scratch objects renderers configure
// before issuing draw calls: stroke/fill paints and path builders. The
// objects are rented from a Pool and returned after the frame, so the hot
// render path does not allocate.
package paint

import "image/color"

// Style selects how a paint is applied to geometry.
type Style int

// Available paint styles.
const (
	Fill Style = iota
	Stroke
)

// Stop is a single color stop of a linear gradient, positioned 0..1.
type Stop struct {
	Pos   float64
	Color color.RGBA
}

// Paint is a mutable scratch object describing how geometry is drawn.
// A rented Paint carries arbitrary prior state; callers must set every
// field they rely on (or call Reset) before use.
type Paint struct {
	Color       color.RGBA
	Style       Style
	StrokeWidth float64

	// BlurRadius enables a soft glow around the geometry when positive.
	BlurRadius float64

	// Gradient, when non-empty, overrides Color with a vertical gradient.
	Gradient []Stop
}

// Reset restores the paint to an opaque white fill with no effects.
func (p *Paint) Reset() {
	p.Color = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	p.Style = Fill
	p.StrokeWidth = 1
	p.BlurRadius = 0
	p.Gradient = p.Gradient[:0]
}

// SetGradient replaces the gradient stops, reusing the backing array.
func (p *Paint) SetGradient(stops ...Stop) {
	p.Gradient = append(p.Gradient[:0], stops...)
}
