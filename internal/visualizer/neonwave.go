package visualizer

import (
	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/paint"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
)

const (
	neonPadding   = 16.0
	neonAmpFrac   = 0.38 // wave amplitude as fraction of canvas height
	neonCoreWidth = 2.0
)

// NeonWave renders the spectrum as a glowing polyline mirrored about the
// canvas midline. Glow is built from layered strokes, widest and faintest
// first; the number of passes follows the quality tier. One rented path
// is reset between the upper and mirrored waves rather than re-rented.
type NeonWave struct {
	base
}

// NewNeonWave creates the neon wave renderer.
func NewNeonWave(opts Options) *NeonWave {
	return &NeonWave{base: newBase(string(StyleNeonWave), opts)}
}

// Reset implements ports.Renderer.
func (v *NeonWave) Reset() {
	v.resetBase()
}

// Render implements ports.Renderer.
func (v *NeonWave) Render(cv ports.Canvas, frame domain.Frame) {
	defer v.recoverFrame()
	if !v.frameReady(cv, frame) {
		return
	}
	v.resolveConfig()

	v.sampler.Process(frame.Magnitudes, v.cfg.Smoothing)
	v.advanceClock(frame.Delta)

	v.draw(cv)
}

func (v *NeonWave) draw(cv ports.Canvas) {
	w, h := cv.Size()
	values := v.sampler.Values()

	effW := float64(w) - 2*neonPadding
	if effW <= 0 || len(values) < 2 {
		return
	}
	midY := float64(h) / 2
	amp := float64(h) * neonAmpFrac
	stepX := effW / float64(len(values)-1)

	_ = v.pool.WithPath(func(path *paint.Path) error {
		return v.pool.WithPaint(func(p *paint.Paint) error {
			// Upper wave
			v.buildWave(path, values, midY, -amp, stepX)
			v.strokeGlow(cv, path, p)

			// Mirrored wave reuses the same path after a reset.
			path.Reset()
			v.buildWave(path, values, midY, amp, stepX)
			v.strokeGlow(cv, path, p)
			return nil
		})
	})
}

func (v *NeonWave) buildWave(path *paint.Path, values []float64, midY, amp, stepX float64) {
	for i, val := range values {
		x := neonPadding + float64(i)*stepX
		y := midY + val*amp
		if i == 0 {
			path.MoveTo(x, y)
			continue
		}
		path.LineTo(x, y)
	}
}

// strokeGlow strokes the path in widening, fading passes and finishes
// with a bright core line.
func (v *NeonWave) strokeGlow(cv ports.Canvas, path *paint.Path, p *paint.Paint) {
	p.Style = paint.Stroke
	p.BlurRadius = 0

	passes := v.cfg.GlowPasses
	if !v.cfg.UseGlow {
		passes = 0
	}
	for pass := passes; pass >= 1; pass-- {
		p.StrokeWidth = neonCoreWidth + float64(pass)*v.cfg.GlowRadius
		p.Color = withAlpha(v.baseColor, 0.12*v.cfg.AlphaFactor)
		cv.StrokePath(path, p)
	}

	p.StrokeWidth = neonCoreWidth
	p.Color = withAlpha(shade(v.baseColor, 0.55), v.cfg.AlphaFactor)
	cv.StrokePath(path, p)
}

// Verify interface implementation at compile time.
var _ ports.Renderer = (*NeonWave)(nil)
