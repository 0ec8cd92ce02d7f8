package visualizer

import (
	"math"

	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/paint"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
	"github.com/tejashwikalptaru/soundscape/internal/spectrum"
)

const (
	circularInnerRatio  = 0.15 // inner circle ratio of min dimension
	circularMaxBarRatio = 0.35 // maximum bar length ratio of min dimension
	circularCapFall     = 0.8  // fraction of max bar length per second
	circularPulseBlend  = 0.3
)

// Circular renders spectrum bars radiating from a bass-pulsing center.
type Circular struct {
	base

	caps    []float64 // cap distance per bar, in pixels from the inner ring
	bassAvg float64

	// Cached trigonometric table, rebuilt only when the bar count changes.
	cos, sin []float64
}

// NewCircular creates the circular bars renderer.
func NewCircular(opts Options) *Circular {
	v := &Circular{base: newBase(string(StyleCircular), opts)}
	v.rebuildTables()
	return v
}

// rebuildTables recomputes the per-bar angle table. Bars start at the top
// and proceed clockwise.
func (v *Circular) rebuildTables() {
	v.caps = make([]float64, v.barCount)
	v.cos = make([]float64, v.barCount)
	v.sin = make([]float64, v.barCount)
	step := 2 * math.Pi / float64(v.barCount)
	for i := 0; i < v.barCount; i++ {
		angle := float64(i)*step - math.Pi/2
		v.cos[i] = math.Cos(angle)
		v.sin[i] = math.Sin(angle)
	}
}

// Reset implements ports.Renderer.
func (v *Circular) Reset() {
	v.resetBase()
	v.bassAvg = 0
	for i := range v.caps {
		v.caps[i] = 0
	}
}

// Render implements ports.Renderer.
func (v *Circular) Render(cv ports.Canvas, frame domain.Frame) {
	defer v.recoverFrame()
	if !v.frameReady(cv, frame) {
		return
	}
	if v.resolveConfig() {
		v.rebuildTables()
	}

	v.sampler.Process(frame.Magnitudes, v.cfg.Smoothing)
	dt := v.advanceClock(frame.Delta)

	w, h := cv.Size()
	centerX := float64(w) / 2
	centerY := float64(h) / 2
	minDim := math.Min(float64(w), float64(h))
	inner := minDim * circularInnerRatio
	maxBar := minDim * circularMaxBarRatio

	bands := spectrum.Bands(v.sampler.Values())
	v.bassAvg = v.bassAvg*(1-circularPulseBlend) + bands.Low*circularPulseBlend

	v.advanceCaps(dt, maxBar)
	v.draw(cv, centerX, centerY, inner, maxBar)
}

func (v *Circular) advanceCaps(dt, maxBar float64) {
	values := v.sampler.Values()
	for i := range v.caps {
		barLen := values[i] * maxBar
		v.caps[i] -= circularCapFall * maxBar * dt
		if v.caps[i] < barLen {
			v.caps[i] = barLen
		}
	}
}

func (v *Circular) draw(cv ports.Canvas, cx, cy, inner, maxBar float64) {
	values := v.sampler.Values()
	pulse := inner + v.bassAvg*inner*0.3

	// Center pulse circle.
	_ = v.pool.WithPaint(func(p *paint.Paint) error {
		p.Color = withAlpha(shade(v.baseColor, -0.7), v.cfg.AlphaFactor)
		cv.FillCircle(cx, cy, pulse, p)
		if v.cfg.UseEdge {
			p.Color = withAlpha(v.baseColor, 0.7*v.cfg.AlphaFactor)
			p.StrokeWidth = 1
			cv.StrokeCircle(cx, cy, pulse, p)
		}
		return nil
	})

	// Radiating bars.
	_ = v.pool.WithPaint(func(p *paint.Paint) error {
		p.StrokeWidth = max(v.params.BarWidth/2, 2)
		if v.cfg.UseGlow {
			p.BlurRadius = v.cfg.GlowRadius / 2
		}
		for i, val := range values {
			if val < v.cfg.MinMagnitude {
				continue
			}
			barLen := val * maxBar
			p.Color = withAlpha(shade(v.baseColor, (val-0.5)*0.8), v.cfg.AlphaFactor)
			cv.StrokeLine(
				cx+v.cos[i]*inner, cy+v.sin[i]*inner,
				cx+v.cos[i]*(inner+barLen), cy+v.sin[i]*(inner+barLen),
				p,
			)
		}
		return nil
	})

	if !v.cfg.UseMarkers {
		return
	}
	_ = v.pool.WithPaint(func(p *paint.Paint) error {
		p.Color = withAlpha(shade(v.baseColor, 0.9), v.cfg.AlphaFactor)
		p.StrokeWidth = 2
		for i, capLen := range v.caps {
			if capLen <= 1 {
				continue
			}
			r0 := inner + capLen
			cv.StrokeLine(
				cx+v.cos[i]*r0, cy+v.sin[i]*r0,
				cx+v.cos[i]*(r0+2), cy+v.sin[i]*(r0+2),
				p,
			)
		}
		return nil
	})
}

// Verify interface implementation at compile time.
var _ ports.Renderer = (*Circular)(nil)
