package visualizer

import (
	"image/color"

	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/paint"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
)

const (
	barsPadding    = 10.0
	barsCapFall    = 0.9 // fraction of the effective height per second
	barsCapHeight  = 3.0
	barsCornerFrac = 0.25
)

// Bars renders the spectrum as vertical bars with falling peak caps.
type Bars struct {
	base

	caps []float64 // cap height per bar, in pixels

	// Layout cache, recalculated only when the canvas size or the bar
	// count changes.
	lastW, lastH int
	barW, gap    float64
	startX       float64
	effH         float64
}

// NewBars creates the bars renderer.
func NewBars(opts Options) *Bars {
	v := &Bars{base: newBase(string(StyleBars), opts)}
	v.caps = make([]float64, v.barCount)
	return v
}

// Reset implements ports.Renderer.
func (v *Bars) Reset() {
	v.resetBase()
	for i := range v.caps {
		v.caps[i] = 0
	}
}

// Render implements ports.Renderer.
func (v *Bars) Render(cv ports.Canvas, frame domain.Frame) {
	defer v.recoverFrame()
	if !v.frameReady(cv, frame) {
		return
	}
	if v.resolveConfig() {
		v.caps = make([]float64, v.barCount)
		v.lastW = 0 // force layout rebuild
	}

	v.sampler.Process(frame.Magnitudes, v.cfg.Smoothing)
	dt := v.advanceClock(frame.Delta)

	w, h := cv.Size()
	if v.lastW != w || v.lastH != h {
		v.recalculateLayout(w, h)
	}
	if v.barW <= 0 {
		return
	}

	v.advanceCaps(dt)
	v.draw(cv, h)
}

func (v *Bars) recalculateLayout(w, h int) {
	v.lastW = w
	v.lastH = h

	v.effH = float64(h) - barsPadding
	effW := float64(w) - 2*barsPadding
	if effW <= 0 || v.effH <= 0 {
		v.barW = 0
		return
	}

	v.gap = v.params.BarSpacing
	if v.gap <= 0 {
		v.gap = 2
	}
	v.barW = v.params.BarWidth
	if v.barW <= 0 {
		v.barW = max((effW-float64(v.barCount-1)*v.gap)/float64(v.barCount), 1)
	}

	used := float64(v.barCount)*v.barW + float64(v.barCount-1)*v.gap
	v.startX = barsPadding + v.params.StartOffset + (effW-used)/2
}

// advanceCaps applies the falling-cap animation. A cap never sits below
// its live bar.
func (v *Bars) advanceCaps(dt float64) {
	values := v.sampler.Values()
	for i := range v.caps {
		barH := values[i] * v.effH
		v.caps[i] -= barsCapFall * v.effH * dt
		if v.caps[i] < barH {
			v.caps[i] = barH
		}
	}
}

func (v *Bars) draw(cv ports.Canvas, h int) {
	values := v.sampler.Values()
	corner := v.barW * barsCornerFrac

	// All bars share one rented gradient paint.
	_ = v.pool.WithPaint(func(p *paint.Paint) error {
		p.SetGradient(themeGradient(v.baseColor)...)
		p.Color = withAlpha(v.baseColor, v.cfg.AlphaFactor)
		if v.cfg.UseGlow {
			p.BlurRadius = v.cfg.GlowRadius
		}
		for i, val := range values {
			if val < v.cfg.MinMagnitude {
				continue
			}
			barH := val * v.effH
			x := v.startX + float64(i)*(v.barW+v.gap)
			cv.FillRoundedRect(x, float64(h)-barH, v.barW, barH, corner, p)
		}
		return nil
	})

	if v.cfg.UseHighlight {
		_ = v.pool.WithPaint(func(p *paint.Paint) error {
			p.Color = withAlpha(shade(v.baseColor, 0.6), 0.6*v.cfg.AlphaFactor)
			for i, val := range values {
				if val < v.cfg.MinMagnitude {
					continue
				}
				barH := val * v.effH
				x := v.startX + float64(i)*(v.barW+v.gap)
				cv.FillRect(x, float64(h)-barH, v.barW, 2, p)
			}
			return nil
		})
	}

	if v.cfg.UseMarkers {
		_ = v.pool.WithPaint(func(p *paint.Paint) error {
			p.Color = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			for i, capH := range v.caps {
				if capH <= 1 {
					continue
				}
				x := v.startX + float64(i)*(v.barW+v.gap)
				cv.FillRect(x, float64(h)-capH-barsCapHeight, v.barW, barsCapHeight, p)
			}
			return nil
		})
	}
}

// Verify interface implementation at compile time.
var _ ports.Renderer = (*Bars)(nil)
