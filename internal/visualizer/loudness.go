package visualizer

import (
	"image/color"
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/paint"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
	"github.com/tejashwikalptaru/soundscape/internal/spectrum"
)

const (
	loudnessCells     = 48
	loudnessPadding   = 24.0
	loudnessBarFrac   = 0.18 // meter height as fraction of canvas height
	loudnessSpringHz  = 7.0
	loudnessDampRatio = 0.9
)

// Loudness renders a single horizontal loudness meter with VU-style
// ballistics: the smoothed level attacks faster than it releases, the
// displayed needle is spring-damped, and the peak indicator holds then
// falls under gravity with damping, never dropping below the live value.
type Loudness struct {
	base

	spring   harmonica.Spring
	level    float64 // displayed, spring-smoothed level
	levelVel float64

	peak     float64
	peakVel  float64
	peakHold float64
}

// NewLoudness creates the loudness meter renderer.
func NewLoudness(opts Options) *Loudness {
	v := &Loudness{
		base:   newBase(string(StyleLoudness), opts),
		spring: harmonica.NewSpring(harmonica.FPS(60), loudnessSpringHz, loudnessDampRatio),
	}
	return v
}

// Reset implements ports.Renderer.
func (v *Loudness) Reset() {
	v.resetBase()
	v.level = 0
	v.levelVel = 0
	v.peak = 0
	v.peakVel = 0
	v.peakHold = 0
}

// Render implements ports.Renderer.
func (v *Loudness) Render(cv ports.Canvas, frame domain.Frame) {
	defer v.recoverFrame()
	if !v.frameReady(cv, frame) {
		return
	}
	v.resolveConfig()

	// Meter ballistics: rising input is tracked with the larger attack
	// factor, falling input with the smaller release factor.
	v.sampler.ProcessBallistic(frame.Magnitudes, v.cfg.Attack, v.cfg.Release)
	dt := v.advanceClock(frame.Delta)

	v.advanceMeter(dt)
	v.draw(cv)
}

// advanceMeter steps the needle spring and the peak physics.
func (v *Loudness) advanceMeter(dt float64) {
	target := spectrum.RMS(v.sampler.Values())
	v.level, v.levelVel = v.spring.Update(v.level, v.levelVel, target)
	v.level = clampRange(v.level, 0, 1)

	if v.level > v.peak {
		// New maximum: latch it and restart the hold window.
		v.peak = v.level
		v.peakVel = 0
		v.peakHold = v.cfg.PeakHold
		return
	}

	v.peakHold -= dt
	if v.peakHold <= 0 {
		// Velocity-driven fall with gravity and damping.
		v.peakVel += v.cfg.PeakGravity * dt
		v.peakVel -= v.peakVel * v.cfg.PeakDamping * dt
		v.peak -= v.peakVel * dt
	}
	if v.peak < v.level {
		v.peak = v.level
		v.peakVel = 0
	}
}

func (v *Loudness) draw(cv ports.Canvas) {
	w, h := cv.Size()
	barW := float64(w) - 2*loudnessPadding
	barH := math.Max(float64(h)*loudnessBarFrac, 12)
	if barW <= 0 {
		return
	}
	x0 := loudnessPadding
	y0 := (float64(h) - barH) / 2

	cellW := barW / loudnessCells
	litCells := int(v.level * loudnessCells)

	_ = v.pool.WithPaint(func(p *paint.Paint) error {
		for cell := 0; cell < loudnessCells; cell++ {
			switch {
			case cell < litCells:
				p.Color = withAlpha(ledZoneColor(float64(cell)/loudnessCells), v.cfg.AlphaFactor)
			case v.cfg.UseShadow:
				p.Color = color.RGBA{R: 28, G: 28, B: 28, A: 255}
			default:
				continue
			}
			cx := x0 + float64(cell)*cellW
			cv.FillRect(cx+1, y0, cellW-2, barH, p)
		}
		return nil
	})

	if v.cfg.UseEdge {
		_ = v.pool.WithPaint(func(p *paint.Paint) error {
			p.Color = withAlpha(shade(v.baseColor, -0.2), 0.8)
			p.StrokeWidth = 1
			cv.StrokeLine(x0, y0-2, x0+barW, y0-2, p)
			cv.StrokeLine(x0, y0+barH+2, x0+barW, y0+barH+2, p)
			return nil
		})
	}

	// Peak indicator, always at or ahead of the live level.
	if v.cfg.UseMarkers && v.peak > 0 {
		_ = v.pool.WithPaint(func(p *paint.Paint) error {
			p.Color = color.RGBA{R: 255, G: 252, B: 210, A: 255}
			px := x0 + v.peak*barW
			cv.FillRect(px-1, y0-3, 3, barH+6, p)
			return nil
		})
	}
}

// Verify interface implementation at compile time.
var _ ports.Renderer = (*Loudness)(nil)
