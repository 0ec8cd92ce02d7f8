package visualizer

import (
	"math"

	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/paint"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
)

const (
	spheresPadding   = 16.0
	spheresMinRadius = 1.5
	spheresPulseHz   = 1.8
)

// Spheres renders one pulsing filled circle per bucket on a cached grid.
// Radius and alpha are pure functions of the bucket magnitude and the
// active quality config, so identical state draws identical frames.
type Spheres struct {
	base

	// Cached grid positions, rebuilt only when the canvas size or the
	// bucket count changes.
	lastW, lastH int
	gridX, gridY []float64
	cellR        float64
}

// NewSpheres creates the spheres renderer.
func NewSpheres(opts Options) *Spheres {
	return &Spheres{base: newBase(string(StyleSpheres), opts)}
}

// Reset implements ports.Renderer.
func (v *Spheres) Reset() {
	v.resetBase()
	v.lastW = 0
}

// Render implements ports.Renderer.
func (v *Spheres) Render(cv ports.Canvas, frame domain.Frame) {
	defer v.recoverFrame()
	if !v.frameReady(cv, frame) {
		return
	}
	if v.resolveConfig() {
		v.lastW = 0
	}

	v.sampler.Process(frame.Magnitudes, v.cfg.Smoothing)
	v.advanceClock(frame.Delta)

	w, h := cv.Size()
	if v.lastW != w || v.lastH != h || len(v.gridX) != v.barCount {
		v.rebuildGrid(w, h)
	}
	if v.cellR <= 0 {
		return
	}

	v.draw(cv)
}

// rebuildGrid lays the buckets out on the squarest grid that fits them.
func (v *Spheres) rebuildGrid(w, h int) {
	v.lastW = w
	v.lastH = h

	effW := float64(w) - 2*spheresPadding
	effH := float64(h) - 2*spheresPadding
	if effW <= 0 || effH <= 0 {
		v.cellR = 0
		return
	}

	cols := int(math.Ceil(math.Sqrt(float64(v.barCount) * effW / effH)))
	if cols < 1 {
		cols = 1
	}
	rows := (v.barCount + cols - 1) / cols

	cellW := effW / float64(cols)
	cellH := effH / float64(rows)
	v.cellR = math.Min(cellW, cellH) / 2

	v.gridX = make([]float64, v.barCount)
	v.gridY = make([]float64, v.barCount)
	for i := 0; i < v.barCount; i++ {
		col := i % cols
		row := i / cols
		v.gridX[i] = spheresPadding + (float64(col)+0.5)*cellW
		v.gridY[i] = spheresPadding + (float64(row)+0.5)*cellH
	}
}

func (v *Spheres) draw(cv ports.Canvas) {
	values := v.sampler.Values()
	pulse := 1 + 0.06*math.Sin(v.elapsed*2*math.Pi*spheresPulseHz)

	_ = v.pool.WithPaint(func(p *paint.Paint) error {
		for i, val := range values {
			if val < v.cfg.MinMagnitude {
				continue
			}
			r := (spheresMinRadius + val*(v.cellR-spheresMinRadius)) * pulse
			p.Color = withAlpha(shade(v.baseColor, (val-0.5)*0.9), (0.3+0.7*val)*v.cfg.AlphaFactor)
			p.BlurRadius = 0
			if v.cfg.UseGlow && val > 0.5 {
				p.BlurRadius = v.cfg.GlowRadius * val
			}
			cv.FillCircle(v.gridX[i], v.gridY[i], r, p)
		}
		return nil
	})

	if !v.cfg.UseEdge {
		return
	}
	_ = v.pool.WithPaint(func(p *paint.Paint) error {
		p.StrokeWidth = 1
		for i, val := range values {
			if val < 0.6 {
				continue
			}
			r := (spheresMinRadius + val*(v.cellR-spheresMinRadius)) * pulse
			p.Color = withAlpha(shade(v.baseColor, 0.7), (val-0.6)*2*v.cfg.AlphaFactor)
			cv.StrokeCircle(v.gridX[i], v.gridY[i], r+2, p)
		}
		return nil
	})
}

// Verify interface implementation at compile time.
var _ ports.Renderer = (*Spheres)(nil)
