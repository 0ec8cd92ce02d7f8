package visualizer

import (
	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/paint"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
)

const (
	cubesPadding   = 12.0
	cubesDepthFrac = 0.45 // depth offset as fraction of bar width
)

// Cubes renders each bucket as a pseudo-3D column: a front face plus
// shaded top and side parallelograms. A single rented path is reset
// between faces rather than re-rented.
type Cubes struct {
	base

	// Layout cache
	lastW, lastH int
	barW, gap    float64
	startX       float64
	effH         float64
	depth        float64
}

// NewCubes creates the cubes renderer.
func NewCubes(opts Options) *Cubes {
	return &Cubes{base: newBase(string(StyleCubes), opts)}
}

// Reset implements ports.Renderer.
func (v *Cubes) Reset() {
	v.resetBase()
	v.lastW = 0
}

// Render implements ports.Renderer.
func (v *Cubes) Render(cv ports.Canvas, frame domain.Frame) {
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
	if v.lastW != w || v.lastH != h {
		v.recalculateLayout(w, h)
	}
	if v.barW <= 0 {
		return
	}

	v.draw(cv, h)
}

func (v *Cubes) recalculateLayout(w, h int) {
	v.lastW = w
	v.lastH = h

	effW := float64(w) - 2*cubesPadding
	v.effH = float64(h) - 2*cubesPadding
	if effW <= 0 || v.effH <= 0 {
		v.barW = 0
		return
	}

	v.gap = max(v.params.BarSpacing, 2)
	v.barW = max((effW-float64(v.barCount-1)*v.gap)/float64(v.barCount), 2)
	v.depth = v.barW * cubesDepthFrac
	v.effH -= v.depth // leave room for the top face

	used := float64(v.barCount)*v.barW + float64(v.barCount-1)*v.gap
	v.startX = cubesPadding + (effW-used)/2
}

func (v *Cubes) draw(cv ports.Canvas, h int) {
	values := v.sampler.Values()

	frontCol := withAlpha(v.baseColor, v.cfg.AlphaFactor)
	topCol := withAlpha(shade(v.baseColor, 0.45), v.cfg.AlphaFactor)
	sideCol := withAlpha(shade(v.baseColor, -0.45), v.cfg.AlphaFactor)

	_ = v.pool.WithPaint(func(p *paint.Paint) error {
		return v.pool.WithPath(func(path *paint.Path) error {
			for i, val := range values {
				if val < v.cfg.MinMagnitude {
					continue
				}
				barH := val * v.effH
				x := v.startX + float64(i)*(v.barW+v.gap)
				top := float64(h) - cubesPadding - barH

				// Front face
				p.Color = frontCol
				cv.FillRect(x, top, v.barW, barH, p)

				// Top face
				path.Reset()
				path.MoveTo(x, top)
				path.LineTo(x+v.depth, top-v.depth)
				path.LineTo(x+v.depth+v.barW, top-v.depth)
				path.LineTo(x+v.barW, top)
				path.Close()
				p.Color = topCol
				cv.FillPath(path, p)

				// Side face
				path.Reset()
				path.MoveTo(x+v.barW, top)
				path.LineTo(x+v.barW+v.depth, top-v.depth)
				path.LineTo(x+v.barW+v.depth, float64(h)-cubesPadding-v.depth)
				path.LineTo(x+v.barW, float64(h)-cubesPadding)
				path.Close()
				p.Color = sideCol
				cv.FillPath(path, p)

				if v.cfg.UseEdge {
					p.Color = withAlpha(shade(v.baseColor, 0.8), 0.5*v.cfg.AlphaFactor)
					p.StrokeWidth = 1
					cv.StrokeLine(x, top, x+v.barW, top, p)
				}
			}
			return nil
		})
	})
}

// Verify interface implementation at compile time.
var _ ports.Renderer = (*Cubes)(nil)
