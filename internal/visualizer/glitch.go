package visualizer

import (
	"image"
	"sync"

	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/paint"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
	"github.com/tejashwikalptaru/soundscape/internal/spectrum"
)

const (
	glitchSpawnChance   = 0.45 // per-frame chance scale at full excess
	glitchMinTTL        = 0.06
	glitchMaxTTL        = 0.40
	glitchMinBandFrac   = 0.02 // segment height as fraction of canvas height
	glitchMaxBandFrac   = 0.12
	glitchSnapshotLimit = 16 << 20 // back-buffer byte ceiling
)

// glitchSeg is one displaced horizontal band of the frame.
type glitchSeg struct {
	active bool

	y, h   float64
	offset float64
	ttl    float64
}

// Glitch renders the spectrum as plain bars and then distorts the frame
// by horizontally displacing short-lived bands, sourced from a snapshot
// of the undistorted content.
//
// The per-frame state update is guarded by a non-blocking try-lock: if an
// update is still in progress when the next frame arrives, the new update
// is skipped and the previous frame's segment state is reused for
// drawing. This is a deliberate liveness trade-off; under sustained load
// updates are dropped rather than queued.
type Glitch struct {
	base

	updateMu sync.Mutex
	segs     []glitchSeg

	// back holds the undistorted frame snapshot. It is reallocated only
	// when the canvas dimensions change and released entirely when it
	// would exceed the byte ceiling.
	back *image.RGBA
}

// NewGlitch creates the glitch renderer.
func NewGlitch(opts Options) *Glitch {
	v := &Glitch{base: newBase(string(StyleGlitch), opts)}
	v.segs = make([]glitchSeg, v.cfg.GlitchMaxSegs)
	return v
}

// Reset implements ports.Renderer.
func (v *Glitch) Reset() {
	v.resetBase()
	for i := range v.segs {
		v.segs[i].active = false
	}
	v.back = nil
}

// Render implements ports.Renderer.
func (v *Glitch) Render(cv ports.Canvas, frame domain.Frame) {
	defer v.recoverFrame()
	if !v.frameReady(cv, frame) {
		return
	}
	if v.resolveConfig() && len(v.segs) != v.cfg.GlitchMaxSegs {
		v.segs = make([]glitchSeg, v.cfg.GlitchMaxSegs)
	}

	v.sampler.Process(frame.Magnitudes, v.cfg.Smoothing)
	dt := v.advanceClock(frame.Delta)

	w, h := cv.Size()
	v.drawContent(cv, w, h)

	driving := spectrum.Bands(v.sampler.Values()).Low

	// Skip-if-busy: never block the render thread on the state update.
	if v.updateMu.TryLock() {
		v.advanceSegments(dt, driving, float64(h))
		v.updateMu.Unlock()
	}

	v.composite(cv, w, h)
}

// drawContent renders the undistorted bar field the distortion samples from.
func (v *Glitch) drawContent(cv ports.Canvas, w, h int) {
	values := v.sampler.Values()
	barW := (float64(w) - float64(v.barCount-1)) / float64(v.barCount)
	if barW < 1 {
		barW = 1
	}

	_ = v.pool.WithPaint(func(p *paint.Paint) error {
		p.SetGradient(themeGradient(v.baseColor)...)
		p.Color = withAlpha(v.baseColor, v.cfg.AlphaFactor)
		for i, val := range values {
			if val < v.cfg.MinMagnitude {
				continue
			}
			barH := val * float64(h)
			x := float64(i) * (barW + 1)
			cv.FillRect(x, float64(h)-barH, barW, barH, p)
		}
		return nil
	})
}

// advanceSegments ages active segments, jitters their offsets and spawns
// new ones. Spawning requires the driving value to strictly exceed the
// threshold; probability and maximum offset both scale with the excess.
func (v *Glitch) advanceSegments(dt, driving, h float64) {
	excess := 0.0
	if driving > v.cfg.GlitchThreshold {
		excess = (driving - v.cfg.GlitchThreshold) / (1 - v.cfg.GlitchThreshold)
		if excess > 1 {
			excess = 1
		}
	}

	for i := range v.segs {
		s := &v.segs[i]
		if !s.active {
			continue
		}
		s.ttl -= dt
		if s.ttl <= 0 {
			s.active = false
			continue
		}
		// Independent per-frame jitter keeps active bands twitching.
		if v.rand.Float64() < v.cfg.GlitchJitterProb {
			s.offset = v.rollOffset(excess)
		}
	}

	if excess <= 0 {
		return
	}
	if v.rand.Float64() >= excess*glitchSpawnChance {
		return
	}
	slot := v.freeSeg()
	if slot < 0 {
		return // pool full, drop the spawn request
	}
	s := &v.segs[slot]
	s.active = true
	s.h = h * (glitchMinBandFrac + v.rand.Float64()*(glitchMaxBandFrac-glitchMinBandFrac))
	s.y = v.rand.Float64() * (h - s.h)
	s.ttl = glitchMinTTL + v.rand.Float64()*(glitchMaxTTL-glitchMinTTL)
	s.offset = v.rollOffset(excess)
}

func (v *Glitch) rollOffset(excess float64) float64 {
	return (v.rand.Float64()*2 - 1) * v.cfg.GlitchMaxOffset * excess
}

func (v *Glitch) freeSeg() int {
	for i := range v.segs {
		if !v.segs[i].active {
			return i
		}
	}
	return -1
}

// composite re-blits the active bands from a snapshot of the undistorted
// frame with their horizontal offsets. Passive stripes stay as drawn.
func (v *Glitch) composite(cv ports.Canvas, w, h int) {
	if !v.anyActive() {
		return
	}
	if w*h*4 > glitchSnapshotLimit {
		v.back = nil // bound memory; skip the distortion, keep the bars
		return
	}

	v.back = cv.SnapshotInto(v.back)
	for i := range v.segs {
		s := &v.segs[i]
		if !s.active || s.offset == 0 {
			continue
		}
		cv.Blit(v.back, 0, int(s.y), w, int(s.h), int(s.offset), int(s.y))
	}
}

func (v *Glitch) anyActive() bool {
	for i := range v.segs {
		if v.segs[i].active {
			return true
		}
	}
	return false
}

// activeSegments reports the live segment count, used by tests.
func (v *Glitch) activeSegments() int {
	n := 0
	for i := range v.segs {
		if v.segs[i].active {
			n++
		}
	}
	return n
}

// Verify interface implementation at compile time.
var _ ports.Renderer = (*Glitch)(nil)
