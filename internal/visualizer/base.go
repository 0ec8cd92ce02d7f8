// Package visualizer provides the animated spectrum renderers. Every
// style follows the same per-frame pipeline: resample and smooth the
// spectrum, advance a bounded time-stepped simulation, build geometry and
// issue draw calls, then release pooled resources. All cross-frame state
// lives inside the renderer instance.
package visualizer

import (
	"image/color"
	"log/slog"

	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/paint"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
	"github.com/tejashwikalptaru/soundscape/internal/quality"
	"github.com/tejashwikalptaru/soundscape/internal/spectrum"
)

// base provides the shared pipeline state embedded in every renderer:
// the smoothed spectrum sampler, the active quality config, the paint
// pool, the seedable random source and the host-supplied layout.
type base struct {
	name string
	log  *slog.Logger

	cfg     *quality.Config
	pool    *paint.Pool
	rand    ports.Rand
	sampler *spectrum.Sampler

	params    domain.RenderParams
	baseColor color.RGBA
	overlay   bool

	barCount int     // effective bucket count for the active config
	elapsed  float64 // accumulated animation time in seconds

	// dirty marks a pending configuration change; the next frame
	// resolves it before any drawing begins.
	dirty bool
}

func newBase(name string, opts Options) base {
	b := base{
		name:      name,
		log:       opts.Logger.With(slog.String("style", name)),
		cfg:       quality.Select(opts.Quality),
		pool:      paint.NewPool(),
		rand:      opts.Rand,
		params:    opts.Params,
		baseColor: toRGBA(opts.BaseColor),
		dirty:     true,
	}
	b.barCount = b.cfg.BarCount(b.params.BarCount, b.overlay)
	b.sampler = spectrum.NewSampler(b.barCount)
	return b
}

// Name implements ports.Renderer.
func (b *base) Name() string {
	return b.name
}

// SetQuality implements ports.Renderer. The config pointer is swapped as a
// whole unit; dependent buffers resize on the next frame.
func (b *base) SetQuality(tier domain.QualityTier) {
	b.cfg = quality.Select(tier)
	b.dirty = true
}

// SetLayout implements ports.Renderer.
func (b *base) SetLayout(params domain.RenderParams) {
	b.params = params
	b.dirty = true
}

// SetBaseColor implements ports.Renderer.
func (b *base) SetBaseColor(c color.Color) {
	b.baseColor = toRGBA(c)
}

// SetOverlay implements ports.Renderer.
func (b *base) SetOverlay(active bool) {
	if b.overlay != active {
		b.overlay = active
		b.dirty = true
	}
}

// resetBase clears the cross-frame pipeline state.
func (b *base) resetBase() {
	b.sampler.Reset()
	b.elapsed = 0
	b.dirty = true
}

// resolveConfig applies a pending configuration change and reports whether
// one happened. Called at the top of every frame, before sampling.
func (b *base) resolveConfig() bool {
	if !b.dirty {
		return false
	}
	b.dirty = false
	b.barCount = b.cfg.BarCount(b.params.BarCount, b.overlay)
	b.sampler.Resize(b.barCount)
	return true
}

// frameReady validates per-frame inputs. Invalid input skips the frame's
// work entirely: no output, no propagated error.
func (b *base) frameReady(cv ports.Canvas, frame domain.Frame) bool {
	w, h := cv.Size()
	if w <= 0 || h <= 0 || len(frame.Magnitudes) == 0 {
		return false
	}
	return true
}

// recoverFrame is deferred by every Render entry point. A drawing-layer
// panic abandons the frame but leaves the renderer usable.
func (b *base) recoverFrame() {
	if r := recover(); r != nil {
		b.log.Error("frame abandoned", slog.Any("panic", r))
	}
}

// advanceClock accumulates animation time, clamping pathological deltas
// after host stalls so simulations never take a huge step.
func (b *base) advanceClock(delta float64) float64 {
	const maxStep = 0.25
	if delta < 0 {
		delta = 0
	}
	if delta > maxStep {
		delta = maxStep
	}
	b.elapsed += delta
	return delta
}
