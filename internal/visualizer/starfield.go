package visualizer

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/paint"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
	"github.com/tejashwikalptaru/soundscape/internal/spectrum"
)

const (
	starMinLife     = 1.5
	starMaxLife     = 4.5
	starMinSize     = 1.0
	starMaxSize     = 3.5
	starFadeWindow  = 0.4 // seconds of fade-in and fade-out
	starDriftScale  = 90.0
	starTwinkleMin  = 2.0
	starTwinkleMax  = 8.0
)

// star is one pooled particle. A star is either fully alive or free; a
// slot whose lifetime reaches zero is immediately reusable.
type star struct {
	active bool

	x, y         float64
	phase        float64 // per-star velocity phase offset
	life         float64 // remaining lifetime in seconds
	totalLife    float64
	size         float64
	twinklePhase float64
	twinkleSpeed float64
	brightness   float64
	col          colorful.Color
}

// Starfield renders an energy-reactive drifting particle field. The
// particle population is a fixed-size pool sized by the quality tier;
// spawning reuses dead slots and never grows the array.
type Starfield struct {
	base

	stars    []star
	spawnAcc float64
}

// NewStarfield creates the starfield renderer.
func NewStarfield(opts Options) *Starfield {
	v := &Starfield{base: newBase(string(StyleStarfield), opts)}
	v.stars = make([]star, v.cfg.ParticleCap)
	return v
}

// Reset implements ports.Renderer.
func (v *Starfield) Reset() {
	v.resetBase()
	v.spawnAcc = 0
	for i := range v.stars {
		v.stars[i].active = false
	}
}

// Render implements ports.Renderer.
func (v *Starfield) Render(cv ports.Canvas, frame domain.Frame) {
	defer v.recoverFrame()
	if !v.frameReady(cv, frame) {
		return
	}
	if v.resolveConfig() && len(v.stars) != v.cfg.ParticleCap {
		// Capacity change replaces the pool wholesale.
		v.stars = make([]star, v.cfg.ParticleCap)
		v.spawnAcc = 0
	}

	v.sampler.Process(frame.Magnitudes, v.cfg.Smoothing)
	dt := v.advanceClock(frame.Delta)

	w, h := cv.Size()
	bands := spectrum.Bands(v.sampler.Values())

	v.advance(dt, bands, float64(w), float64(h))
	v.spawn(dt, bands, float64(w), float64(h))
	v.draw(cv)
}

// advance ages every active star and updates its kinematics from the
// elapsed local time and the current band energies.
func (v *Starfield) advance(dt float64, bands spectrum.BandLevels, w, h float64) {
	for i := range v.stars {
		s := &v.stars[i]
		if !s.active {
			continue
		}

		s.life -= dt
		if s.life <= 0 {
			s.active = false
			continue
		}

		age := s.totalLife - s.life

		// Energy-reactive drift: each axis mixes two bands through
		// sine/cosine terms at different frequency multipliers.
		vx := (bands.Low*math.Sin(s.phase+age*1.3) + bands.High*math.Cos(s.phase*2+age*2.7)) * starDriftScale
		vy := (bands.Mid*math.Cos(s.phase+age*1.9) + bands.Low*math.Sin(s.phase*3+age*0.7)) * starDriftScale

		s.x = clampRange(s.x+vx*dt, 0, w)
		s.y = clampRange(s.y+vy*dt, 0, h)

		s.twinklePhase += s.twinkleSpeed * dt
	}
}

// spawn rate-limits new stars through an accumulator that grows with
// driving energy. Spawn bursts are capped per frame and a full pool
// drops the request.
func (v *Starfield) spawn(dt float64, bands spectrum.BandLevels, w, h float64) {
	energy := spectrum.Driving(v.sampler.Values())
	v.spawnAcc += v.cfg.SpawnRate * energy * dt

	n := int(v.spawnAcc)
	if n == 0 {
		return
	}
	v.spawnAcc -= float64(n)
	if n > v.cfg.MaxSpawnPerTick {
		n = v.cfg.MaxSpawnPerTick
	}

	for ; n > 0; n-- {
		slot := v.freeSlot()
		if slot < 0 {
			return
		}
		v.initStar(&v.stars[slot], bands, w, h)
	}
}

// freeSlot returns the first inactive index, or -1 when the pool is full.
// Linear scan is fine: capacity is small and bounded.
func (v *Starfield) freeSlot() int {
	for i := range v.stars {
		if !v.stars[i].active {
			return i
		}
	}
	return -1
}

func (v *Starfield) initStar(s *star, bands spectrum.BandLevels, w, h float64) {
	a, b := paletteFor(bands)

	s.active = true
	s.x = v.rand.Float64() * w
	s.y = v.rand.Float64() * h
	s.phase = v.rand.Float64() * 2 * math.Pi
	s.totalLife = starMinLife + v.rand.Float64()*(starMaxLife-starMinLife)
	s.life = s.totalLife
	s.size = starMinSize + v.rand.Float64()*(starMaxSize-starMinSize)
	s.twinklePhase = v.rand.Float64() * 2 * math.Pi
	s.twinkleSpeed = starTwinkleMin + v.rand.Float64()*(starTwinkleMax-starTwinkleMin)
	s.brightness = 0.5 + v.rand.Float64()*0.5
	s.col = blendPalette(a, b, v.rand.Float64())
}

// opacity is the minimum of the fade-in and fade-out ramps, so a star
// never pops in or out.
func (s *star) opacity() float64 {
	age := s.totalLife - s.life
	in := age / starFadeWindow
	out := s.life / starFadeWindow
	return math.Min(math.Min(in, out), 1)
}

func (v *Starfield) draw(cv ports.Canvas) {
	_ = v.pool.WithPaint(func(p *paint.Paint) error {
		for i := range v.stars {
			s := &v.stars[i]
			if !s.active {
				continue
			}

			twinkle := 0.75 + 0.25*math.Sin(s.twinklePhase)
			alpha := s.opacity() * s.brightness * twinkle * v.cfg.AlphaFactor
			if alpha < 0.02 {
				continue
			}

			p.Color = withAlpha(toRGBA(s.col), alpha)
			p.BlurRadius = 0
			if v.cfg.UseGlow && s.size > 2.5 {
				p.BlurRadius = v.cfg.GlowRadius / 2
			}
			cv.FillCircle(s.x, s.y, s.size, p)
		}
		return nil
	})
}

// activeCount reports the live population, used by tests and debugging.
func (v *Starfield) activeCount() int {
	n := 0
	for i := range v.stars {
		if v.stars[i].active {
			n++
		}
	}
	return n
}

func clampRange(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Verify interface implementation at compile time.
var _ ports.Renderer = (*Starfield)(nil)
