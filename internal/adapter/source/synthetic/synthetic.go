// Package synthetic provides a deterministic spectrum source for demos
// and tests. It synthesizes magnitude frames from moving spectral bumps
// plus seeded noise; no audio hardware or analysis is involved.
package synthetic

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
	"github.com/tejashwikalptaru/soundscape/internal/rng"
)

// Source generates spectrum frames at a fixed rate until closed.
type Source struct {
	log  *slog.Logger
	bins int
	fps  int
	rand *rng.Source

	frames chan domain.Frame
	done   chan struct{}
	wg     sync.WaitGroup

	startOnce sync.Once
	closeOnce sync.Once
}

// New creates a synthetic source. bins is the magnitude array length per
// frame, fps the frame rate, seed the generator seed.
func New(log *slog.Logger, bins, fps int, seed uint64) *Source {
	if bins < 8 {
		bins = 8
	}
	if fps < 1 {
		fps = 30
	}
	return &Source{
		log:    log.With(slog.String("source", "synthetic")),
		bins:   bins,
		fps:    fps,
		rand:   rng.New(seed),
		frames: make(chan domain.Frame, 1),
		done:   make(chan struct{}),
	}
}

// Start implements ports.SpectrumSource.
func (s *Source) Start() error {
	s.startOnce.Do(func() {
		s.wg.Add(1)
		go s.run()
	})
	return nil
}

// Frames implements ports.SpectrumSource.
func (s *Source) Frames() <-chan domain.Frame {
	return s.frames
}

// Close implements ports.SpectrumSource.
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		s.wg.Wait()
		close(s.frames)
	})
	return nil
}

func (s *Source) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(time.Second / time.Duration(s.fps))
	defer ticker.Stop()

	s.log.Debug("synthetic source started", slog.Int("bins", s.bins), slog.Int("fps", s.fps))

	t := 0.0
	last := time.Now()
	mags := make([]float32, s.bins)

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now
			t += delta

			s.synthesize(mags, t)

			// Renderers may keep the slice for the frame, so each frame
			// gets its own copy.
			out := make([]float32, len(mags))
			copy(out, mags)

			select {
			case s.frames <- domain.Frame{Magnitudes: out, Delta: delta}:
			case <-s.done:
				return
			default:
				// Consumer is behind; drop the frame.
			}
		}
	}
}

// synthesize fills mags with a bass-heavy floor, three wandering bumps
// and a little noise, roughly resembling music content.
func (s *Source) synthesize(mags []float32, t float64) {
	n := float64(len(mags))
	beat := 0.5 + 0.5*math.Sin(t*2*math.Pi*1.1)

	for i := range mags {
		pos := float64(i) / n

		v := 0.35 * beat * math.Exp(-pos*6) // bass floor pumping with the beat
		v += 0.5 * bump(pos, 0.25+0.15*math.Sin(t*0.7), 0.05)
		v += 0.35 * bump(pos, 0.55+0.2*math.Sin(t*0.43+1.3), 0.04)
		v += 0.25 * bump(pos, 0.8+0.1*math.Sin(t*1.9+0.4), 0.03) * beat
		v += s.rand.Float64() * 0.04

		if v > 1 {
			v = 1
		}
		mags[i] = float32(v)
	}
}

func bump(pos, center, width float64) float64 {
	d := (pos - center) / width
	return math.Exp(-d * d)
}

// Verify interface implementation at compile time.
var _ ports.SpectrumSource = (*Source)(nil)
