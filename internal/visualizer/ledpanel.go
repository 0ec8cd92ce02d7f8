package visualizer

import (
	"image/color"
	"math"
	"runtime"
	"sync"

	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/paint"
	"github.com/tejashwikalptaru/soundscape/internal/ports"
)

const (
	ledSegments    = 16
	ledGapRatio    = 0.2 // gap as fraction of segment height
	ledPadding     = 10.0
	ledMinGap      = 2.0
	ledParallelMin = 32 // columns below this update serially
)

// ledColumn is the per-column simulation state: the live value plus a
// peak tracker with hold-then-exponential-decay behavior.
type ledColumn struct {
	value float64
	peak  float64
	hold  float64 // remaining hold time in seconds
}

// columnRange is one worker's contiguous slice of column indices,
// half-open [start, end). Ranges never split a column and never overlap,
// so the per-column updates need no locking.
type columnRange struct {
	start, end int
}

// partitionColumns splits n columns across at most workers contiguous
// ranges.
func partitionColumns(n, workers int) []columnRange {
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	parts := make([]columnRange, 0, workers)
	per := n / workers
	rem := n % workers
	start := 0
	for w := 0; w < workers; w++ {
		size := per
		if w < rem {
			size++
		}
		parts = append(parts, columnRange{start: start, end: start + size})
		start += size
	}
	return parts
}

// validatePartition asserts the ranges cover [0, n) exactly once.
func validatePartition(parts []columnRange, n int) error {
	next := 0
	for _, p := range parts {
		if p.start != next || p.end < p.start {
			return domain.ErrInvalidPartition
		}
		next = p.end
	}
	if next != n {
		return domain.ErrInvalidPartition
	}
	return nil
}

// LEDPanel renders the spectrum as segmented LED columns with peak-hold
// markers. Column state updates are partitioned across workers bounded by
// the available processing units.
type LEDPanel struct {
	base

	cols  []ledColumn
	parts []columnRange

	// Layout cache
	lastW, lastH   int
	colW, gap      float64
	startX         float64
	segH, segGap   float64
	effH           float64
}

// NewLEDPanel creates the LED panel renderer.
func NewLEDPanel(opts Options) *LEDPanel {
	v := &LEDPanel{base: newBase(string(StyleLEDPanel), opts)}
	v.rebuildColumns()
	return v
}

// rebuildColumns replaces the column state and its worker partition. The
// partition is validated here, at construction time, rather than trusted
// implicitly during updates.
func (v *LEDPanel) rebuildColumns() {
	v.cols = make([]ledColumn, v.barCount)
	v.parts = partitionColumns(v.barCount, runtime.GOMAXPROCS(0))
	if err := validatePartition(v.parts, v.barCount); err != nil {
		// A bad partition would corrupt disjoint access; fall back to a
		// single serial range.
		v.log.Error("column partition invalid, falling back to serial", "error", err)
		v.parts = []columnRange{{start: 0, end: v.barCount}}
	}
	v.lastW = 0
}

// Reset implements ports.Renderer.
func (v *LEDPanel) Reset() {
	v.resetBase()
	for i := range v.cols {
		v.cols[i] = ledColumn{}
	}
}

// Render implements ports.Renderer.
func (v *LEDPanel) Render(cv ports.Canvas, frame domain.Frame) {
	defer v.recoverFrame()
	if !v.frameReady(cv, frame) {
		return
	}
	if v.resolveConfig() {
		v.rebuildColumns()
	}

	v.sampler.Process(frame.Magnitudes, v.cfg.Smoothing)
	dt := v.advanceClock(frame.Delta)

	w, h := cv.Size()
	if v.lastW != w || v.lastH != h {
		v.recalculateLayout(w, h)
	}
	if v.colW <= 0 {
		return
	}

	v.advanceColumns(dt)
	v.draw(cv, h)
}

func (v *LEDPanel) recalculateLayout(w, h int) {
	v.lastW = w
	v.lastH = h

	effW := float64(w) - 2*ledPadding
	v.effH = float64(h) - 2*ledPadding
	if effW <= 0 || v.effH <= 0 {
		v.colW = 0
		return
	}

	segWithGap := v.effH / ledSegments
	v.segGap = math.Max(segWithGap*ledGapRatio, 1)
	v.segH = math.Max(segWithGap-v.segGap, 2)

	totalGap := float64(v.barCount-1) * ledMinGap
	v.colW = math.Max((effW-totalGap)/float64(v.barCount), 2)
	v.gap = ledMinGap
	if v.barCount > 1 {
		remaining := effW - v.colW*float64(v.barCount)
		v.gap = math.Max(remaining/float64(v.barCount-1), ledMinGap)
	}

	used := float64(v.barCount)*v.colW + float64(v.barCount-1)*v.gap
	v.startX = ledPadding + (effW-used)/2
}

// advanceColumns updates every column's value and peak tracker. Each
// column is touched by exactly one worker; disjoint ranges mean no locks.
func (v *LEDPanel) advanceColumns(dt float64) {
	if v.barCount < ledParallelMin || len(v.parts) == 1 {
		v.updateRange(v.parts[0].start, len(v.cols), dt)
		return
	}

	var wg sync.WaitGroup
	for _, p := range v.parts {
		wg.Add(1)
		go func(p columnRange) {
			defer wg.Done()
			v.updateRange(p.start, p.end, dt)
		}(p)
	}
	wg.Wait()
}

// updateRange advances columns in [start, end). The peak tracks the
// maximum value seen, holds for the configured duration, then decays
// exponentially but never falls below the live value.
func (v *LEDPanel) updateRange(start, end int, dt float64) {
	values := v.sampler.Values()
	for i := start; i < end && i < len(values); i++ {
		c := &v.cols[i]
		c.value = values[i]

		if c.value > c.peak {
			c.peak = c.value
			c.hold = v.cfg.PeakHold
			continue
		}

		c.hold -= dt
		if c.hold > 0 {
			continue
		}
		c.peak *= math.Exp(-v.cfg.PeakDecay * dt)
		if c.peak < c.value {
			c.peak = c.value
		}
	}
}

func (v *LEDPanel) draw(cv ports.Canvas, h int) {
	segStep := v.segH + v.segGap

	_ = v.pool.WithPaint(func(p *paint.Paint) error {
		for i := range v.cols {
			c := &v.cols[i]
			x := v.startX + float64(i)*(v.colW+v.gap)

			lit := int(c.value * ledSegments)
			peakSeg := int(c.peak * ledSegments)
			if peakSeg >= ledSegments {
				peakSeg = ledSegments - 1
			}

			for seg := 0; seg < ledSegments; seg++ {
				y := float64(h) - ledPadding - float64(seg+1)*segStep

				switch {
				case seg < lit:
					p.Color = withAlpha(ledZoneColor(float64(seg)/ledSegments), v.cfg.AlphaFactor)
				case v.cfg.UseMarkers && seg == peakSeg && peakSeg > 0:
					p.Color = color.RGBA{R: 255, G: 255, B: 255, A: 255}
				case v.cfg.UseShadow:
					p.Color = color.RGBA{R: 30, G: 30, B: 30, A: 255}
				default:
					continue
				}
				cv.FillRect(x, y, v.colW, v.segH, p)
			}
		}
		return nil
	})
}

// Verify interface implementation at compile time.
var _ ports.Renderer = (*LEDPanel)(nil)
