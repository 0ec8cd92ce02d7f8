// Package spectrum turns the raw, variable-length magnitude array of a
// frame into the fixed-size smoothed bucket buffer that drives all
// renderer geometry. Resampling uses linear interpolation; smoothing is an
// exponential blend with separate attack and release rates for meter
// ballistics.
package spectrum

import "math"

// DefaultCeiling bounds every smoothed value so downstream geometry sizes
// stay bounded as well.
const DefaultCeiling = 1.0

// Sampler owns the smoothed bucket buffer for one renderer instance.
// It is mutated once per frame and read many times while geometry for the
// same frame is built. Not safe for concurrent use.
type Sampler struct {
	values  []float64
	ceiling float64
	primed  bool

	// halfRange restricts resampling to the low-frequency half of the
	// raw input, for styles driven by bass content only.
	halfRange bool
}

// NewSampler creates a sampler with the given bucket count and the
// default clamp ceiling.
func NewSampler(buckets int) *Sampler {
	if buckets < 1 {
		buckets = 1
	}
	return &Sampler{
		values:  make([]float64, buckets),
		ceiling: DefaultCeiling,
	}
}

// NewHalfRangeSampler creates a sampler that only reads the lower half of
// the raw spectrum.
func NewHalfRangeSampler(buckets int) *Sampler {
	s := NewSampler(buckets)
	s.halfRange = true
	return s
}

// Resize replaces the bucket buffer wholesale. Used when a quality or
// layout change implies a different bucket count; all smoothed state is
// discarded.
func (s *Sampler) Resize(buckets int) {
	if buckets < 1 {
		buckets = 1
	}
	if buckets == len(s.values) {
		return
	}
	s.values = make([]float64, buckets)
	s.primed = false
}

// Len returns the configured bucket count.
func (s *Sampler) Len() int {
	return len(s.values)
}

// Values exposes the smoothed buckets for geometry building. The slice is
// owned by the sampler and valid until the next Process call.
func (s *Sampler) Values() []float64 {
	return s.values
}

// Primed reports whether at least one non-empty frame has been observed.
func (s *Sampler) Primed() bool {
	return s.primed
}

// Reset clears all smoothed state.
func (s *Sampler) Reset() {
	for i := range s.values {
		s.values[i] = 0
	}
	s.primed = false
}

// Process resamples raw into the bucket buffer and blends it toward the
// previous smoothed values with a single symmetric factor. An empty raw
// input leaves the buffer unmodified.
func (s *Sampler) Process(raw []float32, smoothing float64) {
	s.ProcessBallistic(raw, smoothing, smoothing)
}

// ProcessBallistic resamples raw and blends with asymmetric rates: attack
// is applied when a bucket rises, release when it falls. Attack larger
// than release models a VU-meter style response. The first non-empty
// frame is taken as-is so playback does not start with a ramp from zero.
func (s *Sampler) ProcessBallistic(raw []float32, attack, release float64) {
	if len(raw) == 0 {
		return
	}

	srcLen := len(raw)
	if s.halfRange && srcLen > 1 {
		srcLen /= 2
	}

	first := !s.primed
	for i := range s.values {
		target := clamp(resampleAt(raw, srcLen, i, len(s.values)), 0, s.ceiling)
		if first {
			s.values[i] = target
			continue
		}

		factor := release
		if target > s.values[i] {
			factor = attack
		}
		s.values[i] = clamp(s.values[i]+(target-s.values[i])*factor, 0, s.ceiling)
	}
	s.primed = true
}

// resampleAt computes the linearly interpolated source value for target
// bucket i. The fractional source index is i*srcLen/targetLen; when its
// upper neighbor runs past the input, the last raw value is used.
func resampleAt(raw []float32, srcLen, i, targetLen int) float64 {
	pos := float64(i) * float64(srcLen) / float64(targetLen)
	lo := int(pos)
	if lo >= srcLen {
		lo = srcLen - 1
	}
	hi := lo + 1
	if hi >= srcLen {
		return float64(raw[srcLen-1])
	}
	frac := pos - float64(lo)
	return float64(raw[lo])*(1-frac) + float64(raw[hi])*frac
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
