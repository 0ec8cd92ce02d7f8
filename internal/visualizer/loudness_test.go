package visualizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashwikalptaru/soundscape/internal/adapter/canvas/record"
	"github.com/tejashwikalptaru/soundscape/internal/domain"
)

func TestLoudnessPeakNeverBelowLevel(t *testing.T) {
	v := NewLoudness(testOptions(domain.QualityMedium))
	cv := record.New(800, 200)

	levels := []float32{0.9, 0.1, 0.8, 0.05, 0.5, 0.95, 0.0, 0.7}
	for _, lvl := range levels {
		for i := 0; i < 45; i++ {
			v.Render(cv, fullFrame(64, lvl, 1.0/60))
			assert.GreaterOrEqual(t, v.peak+1e-9, v.level)
			assert.GreaterOrEqual(t, v.level, 0.0)
			assert.LessOrEqual(t, v.level, 1.0)
		}
	}
}

func TestLoudnessAttackFasterThanRelease(t *testing.T) {
	v := NewLoudness(testOptions(domain.QualityMedium))
	cv := record.New(800, 200)

	// Prime at silence, then hit a full-scale step for a handful of frames.
	v.Render(cv, fullFrame(64, 0.0, 1.0/60))
	for i := 0; i < 10; i++ {
		v.Render(cv, fullFrame(64, 1.0, 1.0/60))
	}
	afterRise := v.level
	require.Positive(t, afterRise)

	// Drop back to silence for the same number of frames.
	for i := 0; i < 10; i++ {
		v.Render(cv, fullFrame(64, 0.0, 1.0/60))
	}
	afterFall := v.level

	rise := afterRise
	fall := afterRise - afterFall
	assert.Greater(t, rise, fall, "the meter must rise faster than it falls")
}

func TestLoudnessPeakHoldsBeforeFalling(t *testing.T) {
	v := NewLoudness(testOptions(domain.QualityMedium))

	// Latch a peak by hand with a full hold window; the silent sampler
	// keeps the level at zero throughout.
	v.peak = 0.9
	v.peakHold = v.cfg.PeakHold

	dt := 1.0 / 60
	frames := int(v.cfg.PeakHold/dt) - 1
	for i := 0; i < frames; i++ {
		v.advanceMeter(dt)
		assert.InDelta(t, 0.9, v.peak, 1e-9, "peak must hold for the full window")
	}

	// Past the hold window gravity takes over.
	for i := 0; i < 60; i++ {
		v.advanceMeter(dt)
	}
	assert.Less(t, v.peak, 0.9)
	assert.GreaterOrEqual(t, v.peak, v.level)
}

func TestLoudnessReset(t *testing.T) {
	v := NewLoudness(testOptions(domain.QualityMedium))
	cv := record.New(800, 200)

	for i := 0; i < 30; i++ {
		v.Render(cv, fullFrame(64, 0.9, 1.0/60))
	}
	require.Positive(t, v.level)

	v.Reset()
	assert.Zero(t, v.level)
	assert.Zero(t, v.peak)
	assert.Zero(t, v.peakVel)
}
