package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamplerFirstFrameIsTakenAsIs(t *testing.T) {
	s := NewSampler(4)
	require.False(t, s.Primed())

	s.Process([]float32{0.8, 0.8, 0.8, 0.8}, 0.3)

	assert.True(t, s.Primed())
	for _, v := range s.Values() {
		assert.InDelta(t, 0.8, v, 1e-9, "first frame should not be ramped from zero")
	}
}

func TestSamplerEmptyInputLeavesStateUntouched(t *testing.T) {
	s := NewSampler(4)
	s.Process([]float32{0.5, 0.5, 0.5, 0.5}, 0.3)
	before := append([]float64(nil), s.Values()...)

	s.Process(nil, 0.3)
	s.Process([]float32{}, 0.3)

	assert.Equal(t, before, s.Values())
	assert.True(t, s.Primed())
}

func TestSamplerBallisticAttack(t *testing.T) {
	s := NewSampler(1)

	// Prime at zero, then feed a full-scale step.
	s.ProcessBallistic([]float32{0}, 0.6, 0.15)
	s.ProcessBallistic([]float32{1}, 0.6, 0.15)

	assert.InDelta(t, 0.6, s.Values()[0], 1e-9)
}

func TestSamplerBallisticReleaseSlowerThanAttack(t *testing.T) {
	s := NewSampler(1)
	s.ProcessBallistic([]float32{0}, 0.6, 0.15)

	s.ProcessBallistic([]float32{1}, 0.6, 0.15)
	afterRise := s.Values()[0]

	s.ProcessBallistic([]float32{0}, 0.6, 0.15)
	afterFall := s.Values()[0]

	rise := afterRise - 0
	fall := afterRise - afterFall
	assert.Greater(t, rise, fall, "attack should move faster than release")
	assert.InDelta(t, afterRise*0.15, fall, 1e-9)
}

func TestSamplerClampsToCeiling(t *testing.T) {
	s := NewSampler(2)
	s.Process([]float32{5, -3}, 0.3)

	assert.Equal(t, 1.0, s.Values()[0])
	assert.Equal(t, 0.0, s.Values()[1])
}

func TestSamplerResampleUpAndDown(t *testing.T) {
	t.Run("downsample", func(t *testing.T) {
		s := NewSampler(2)
		s.Process([]float32{0, 0.25, 0.5, 0.75}, 0.3)
		require.Len(t, s.Values(), 2)
		assert.InDelta(t, 0.0, s.Values()[0], 1e-9)
		assert.InDelta(t, 0.5, s.Values()[1], 1e-9)
	})

	t.Run("upsample interpolates", func(t *testing.T) {
		s := NewSampler(4)
		s.Process([]float32{0, 1}, 0.3)
		require.Len(t, s.Values(), 4)
		assert.InDelta(t, 0.0, s.Values()[0], 1e-9)
		assert.InDelta(t, 0.5, s.Values()[1], 1e-9)
		// Upper neighbor past the input clamps to the last raw value.
		assert.InDelta(t, 1.0, s.Values()[2], 1e-9)
		assert.InDelta(t, 1.0, s.Values()[3], 1e-9)
	})
}

func TestSamplerHalfRangeReadsLowerHalf(t *testing.T) {
	s := NewHalfRangeSampler(2)
	s.Process([]float32{0.2, 0.2, 0.9, 0.9}, 0.3)

	for _, v := range s.Values() {
		assert.InDelta(t, 0.2, v, 1e-9, "upper half of the raw input must be ignored")
	}
}

func TestSamplerResize(t *testing.T) {
	s := NewSampler(4)
	s.Process([]float32{1, 1, 1, 1}, 0.3)
	require.True(t, s.Primed())

	s.Resize(8)
	assert.Equal(t, 8, s.Len())
	assert.False(t, s.Primed(), "resize discards smoothed state")
	for _, v := range s.Values() {
		assert.Zero(t, v)
	}

	// Same size is a no-op.
	s.Process([]float32{1}, 0.3)
	s.Resize(8)
	assert.True(t, s.Primed())
}

func TestSamplerReset(t *testing.T) {
	s := NewSampler(3)
	s.Process([]float32{0.7, 0.7, 0.7}, 0.3)

	s.Reset()

	assert.False(t, s.Primed())
	for _, v := range s.Values() {
		assert.Zero(t, v)
	}
}

func TestSamplerConvergesToSteadyInput(t *testing.T) {
	s := NewSampler(1)
	s.ProcessBallistic([]float32{0}, 0.6, 0.15)

	for i := 0; i < 200; i++ {
		s.ProcessBallistic([]float32{0.42}, 0.6, 0.15)
	}
	assert.InDelta(t, 0.42, s.Values()[0], 1e-6)
}
