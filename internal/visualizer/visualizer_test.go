package visualizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashwikalptaru/soundscape/internal/domain"
	"github.com/tejashwikalptaru/soundscape/internal/logger"
	"github.com/tejashwikalptaru/soundscape/internal/rng"
)

// testOptions returns deterministic renderer options for tests.
func testOptions(tier domain.QualityTier) Options {
	return Options{
		Logger:  logger.NewTestLogger(),
		Rand:    rng.New(42),
		Quality: tier,
		Params:  domain.DefaultRenderParams(),
	}
}

// fullFrame builds a frame with every magnitude at the given level.
func fullFrame(bins int, level float32, delta float64) domain.Frame {
	mags := make([]float32, bins)
	for i := range mags {
		mags[i] = level
	}
	return domain.Frame{Magnitudes: mags, Delta: delta}
}

func TestRegistryHasAllStyles(t *testing.T) {
	r := NewRegistry()
	styles := r.Styles()
	require.Len(t, styles, 9)

	want := []Style{
		StyleBars, StyleGlitch, StyleCircular, StyleStarfield, StyleSpheres,
		StyleCubes, StyleLEDPanel, StyleLoudness, StyleNeonWave,
	}
	for i, info := range styles {
		assert.Equal(t, want[i], info.Style)
		assert.NotEmpty(t, info.Name)
	}
}

func TestRegistryNewBuildsEveryStyle(t *testing.T) {
	r := NewRegistry()
	for _, info := range r.Styles() {
		renderer, err := r.New(info.Style, testOptions(domain.QualityMedium))
		require.NoError(t, err, "style %s", info.Style)
		assert.Equal(t, string(info.Style), renderer.Name())
	}
}

func TestRegistryNewUnknownStyle(t *testing.T) {
	r := NewRegistry()
	renderer, err := r.New("plasma", testOptions(domain.QualityMedium))

	assert.Nil(t, renderer)
	assert.ErrorIs(t, err, domain.ErrUnknownStyle)
}

func TestRegistryNext(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, StyleGlitch, r.Next(StyleBars))
	assert.Equal(t, StyleBars, r.Next(StyleNeonWave), "cycling wraps around")
	assert.Equal(t, StyleBars, r.Next("bogus"), "unknown styles start over")
}

func TestRegistryNewAppliesDefaults(t *testing.T) {
	r := NewRegistry()
	renderer, err := r.New(StyleBars, Options{})
	require.NoError(t, err)

	bars, ok := renderer.(*Bars)
	require.True(t, ok)
	assert.NotNil(t, bars.log)
	assert.NotNil(t, bars.rand)
	assert.Positive(t, bars.barCount)
}

func TestBaseOverlayReducesBarCount(t *testing.T) {
	v := NewBars(testOptions(domain.QualityMedium))
	v.resolveConfig()
	normal := v.barCount

	v.SetOverlay(true)
	v.resolveConfig()
	overlay := v.barCount

	assert.Less(t, overlay, normal)
	assert.Equal(t, overlay, v.sampler.Len(), "sampler resizes with the bucket count")
}

func TestBaseQualityChangeIsDeferredToNextFrame(t *testing.T) {
	v := NewBars(testOptions(domain.QualityLow))
	v.resolveConfig()
	require.Equal(t, 32, v.barCount)

	v.SetQuality(domain.QualityHigh)
	assert.Equal(t, 32, v.barCount, "change applies on resolve, not immediately")

	require.True(t, v.resolveConfig())
	assert.Equal(t, 64, v.barCount, "requested count now fits the higher cap")
	assert.False(t, v.resolveConfig(), "resolve is one-shot per change")
}

func TestAdvanceClockClampsDelta(t *testing.T) {
	v := NewBars(testOptions(domain.QualityMedium))

	assert.Equal(t, 0.25, v.advanceClock(5.0), "stall deltas clamp to the max step")
	assert.Equal(t, 0.0, v.advanceClock(-1), "negative deltas clamp to zero")
	assert.Equal(t, 0.25, v.elapsed)
}
