package visualizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashwikalptaru/soundscape/internal/adapter/canvas/record"
	"github.com/tejashwikalptaru/soundscape/internal/domain"
)

func TestGlitchThresholdIsStrict(t *testing.T) {
	v := NewGlitch(testOptions(domain.QualityHigh))

	// Driving exactly at the threshold must never spawn, whatever the
	// random source produces.
	for i := 0; i < 1000; i++ {
		v.advanceSegments(1.0/60, v.cfg.GlitchThreshold, 600)
	}
	assert.Zero(t, v.activeSegments())
}

func TestGlitchBelowThresholdNeverSpawns(t *testing.T) {
	v := NewGlitch(testOptions(domain.QualityHigh))

	for i := 0; i < 1000; i++ {
		v.advanceSegments(1.0/60, 0.49, 600)
	}
	assert.Zero(t, v.activeSegments())
}

func TestGlitchSegmentsStayBounded(t *testing.T) {
	v := NewGlitch(testOptions(domain.QualityHigh))

	for i := 0; i < 1000; i++ {
		v.advanceSegments(1.0/60, 0.95, 600)
		assert.LessOrEqual(t, v.activeSegments(), v.cfg.GlitchMaxSegs)
	}
	assert.Positive(t, v.activeSegments(), "high driving should have spawned")
}

func TestGlitchSegmentsExpire(t *testing.T) {
	v := NewGlitch(testOptions(domain.QualityHigh))

	for i := 0; i < 200; i++ {
		v.advanceSegments(1.0/60, 0.95, 600)
	}
	require.Positive(t, v.activeSegments())

	// TTLs top out well below a second.
	for i := 0; i < 60; i++ {
		v.advanceSegments(1.0/60, 0.0, 600)
	}
	assert.Zero(t, v.activeSegments())
}

func TestGlitchOffsetScalesWithExcess(t *testing.T) {
	v := NewGlitch(testOptions(domain.QualityHigh))

	for i := 0; i < 100; i++ {
		off := v.rollOffset(0.5)
		assert.LessOrEqual(t, off, v.cfg.GlitchMaxOffset*0.5)
		assert.GreaterOrEqual(t, off, -v.cfg.GlitchMaxOffset*0.5)
	}
}

func TestGlitchSkipsUpdateWhenBusy(t *testing.T) {
	v := NewGlitch(testOptions(domain.QualityHigh))
	cv := record.New(400, 300)

	// Hold the update lock as a stalled in-flight update would.
	v.updateMu.Lock()
	for i := 0; i < 50; i++ {
		v.Render(cv, fullFrame(64, 1.0, 1.0/60))
	}
	v.updateMu.Unlock()

	assert.Zero(t, v.activeSegments(), "updates must be skipped, not queued")
	assert.NotEmpty(t, cv.Ops, "content is still drawn while skipping")
}

func TestGlitchSnapshotCeiling(t *testing.T) {
	v := NewGlitch(testOptions(domain.QualityHigh))
	v.segs[0] = glitchSeg{active: true, y: 10, h: 20, offset: 15, ttl: 1}

	// 3000x2000 RGBA is 24MB, over the ceiling: distortion is skipped
	// and the back buffer released.
	big := record.New(3000, 2000)
	v.back = nil
	v.composite(big, 3000, 2000)
	assert.Nil(t, v.back)
	assert.Empty(t, big.Ops)
}

func TestGlitchSnapshotBufferIsReused(t *testing.T) {
	v := NewGlitch(testOptions(domain.QualityHigh))
	v.segs[0] = glitchSeg{active: true, y: 10, h: 20, offset: 15, ttl: 1}
	cv := record.New(400, 300)

	v.composite(cv, 400, 300)
	first := v.back
	require.NotNil(t, first)

	v.composite(cv, 400, 300)
	assert.Same(t, first, v.back, "unchanged dimensions reuse the buffer")

	blits := 0
	for _, op := range cv.Ops {
		if strings.HasPrefix(op, "blit") {
			blits++
		}
	}
	assert.Equal(t, 2, blits)
}

func TestGlitchCompositeSkipsWhenInactive(t *testing.T) {
	v := NewGlitch(testOptions(domain.QualityHigh))
	cv := record.New(400, 300)

	v.composite(cv, 400, 300)
	assert.Empty(t, cv.Ops, "no active segments means no snapshot work")
}

func TestGlitchZeroOffsetSegmentIsNotBlitted(t *testing.T) {
	v := NewGlitch(testOptions(domain.QualityHigh))
	v.segs[0] = glitchSeg{active: true, y: 10, h: 20, offset: 0, ttl: 1}
	cv := record.New(400, 300)

	v.composite(cv, 400, 300)
	for _, op := range cv.Ops {
		assert.False(t, strings.HasPrefix(op, "blit"), "zero offset draws nothing")
	}
}

func TestGlitchResetReleasesBackBuffer(t *testing.T) {
	v := NewGlitch(testOptions(domain.QualityHigh))
	v.segs[0] = glitchSeg{active: true, y: 10, h: 20, offset: 15, ttl: 1}
	cv := record.New(400, 300)
	v.composite(cv, 400, 300)
	require.NotNil(t, v.back)

	v.Reset()
	assert.Nil(t, v.back)
	assert.Zero(t, v.activeSegments())
}
