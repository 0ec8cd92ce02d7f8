package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandsSplitsIntoThirds(t *testing.T) {
	values := []float64{1, 1, 0.5, 0.5, 0, 0}
	b := Bands(values)

	assert.InDelta(t, 1.0, b.Low, 1e-9)
	assert.InDelta(t, 0.5, b.Mid, 1e-9)
	assert.InDelta(t, 0.0, b.High, 1e-9)
}

func TestBandsShortInput(t *testing.T) {
	assert.Equal(t, BandLevels{}, Bands(nil))
	assert.Equal(t, BandLevels{}, Bands([]float64{0.5, 0.5}))
}

func TestDrivingUsesLowestQuarter(t *testing.T) {
	values := []float64{0.8, 0.4, 1, 1, 1, 1, 1, 1}
	assert.InDelta(t, 0.6, Driving(values), 1e-9)
}

func TestDrivingEdgeCases(t *testing.T) {
	assert.Zero(t, Driving(nil))
	// Fewer than four buckets still reads at least one.
	assert.InDelta(t, 0.3, Driving([]float64{0.3, 0.9}), 1e-9)
}

func TestRMS(t *testing.T) {
	assert.Zero(t, RMS(nil))
	assert.InDelta(t, 0.5, RMS([]float64{0.5, 0.5, 0.5}), 1e-9)
	assert.InDelta(t, math.Sqrt(0.5), RMS([]float64{1, 0}), 1e-9)
}

func TestPeak(t *testing.T) {
	assert.Zero(t, Peak(nil))
	assert.Equal(t, 0.9, Peak([]float64{0.1, 0.9, 0.4}))
}
