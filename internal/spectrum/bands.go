package spectrum

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BandLevels summarizes the smoothed buckets into three driving scalars.
// Renderers combine them to modulate spawn rates, drift and opacity.
type BandLevels struct {
	Low  float64
	Mid  float64
	High float64
}

// Bands splits the bucket buffer into thirds and returns the RMS-style
// level of each. Short inputs fall back to zero levels.
func Bands(values []float64) BandLevels {
	if len(values) < 3 {
		return BandLevels{}
	}

	third := len(values) / 3
	return BandLevels{
		Low:  bandLevel(values[:third]),
		Mid:  bandLevel(values[third : 2*third]),
		High: bandLevel(values[2*third:]),
	}
}

// Driving returns the scalar energy that rate-limits entity spawning: the
// mean of the lowest quarter of buckets. Empty input yields zero.
func Driving(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	n := len(values) / 4
	if n < 1 {
		n = 1
	}
	return stat.Mean(values[:n], nil)
}

// RMS returns the root-mean-square level of the whole bucket buffer, the
// overall loudness scalar used by meter-style renderers.
func RMS(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(values)))
}

// Peak returns the largest bucket value, zero for empty input.
func Peak(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Max(values)
}

func bandLevel(seg []float64) float64 {
	if len(seg) == 0 {
		return 0
	}
	var sum float64
	for _, v := range seg {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(seg)))
}
