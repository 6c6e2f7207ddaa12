package player

import "math"

const (
	volumeCurveExponent = 0.5
	minVolumeDB         = -10.0
)

// volumeToGain maps a 0..100 percentage onto the exponent used by effects.Volume (base 2).
// The curve is perceptual: the upper half of the range changes loudness gently.
func volumeToGain(percent int) float64 {
	if percent <= 0 {
		return minVolumeDB
	}
	if percent >= 100 {
		return 0
	}

	adjusted := math.Pow(float64(percent)/100, volumeCurveExponent)
	return (1 - adjusted) * minVolumeDB
}

func clampVolume(percent int) int {
	switch {
	case percent < 0:
		return 0
	case percent > 100:
		return 100
	}
	return percent
}
