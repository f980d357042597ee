// Package metrics summarizes response and excitation tracks with the
// quantities used to compare runs: peaks, energy content and the standard
// ground-motion intensity measures.
package metrics

import "math"

// Peak returns the largest absolute value in the track.
func Peak(x []float64) float64 {
	var m float64
	for _, v := range x {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

// PeakAt returns the index and value of the largest absolute sample. The
// value keeps its sign. An empty track reports index -1.
func PeakAt(x []float64) (int, float64) {
	idx := -1
	var peak, best float64
	for i, v := range x {
		if a := math.Abs(v); a > best {
			best = a
			peak = v
			idx = i
		}
	}
	return idx, peak
}

// RMS returns the root mean square of the track.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}
