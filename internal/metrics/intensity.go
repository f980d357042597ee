package metrics

import "math"

// gravity is the standard acceleration used by the intensity measures.
const gravity = 9.80665

// AriasIntensity integrates pi/(2g) * a^2 over the record. The input is
// acceleration in m/s^2 sampled at dt; the result is in m/s.
func AriasIntensity(accel []float64, dt float64) float64 {
	var sum float64
	for _, a := range accel {
		sum += a * a
	}
	return math.Pi / (2 * gravity) * sum * dt
}

// CumulativeAbsoluteVelocity integrates |a| over the record.
func CumulativeAbsoluteVelocity(accel []float64, dt float64) float64 {
	var sum float64
	for _, a := range accel {
		sum += math.Abs(a)
	}
	return sum * dt
}

// SignificantDuration returns the 5 to 95 percent window of the Husid
// curve: the times at which the cumulative squared acceleration passes the
// two thresholds and the spread between them. A record with no energy
// reports zeros.
func SignificantDuration(accel []float64, dt float64) (t5, t95, duration float64) {
	var total float64
	for _, a := range accel {
		total += a * a
	}
	if total == 0 {
		return 0, 0, 0
	}

	lo, hi := 0.05*total, 0.95*total
	var cum float64
	i5, i95 := -1, -1
	for i, a := range accel {
		cum += a * a
		if i5 < 0 && cum >= lo {
			i5 = i
		}
		if cum >= hi {
			i95 = i
			break
		}
	}
	t5 = float64(i5) * dt
	t95 = float64(i95) * dt
	return t5, t95, t95 - t5
}
