package metrics

import "math"

// Diverged reports whether a track grew without bound, which is how a
// conditionally stable scheme fails once omega*dt passes its limit. A
// track diverges when it contains non-finite samples or when the peak of
// its final quarter exceeds ratio times the peak of everything before.
func Diverged(x []float64, ratio float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return true
		}
	}
	n := len(x)
	if n < 8 {
		return false
	}
	split := n - n/4
	head := Peak(x[:split])
	tail := Peak(x[split:])
	if head == 0 {
		return tail > 0
	}
	return tail > ratio*head
}
