// Package filter implements the third-order recursive digital filter that
// advances the discrete oscillator response. The realization is transposed
// direct form II, which keeps three delay registers regardless of input
// length and lets an initial condition be expressed as a register preload.
package filter

// Filter is a third-order IIR section. A[0] is expected to be one; the
// builders in the amplify package always normalize it.
type Filter struct {
	B [4]float64 // numerator taps, input side
	A [4]float64 // denominator taps, output side
}

// State holds the three delay registers of the transposed realization.
type State [3]float64

// Apply runs the filter over x starting from the preloaded registers zi and
// returns the output sequence. The input slice is not modified.
func (f Filter) Apply(x []float64, zi State) []float64 {
	b0, b1, b2, b3 := f.B[0], f.B[1], f.B[2], f.B[3]
	a1, a2, a3 := f.A[1], f.A[2], f.A[3]
	s1, s2, s3 := zi[0], zi[1], zi[2]

	y := make([]float64, len(x))
	for n, xn := range x {
		yn := b0*xn + s1
		s1 = b1*xn - a1*yn + s2
		s2 = b2*xn - a2*yn + s3
		s3 = b3*xn - a3*yn
		y[n] = yn
	}
	return y
}

// SeedFromHistory preloads the registers so that, under zero input, the
// filter continues the homogeneous recurrence whose three most recent
// outputs were y0 (newest), y1 and y2. Only the denominator participates;
// past inputs are taken as zero.
func SeedFromHistory(a [4]float64, y0, y1, y2 float64) State {
	return State{
		-a[1]*y0 - a[2]*y1 - a[3]*y2,
		-a[2]*y0 - a[3]*y1,
		-a[3]*y0,
	}
}
