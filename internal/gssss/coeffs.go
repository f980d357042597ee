package gssss

import "fmt"

// Coefficients holds the scalar weights of one GSSSS algorithm. The six
// product terms weight the incremental update inside the single solve, the
// five lambda terms propagate displacement, velocity and acceleration to the
// end of the step, and W1 blends the external load across the step.
type Coefficients struct {
	// W1 is the load time-average weight. The effective load over a step
	// is (1-W1)*f(tn) + W1*f(tn+1).
	W1 float64

	// Weights on the displacement-like terms of the balance equation.
	W1L1 float64
	W2L2 float64
	W3L3 float64

	// Weights on the velocity-like terms.
	W1L4 float64
	W2L5 float64

	// Weight on the acceleration increment.
	W1L6 float64

	// End-of-step update weights: u += L1*dt*v + L2*dt^2*a + L3*dt^2*da,
	// v += L4*dt*a + L5*dt*da, a += da.
	L1 float64
	L2 float64
	L3 float64
	L4 float64
	L5 float64
}

// timeAverageWeight evaluates W1 from the polynomial quadrature weights
// (w1, w2, w3) of the time-weighted residual. The numerator and denominator
// are the first two moments of the weighting polynomial over the step.
func timeAverageWeight(w1, w2, w3 float64) float64 {
	num := 1.0/2.0 + w1/3.0 + w2/4.0 + w3/5.0
	den := 1.0 + w1/2.0 + w2/3.0 + w3/4.0
	return num / den
}

// quadratureWeights returns polynomial weights whose moment ratio equals
// target. The chosen family keeps the denominator moment at exactly one, so
// the division never degrades the coefficient.
func quadratureWeights(target float64) (w1, w2, w3 float64) {
	s := 2*target - 1
	return -12 * s, 18 * s, 0
}

// u0 builds the U0 family member whose amplification matrix has limit
// principal roots rho1, rho2 and limit spurious root rho3 as the sampling
// frequency ratio grows without bound. The registered schemes keep all
// three in [0,1].
func u0(rho1, rho2, rho3 float64) Coefficients {
	l3 := 1 / ((1 + rho1) * (1 + rho2))
	l5 := (3 + rho1 + rho2 - rho1*rho2) / (2 * (1 + rho1) * (1 + rho2))
	w1Q, w2Q, w3Q := quadratureWeights(1 / (1 + rho3))
	w1 := timeAverageWeight(w1Q, w2Q, w3Q)
	return Coefficients{
		W1:   w1,
		W1L1: w1,
		W2L2: w1 / 2,
		W3L3: w1 * l3,
		W1L4: w1,
		W2L5: w1 * l5,
		W1L6: (2 + rho1 + rho2 + rho3 - rho1*rho2*rho3) /
			((1 + rho1) * (1 + rho2) * (1 + rho3)),
		L1: 1, L2: 1.0 / 2.0, L3: l3, L4: 1, L5: l5,
	}
}

// newmark builds the classical Newmark member with parameters gamma and
// beta. The balance is collocated at the step end, so every W product
// reduces to its lambda counterpart.
func newmark(gamma, beta float64) Coefficients {
	w1Q, w2Q, w3Q := quadratureWeights(1)
	w1 := timeAverageWeight(w1Q, w2Q, w3Q)
	return Coefficients{
		W1:   w1,
		W1L1: w1,
		W2L2: w1 / 2,
		W3L3: w1 * beta,
		W1L4: w1,
		W2L5: w1 * gamma,
		W1L6: 1,
		L1:   1, L2: 1.0 / 2.0, L3: beta, L4: 1, L5: gamma,
	}
}

// wilson builds the Wilson-theta member. The balance is collocated past the
// step end at t + theta*dt, which scales the weighted terms by powers of
// theta while the end-of-step update keeps linear-acceleration constants.
func wilson(theta float64) Coefficients {
	w1Q, w2Q, w3Q := quadratureWeights(theta)
	w1 := timeAverageWeight(w1Q, w2Q, w3Q)
	return Coefficients{
		W1:   w1,
		W1L1: w1,
		W2L2: w1 * theta / 2,
		W3L3: w1 * theta * theta / 6,
		W1L4: w1,
		W2L5: w1 * theta / 2,
		W1L6: w1,
		L1:   1, L2: 1.0 / 2.0, L3: 1.0 / 6.0, L4: 1, L5: 1.0 / 2.0,
	}
}

// VectorLen is the length of a raw coefficient vector accepted by
// FromVector.
const VectorLen = 14

// FromVector builds Coefficients from a raw 14-entry vector laid out as
// [w1 w2 w3 W1L1 W2L2 W3L3 W1L4 W2L5 W1L6 l1 l2 l3 l4 l5]. The load weight
// W1 is derived from the first three entries through the moment formula, so
// callers control the load blending through the quadrature weights alone.
func FromVector(v []float64) (Coefficients, error) {
	if len(v) != VectorLen {
		return Coefficients{}, fmt.Errorf("coefficient vector needs %d entries, got %d", VectorLen, len(v))
	}
	den := 1 + v[0]/2 + v[1]/3 + v[2]/4
	if den == 0 {
		return Coefficients{}, fmt.Errorf("coefficient vector has a degenerate weighting polynomial")
	}
	return Coefficients{
		W1:   timeAverageWeight(v[0], v[1], v[2]),
		W1L1: v[3],
		W2L2: v[4],
		W3L3: v[5],
		W1L4: v[6],
		W2L5: v[7],
		W1L6: v[8],
		L1:   v[9],
		L2:   v[10],
		L3:   v[11],
		L4:   v[12],
		L5:   v[13],
	}, nil
}
