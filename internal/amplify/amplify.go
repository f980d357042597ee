// Package amplify turns a GSSSS coefficient set and an oscillator into its
// discrete one-step form: the 3x3 amplification matrix over the state
// (u, dt*v, dt^2*a), the characteristic polynomial, and the equivalent
// recursive filter taps for the displacement output. Loads are mass
// normalized throughout, so a ground-motion record enters as -ag and an
// applied force as p/m.
package amplify

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/quakesim/internal/filter"
	"github.com/san-kum/quakesim/internal/gssss"
	"github.com/san-kum/quakesim/internal/sdof"
)

var (
	// ErrDegenerate reports a coefficient set whose single-solve pivot
	// vanishes for the given oscillator, leaving no equation to solve.
	ErrDegenerate = errors.New("amplification pivot is zero")

	// ErrSingular reports an amplification matrix that cannot be
	// inverted to back-propagate the initial state.
	ErrSingular = errors.New("amplification matrix is singular")
)

// Amplification is the discrete form of one oscillator under one scheme.
type Amplification struct {
	Sys    sdof.System
	Coeffs gssss.Coefficients

	// D is the single-solve pivot W1L6 + 2*ksi*Omega*W2L5 + Omega^2*W3L3.
	D float64

	// A maps the state (u, dt*v, dt^2*a) across one step.
	A *mat.Dense

	// Den and Num are the displacement filter taps. Den[0] is one.
	Den [4]float64
	Num [4]float64

	loadDir *mat.VecDense // increment direction (L3, L5, 1)
}

// New builds the amplification form. It fails when the system parameters
// are invalid or the scheme degenerates for this sampling frequency.
func New(sys sdof.System, c gssss.Coefficients) (*Amplification, error) {
	if err := sys.Validate(); err != nil {
		return nil, err
	}

	om := sys.OmegaDt()
	xi := sys.Ksi

	d := c.W1L6 + 2*xi*om*c.W2L5 + om*om*c.W3L3
	if math.Abs(d) < 1e-14 {
		return nil, fmt.Errorf("%w: omega*dt=%g", ErrDegenerate, om)
	}

	e1 := om * om / d
	e2 := (2*xi*om + c.W1L1*om*om) / d
	e3 := (1 + 2*xi*om*c.W1L4 + c.W2L2*om*om) / d

	a := mat.NewDense(3, 3, []float64{
		1 - c.L3*e1, c.L1 - c.L3*e2, c.L2 - c.L3*e3,
		-c.L5 * e1, 1 - c.L5*e2, c.L4 - c.L5*e3,
		-e1, -e2, 1 - e3,
	})

	am := &Amplification{
		Sys:     sys,
		Coeffs:  c,
		D:       d,
		A:       a,
		loadDir: mat.NewVecDense(3, []float64{c.L3, c.L5, 1}),
	}
	am.Den = characteristic(a)
	am.Num = am.numerator()
	return am, nil
}

// characteristic returns the taps (1, -tr, +minors, -det) of the cubic
// characteristic polynomial of a.
func characteristic(a *mat.Dense) [4]float64 {
	tr := a.At(0, 0) + a.At(1, 1) + a.At(2, 2)
	minors := a.At(1, 1)*a.At(2, 2) - a.At(1, 2)*a.At(2, 1) +
		a.At(0, 0)*a.At(2, 2) - a.At(0, 2)*a.At(2, 0) +
		a.At(0, 0)*a.At(1, 1) - a.At(0, 1)*a.At(1, 0)
	return [4]float64{1, -tr, minors, -mat.Det(a)}
}

// numerator expands c^T adj(zI-A) h for the displacement output row,
// blends the load across the step with W1, and scales by dt^2/D.
func (am *Amplification) numerator() [4]float64 {
	a := am.A
	c := am.Coeffs

	n2 := c.L3
	n1 := -c.L3*(a.At(1, 1)+a.At(2, 2)) + c.L5*a.At(0, 1) + a.At(0, 2)
	n0 := c.L3*(a.At(1, 1)*a.At(2, 2)-a.At(1, 2)*a.At(2, 1)) +
		c.L5*(a.At(0, 2)*a.At(2, 1)-a.At(0, 1)*a.At(2, 2)) +
		a.At(0, 1)*a.At(1, 2) - a.At(0, 2)*a.At(1, 1)

	scale := am.Sys.Dt * am.Sys.Dt / am.D
	w := c.W1
	return [4]float64{
		scale * w * n2,
		scale * (w*n1 + (1-w)*n2),
		scale * (w*n0 + (1-w)*n1),
		scale * (1 - w) * n0,
	}
}

// Filter returns the displacement filter for this discrete form.
func (am *Amplification) Filter() filter.Filter {
	return filter.Filter{B: am.Num, A: am.Den}
}

// InitialState assembles the nondimensional state (u0, dt*v0, dt^2*a0)
// with the acceleration consistent with the balance at the start, f0 being
// the mass-normalized load there.
func (am *Amplification) InitialState(u0, v0, f0 float64) *mat.VecDense {
	om := am.Sys.Omega()
	a0 := f0 - om*om*u0 - 2*am.Sys.Ksi*om*v0
	dt := am.Sys.Dt
	return mat.NewVecDense(3, []float64{u0, dt * v0, dt * dt * a0})
}

// Advance maps the state across one step under the previous and current
// mass-normalized load samples.
func (am *Amplification) Advance(z mat.Vector, prevLoad, curLoad float64) *mat.VecDense {
	next := mat.NewVecDense(3, nil)
	next.MulVec(am.A, z)
	blended := (1-am.Coeffs.W1)*prevLoad + am.Coeffs.W1*curLoad
	next.AddScaledVec(next, blended*am.Sys.Dt*am.Sys.Dt/am.D, am.loadDir)
	return next
}
