package amplify

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/quakesim/internal/filter"
)

// Seed computes the filter register preload that makes the displacement
// filter start from initial displacement u0 and velocity v0, with the
// initial acceleration taken consistent with the mass-normalized load f0.
//
// The state is back-propagated two free steps through the inverse of the
// amplification matrix; the three displacement samples obtained this way
// carry the full state into the scalar recurrence. An all-zero initial
// state needs no solve and seeds empty registers, which keeps explicit
// schemes with a singular amplification matrix usable for records that
// start from rest.
func (am *Amplification) Seed(u0, v0, f0 float64) (filter.State, error) {
	z := am.InitialState(u0, v0, f0)
	if z.AtVec(0) == 0 && z.AtVec(1) == 0 && z.AtVec(2) == 0 {
		return filter.State{}, nil
	}

	var lu mat.LU
	lu.Factorize(am.A)

	var back1, back2 mat.VecDense
	if err := lu.SolveVecTo(&back1, false, z); err != nil {
		return filter.State{}, fmt.Errorf("%w: cannot back-propagate initial state: %v", ErrSingular, err)
	}
	if err := lu.SolveVecTo(&back2, false, &back1); err != nil {
		return filter.State{}, fmt.Errorf("%w: cannot back-propagate initial state: %v", ErrSingular, err)
	}

	return filter.SeedFromHistory(am.Den, u0, back1.AtVec(0), back2.AtVec(0)), nil
}
