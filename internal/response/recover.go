package response

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/quakesim/internal/amplify"
	"github.com/san-kum/quakesim/internal/sdof"
)

// ErrDegenerateVelocity reports a coefficient set that leaves no velocity
// information in the displacement recurrence.
var ErrDegenerateVelocity = errors.New("velocity cannot be recovered from the displacement track")

// recoverVelocity inverts the displacement row of the amplification update.
// Each step couples u[n] to the previous displacement, the previous load
// and the previous velocity; eliminating the previous acceleration through
// the balance leaves one velocity unknown per sample. The result at index n
// is the velocity carried into step n, so index 0 reproduces the initial
// velocity whenever the record starts quiet.
func recoverVelocity(am *amplify.Amplification, disp, load []float64, u0 float64) ([]float64, error) {
	sys := am.Sys
	c := am.Coeffs
	dt := sys.Dt
	w := sys.Omega()

	a11 := am.A.At(0, 0)
	a12 := am.A.At(0, 1)
	a13 := am.A.At(0, 2)

	cu := w*w*a13*dt*dt - a11
	cf := -a13 * dt * dt
	cv := a12*dt - a13*dt*dt*2*sys.Ksi*w
	if math.Abs(cv) < 1e-12*dt {
		return nil, fmt.Errorf("%w: coefficient %g at omega*dt=%g", ErrDegenerateVelocity, cv, sys.OmegaDt())
	}

	kappa := c.L3 * dt * dt / am.D
	vel := make([]float64, len(disp))
	prevU, prevF := u0, 0.0
	for n := range disp {
		blended := kappa * ((1-c.W1)*prevF + c.W1*load[n])
		vel[n] = (disp[n] + cu*prevU + cf*prevF - blended) / cv
		prevU, prevF = disp[n], load[n]
	}
	return vel, nil
}

// recoverOutputs derives the acceleration and restoring force tracks. The
// acceleration is the absolute one under ground excitation, since the
// ground term cancels out of -w^2*u - 2*ksi*w*v in relative coordinates.
func recoverOutputs(sys sdof.System, disp, vel []float64) (accel, force []float64) {
	w := sys.Omega()
	accel = make([]float64, len(disp))
	force = make([]float64, len(disp))
	for n := range disp {
		accel[n] = -w*w*disp[n] - 2*sys.Ksi*w*vel[n]
		force[n] = sys.K * disp[n]
	}
	return accel, force
}
