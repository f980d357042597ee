// Package sdof describes the single-degree-of-freedom oscillator whose
// response the integration pipeline computes.
package sdof

import (
	"fmt"
	"math"
)

// System is a damped oscillator sampled at a fixed step. Stiffness and mass
// set the natural frequency, Ksi is the viscous damping ratio, and Dt is the
// sampling interval of both the excitation and the response.
type System struct {
	K   float64 // stiffness
	M   float64 // mass
	Ksi float64 // damping ratio
	Dt  float64 // sample step in seconds
}

// Omega returns the undamped natural circular frequency sqrt(K/M).
func (s System) Omega() float64 {
	return math.Sqrt(s.K / s.M)
}

// OmegaDt returns the nondimensional sampling frequency omega*dt that
// drives the amplification matrix.
func (s System) OmegaDt() float64 {
	return s.Omega() * s.Dt
}

// Period returns the undamped natural period in seconds.
func (s System) Period() float64 {
	return 2 * math.Pi / s.Omega()
}

// Damping returns the physical damping coefficient 2*Ksi*Omega*M.
func (s System) Damping() float64 {
	return 2 * s.Ksi * s.Omega() * s.M
}

// Validate checks the physical parameters before any coefficient work.
func (s System) Validate() error {
	if s.K <= 0 || math.IsNaN(s.K) || math.IsInf(s.K, 0) {
		return fmt.Errorf("stiffness must be positive and finite, got %g", s.K)
	}
	if s.M <= 0 || math.IsNaN(s.M) || math.IsInf(s.M, 0) {
		return fmt.Errorf("mass must be positive and finite, got %g", s.M)
	}
	if s.Ksi < 0 || math.IsNaN(s.Ksi) {
		return fmt.Errorf("damping ratio must be non-negative, got %g", s.Ksi)
	}
	if s.Dt <= 0 || math.IsNaN(s.Dt) || math.IsInf(s.Dt, 0) {
		return fmt.Errorf("sample step must be positive and finite, got %g", s.Dt)
	}
	return nil
}
