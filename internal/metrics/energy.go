package metrics

import "math"

// Energy ledger of a computed response. All tracks share the output grid
// of the response history; the cumulative integrals use the trapezoidal
// rule and start at zero on the first sample.

// KineticEnergy returns the kinetic energy track 1/2 m v^2.
func KineticEnergy(m float64, vel []float64) []float64 {
	out := make([]float64, len(vel))
	for i, v := range vel {
		out[i] = 0.5 * m * v * v
	}
	return out
}

// StrainEnergy returns the elastic strain energy track 1/2 k u^2.
func StrainEnergy(k float64, disp []float64) []float64 {
	out := make([]float64, len(disp))
	for i, u := range disp {
		out[i] = 0.5 * k * u * u
	}
	return out
}

// DampedEnergy returns the cumulative energy dissipated by viscous
// damping, the running integral of c v^2.
func DampedEnergy(c, dt float64, vel []float64) []float64 {
	out := make([]float64, len(vel))
	for i := 1; i < len(vel); i++ {
		out[i] = out[i-1] + 0.5*c*dt*(vel[i-1]*vel[i-1]+vel[i]*vel[i])
	}
	return out
}

// InputEnergy returns the cumulative work done by the driving force on
// the moving mass, the running integral of f v. For ground excitation
// the driving force on the relative coordinate is -m*ag.
func InputEnergy(dt float64, force, vel []float64) []float64 {
	n := len(force)
	if len(vel) < n {
		n = len(vel)
	}
	out := make([]float64, n)
	for i := 1; i < n; i++ {
		out[i] = out[i-1] + 0.5*dt*(force[i-1]*vel[i-1]+force[i]*vel[i])
	}
	return out
}

// EnergyError reports the worst violation of the balance
//
//	kinetic + strain + damped = initial + input
//
// normalized by the peak total energy reached. The violation shrinks
// with the time step for any convergent run, so a large value signals
// an inaccurate or unstable integration.
func EnergyError(kinetic, strain, damped, input []float64) float64 {
	n := len(kinetic)
	for _, t := range [][]float64{strain, damped} {
		if len(t) < n {
			n = len(t)
		}
	}
	if input != nil && len(input) < n {
		n = len(input)
	}
	if n == 0 {
		return 0
	}

	e0 := kinetic[0] + strain[0]
	var ref, worst float64
	for i := 0; i < n; i++ {
		total := kinetic[i] + strain[i] + damped[i]
		if total > ref {
			ref = total
		}
		supplied := e0
		if input != nil {
			supplied += input[i]
		}
		if r := math.Abs(total - supplied); r > worst {
			worst = r
		}
	}
	if ref == 0 {
		return 0
	}
	return worst / ref
}
