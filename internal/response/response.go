// Package response computes the motion of a damped oscillator under a
// sampled excitation. The excitation is filtered through the equivalent
// recursive form of the chosen GSSSS algorithm, then velocity, acceleration
// and restoring force are recovered from the displacement track.
//
// Input samples are ground acceleration by default; the oscillator then
// responds in relative coordinates and the acceleration output is the
// absolute one. With ForceInput set, samples are an applied force on the
// mass and outputs stay in absolute coordinates throughout.
package response

import (
	"fmt"

	"github.com/san-kum/quakesim/internal/amplify"
	"github.com/san-kum/quakesim/internal/gssss"
	"github.com/san-kum/quakesim/internal/sdof"
)

// DefaultScheme is used when Options.Scheme is empty.
const DefaultScheme = "u0v0opt"

// Options selects the algorithm and the starting state.
type Options struct {
	// Scheme is a registry name or alias. Empty means DefaultScheme.
	Scheme string

	// Rho is the requested high-frequency spectral radius for schemes
	// that are tuned by it.
	Rho float64

	// Coeffs bypasses the registry with a raw coefficient set.
	Coeffs *gssss.Coefficients

	// U0 and V0 are the initial displacement and velocity.
	U0 float64
	V0 float64

	// ForceInput marks the excitation as an applied force instead of
	// ground acceleration.
	ForceInput bool
}

// History is the sampled response. All slices share the input length and
// index n sits at time n*Dt on the excitation axis.
type History struct {
	Scheme string
	Rho    float64
	Coeffs gssss.Coefficients
	Dt     float64

	Disp  []float64
	Vel   []float64
	Accel []float64
	Force []float64

	// Notices carries non-fatal adjustments made during selection,
	// such as a clamped spectral radius.
	Notices []gssss.Notice
}

// Time returns the excitation-axis time of sample i.
func (h *History) Time(i int) float64 {
	return float64(i) * h.Dt
}

// Len returns the number of samples.
func (h *History) Len() int {
	return len(h.Disp)
}

// Compute runs the full pipeline over the excitation record.
func Compute(sys sdof.System, excitation []float64, opts Options) (*History, error) {
	p, err := prepare(sys, excitation, opts)
	if err != nil {
		return nil, err
	}

	zi, err := p.am.Seed(opts.U0, opts.V0, p.load[0])
	if err != nil {
		return nil, &PipelineError{Stage: "seeding", Err: err}
	}

	disp := p.am.Filter().Apply(p.load, zi)
	return p.finish(disp, opts)
}

// prepared carries the state shared by the filter and marching paths.
type prepared struct {
	sys    sdof.System
	am     *amplify.Amplification
	load   []float64
	scheme string
	rho    float64
	notes  []gssss.Notice
}

func prepare(sys sdof.System, excitation []float64, opts Options) (*prepared, error) {
	if len(excitation) == 0 {
		return nil, &PipelineError{Stage: "input", Err: fmt.Errorf("excitation record is empty")}
	}
	if err := sys.Validate(); err != nil {
		return nil, &PipelineError{Stage: "input", Err: err}
	}

	p := &prepared{sys: sys, rho: opts.Rho}

	var c gssss.Coefficients
	if opts.Coeffs != nil {
		c = *opts.Coeffs
		p.scheme = "custom"
	} else {
		name := opts.Scheme
		if name == "" {
			name = DefaultScheme
		}
		var notice *gssss.Notice
		var err error
		c, notice, err = gssss.Select(name, opts.Rho)
		if err != nil {
			return nil, &PipelineError{Stage: "coefficients", Err: err}
		}
		if notice != nil {
			p.notes = append(p.notes, *notice)
		}
		resolved, err := gssss.Lookup(name)
		if err != nil {
			return nil, &PipelineError{Stage: "coefficients", Err: err}
		}
		p.scheme = resolved.Name
	}

	am, err := amplify.New(sys, c)
	if err != nil {
		return nil, &PipelineError{Stage: "amplification", Err: err}
	}
	p.am = am

	// Mass-normalize: ground acceleration drives the relative motion
	// with -ag, an applied force with p/m.
	p.load = make([]float64, len(excitation))
	if opts.ForceInput {
		for i, e := range excitation {
			p.load[i] = e / sys.M
		}
	} else {
		for i, e := range excitation {
			p.load[i] = -e
		}
	}
	return p, nil
}

// finish recovers the derived tracks and assembles the history.
func (p *prepared) finish(disp []float64, opts Options) (*History, error) {
	vel, err := recoverVelocity(p.am, disp, p.load, opts.U0)
	if err != nil {
		return nil, &PipelineError{Stage: "velocity recovery", Err: err}
	}
	accel, force := recoverOutputs(p.sys, disp, vel)

	return &History{
		Scheme:  p.scheme,
		Rho:     p.rho,
		Coeffs:  p.am.Coeffs,
		Dt:      p.sys.Dt,
		Disp:    disp,
		Vel:     vel,
		Accel:   accel,
		Force:   force,
		Notices: p.notes,
	}, nil
}
