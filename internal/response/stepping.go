package response

import (
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/quakesim/internal/sdof"
)

// ByStepping computes the same response as Compute by marching the
// three-component state through the amplification matrix one sample at a
// time instead of running the recursive filter. The two paths agree to
// round-off; the marching form is the independent cross-check and also
// handles explicit schemes whose matrix cannot be inverted for seeding.
func ByStepping(sys sdof.System, excitation []float64, opts Options) (*History, error) {
	p, err := prepare(sys, excitation, opts)
	if err != nil {
		return nil, err
	}

	var z mat.Vector = p.am.InitialState(opts.U0, opts.V0, p.load[0])
	disp := make([]float64, len(p.load))
	prev := 0.0
	for n, cur := range p.load {
		z = p.am.Advance(z, prev, cur)
		disp[n] = z.AtVec(0)
		prev = cur
	}

	return p.finish(disp, opts)
}
