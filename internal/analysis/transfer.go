package analysis

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/quakesim/internal/filter"
)

// FrequencyResponse evaluates the gain of a displacement filter at the
// given frequencies in Hz. The filter runs at sample step dt, so content
// above the Nyquist frequency folds as usual.
func FrequencyResponse(f filter.Filter, dt float64, freqs []float64) []float64 {
	gains := make([]float64, len(freqs))
	for i, hz := range freqs {
		zinv := cmplx.Exp(complex(0, -2*math.Pi*hz*dt))

		num := complex(f.B[0], 0)
		den := complex(f.A[0], 0)
		zp := complex(1, 0)
		for k := 1; k < 4; k++ {
			zp *= zinv
			num += complex(f.B[k], 0) * zp
			den += complex(f.A[k], 0) * zp
		}
		gains[i] = cmplx.Abs(num / den)
	}
	return gains
}
