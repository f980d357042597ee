// Package spectrum sweeps a ground-motion record over a grid of oscillator
// periods and collects the peak responses: the displacement, velocity and
// acceleration spectra plus the pseudo quantities derived from Sd.
package spectrum

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/san-kum/quakesim/internal/excite"
	"github.com/san-kum/quakesim/internal/metrics"
	"github.com/san-kum/quakesim/internal/response"
	"github.com/san-kum/quakesim/internal/sdof"
)

// Request describes one spectrum sweep. Every period runs a unit-mass
// oscillator with stiffness set from the period.
type Request struct {
	Periods []float64
	Ksi     float64
	Scheme  string
	Rho     float64

	// Workers caps the parallel fan-out; zero or less means one worker
	// per CPU.
	Workers int
}

// Point is the peak response at one period.
type Point struct {
	Period float64
	Sd     float64 // peak relative displacement
	Sv     float64 // peak relative velocity
	Sa     float64 // peak absolute acceleration
	PSv    float64 // pseudo-velocity, omega*Sd
	PSa    float64 // pseudo-acceleration, omega^2*Sd
}

// Compute runs the sweep. Points come back in request order regardless of
// how the work was scheduled; the first failure cancels the result.
func Compute(ctx context.Context, rec *excite.Record, req Request) ([]Point, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if len(req.Periods) == 0 {
		return nil, errors.New("spectrum: no periods requested")
	}
	for _, period := range req.Periods {
		if period <= 0 || math.IsNaN(period) {
			return nil, fmt.Errorf("spectrum: period must be positive, got %g", period)
		}
	}

	workers := req.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(req.Periods) {
		workers = len(req.Periods)
	}

	points := make([]Point, len(req.Periods))
	errs := make([]error, len(req.Periods))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					errs[idx] = err
					continue
				}
				points[idx], errs[idx] = one(rec, req, req.Periods[idx])
			}
		}()
	}
	for i := range req.Periods {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}

func one(rec *excite.Record, req Request, period float64) (Point, error) {
	w := 2 * math.Pi / period
	sys := sdof.System{K: w * w, M: 1, Ksi: req.Ksi, Dt: rec.Dt}

	h, err := response.Compute(sys, rec.Samples, response.Options{Scheme: req.Scheme, Rho: req.Rho})
	if err != nil {
		return Point{}, fmt.Errorf("period %g: %w", period, err)
	}

	sd := metrics.Peak(h.Disp)
	return Point{
		Period: period,
		Sd:     sd,
		Sv:     metrics.Peak(h.Vel),
		Sa:     metrics.Peak(h.Accel),
		PSv:    w * sd,
		PSa:    w * w * sd,
	}, nil
}

// Periods builds a log-spaced period grid with exact endpoints.
func Periods(tmin, tmax float64, n int) ([]float64, error) {
	if err := checkGrid(tmin, tmax, n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	span := math.Log(tmax / tmin)
	for i := range out {
		out[i] = tmin * math.Exp(span*float64(i)/float64(n-1))
	}
	out[0] = tmin
	out[n-1] = tmax
	return out, nil
}

// LinearPeriods builds an evenly spaced period grid with exact endpoints.
func LinearPeriods(tmin, tmax float64, n int) ([]float64, error) {
	if err := checkGrid(tmin, tmax, n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	span := tmax - tmin
	for i := range out {
		out[i] = tmin + span*float64(i)/float64(n-1)
	}
	out[n-1] = tmax
	return out, nil
}

func checkGrid(tmin, tmax float64, n int) error {
	if tmin <= 0 || math.IsNaN(tmin) {
		return fmt.Errorf("spectrum: shortest period must be positive, got %g", tmin)
	}
	if tmax <= tmin {
		return fmt.Errorf("spectrum: period range [%g, %g] is empty", tmin, tmax)
	}
	if n < 2 {
		return fmt.Errorf("spectrum: need at least two periods, got %d", n)
	}
	return nil
}
