package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum is a one-sided Fourier amplitude spectrum.
type Spectrum struct {
	Freqs []float64 // bin frequencies in Hz
	Amps  []float64 // |X(f)|*dt, the continuous-transform estimate
	Df    float64   // bin spacing
}

// FourierAmplitude transforms a track sampled at dt. Any length works; the
// one-sided half of the transform is returned with the dt scaling that
// approximates the continuous Fourier amplitude.
func FourierAmplitude(x []float64, dt float64) *Spectrum {
	if len(x) == 0 || dt <= 0 {
		return &Spectrum{}
	}

	coeffs := fft.FFTReal(x)
	n := len(x)
	bins := n/2 + 1
	df := 1 / (float64(n) * dt)

	s := &Spectrum{
		Freqs: make([]float64, bins),
		Amps:  make([]float64, bins),
		Df:    df,
	}
	for k := 0; k < bins; k++ {
		s.Freqs[k] = float64(k) * df
		s.Amps[k] = cmplx.Abs(coeffs[k]) * dt
	}
	return s
}

// DominantFrequency returns the frequency of the strongest non-DC line, or
// zero when the track carries no oscillatory content.
func DominantFrequency(x []float64, dt float64) float64 {
	s := FourierAmplitude(x, dt)
	best, bestAmp := 0, 0.0
	for k := 1; k < len(s.Amps); k++ {
		if s.Amps[k] > bestAmp {
			bestAmp = s.Amps[k]
			best = k
		}
	}
	if bestAmp == 0 {
		return 0
	}
	return s.Freqs[best]
}

// DominantPeriod returns the reciprocal of the dominant frequency, or zero
// for a line-free track.
func DominantPeriod(x []float64, dt float64) float64 {
	f := DominantFrequency(x, dt)
	if f == 0 {
		return 0
	}
	return 1 / f
}
