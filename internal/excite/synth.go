package excite

import "math"

// Harmonic builds amp*sin(2*pi*freq*t) over n samples.
func Harmonic(amp, freq, dt float64, n int) *Record {
	r := &Record{Name: "harmonic", Dt: dt, Samples: make([]float64, n)}
	for i := range r.Samples {
		r.Samples[i] = amp * math.Sin(2*math.Pi*freq*float64(i)*dt)
	}
	return r
}

// DecayingHarmonic builds amp*exp(-decay*t)*sin(2*pi*freq*t), a crude
// stand-in for the strong-motion phase of a recorded ground motion.
func DecayingHarmonic(amp, freq, decay, dt float64, n int) *Record {
	r := &Record{Name: "decaying", Dt: dt, Samples: make([]float64, n)}
	for i := range r.Samples {
		t := float64(i) * dt
		r.Samples[i] = amp * math.Exp(-decay*t) * math.Sin(2*math.Pi*freq*t)
	}
	return r
}

// Impulse builds a single sample of height amp followed by quiet, which
// approximates an impulse of area amp*dt.
func Impulse(amp, dt float64, n int) *Record {
	r := &Record{Name: "impulse", Dt: dt, Samples: make([]float64, n)}
	if n > 0 {
		r.Samples[0] = amp
	}
	return r
}

// Pulse builds a half-sine pulse of the given duration followed by quiet.
func Pulse(amp, duration, dt float64, n int) *Record {
	r := &Record{Name: "pulse", Dt: dt, Samples: make([]float64, n)}
	for i := range r.Samples {
		t := float64(i) * dt
		if t <= duration {
			r.Samples[i] = amp * math.Sin(math.Pi*t/duration)
		}
	}
	return r
}

// Ricker builds a Ricker wavelet with peak frequency freq centered in the
// record, a convenient broadband test excitation.
func Ricker(amp, freq, dt float64, n int) *Record {
	r := &Record{Name: "ricker", Dt: dt, Samples: make([]float64, n)}
	center := float64(n-1) * dt / 2
	for i := range r.Samples {
		tau := float64(i)*dt - center
		arg := math.Pi * math.Pi * freq * freq * tau * tau
		r.Samples[i] = amp * (1 - 2*arg) * math.Exp(-arg)
	}
	return r
}
