package sdof

import (
	"math"
	"testing"
)

func TestSystemDerivedQuantities(t *testing.T) {
	s := System{K: 4 * math.Pi * math.Pi, M: 1, Ksi: 0.05, Dt: 0.01}

	if math.Abs(s.Omega()-2*math.Pi) > 1e-12 {
		t.Errorf("omega: got %g, want 2*pi", s.Omega())
	}
	if math.Abs(s.Period()-1) > 1e-12 {
		t.Errorf("period: got %g, want 1", s.Period())
	}
	if math.Abs(s.OmegaDt()-2*math.Pi*0.01) > 1e-12 {
		t.Errorf("omega*dt: got %g", s.OmegaDt())
	}
	want := 2 * 0.05 * 2 * math.Pi
	if math.Abs(s.Damping()-want) > 1e-12 {
		t.Errorf("damping coefficient: got %g, want %g", s.Damping(), want)
	}
}

func TestSystemValidate(t *testing.T) {
	good := System{K: 100, M: 2, Ksi: 0.02, Dt: 0.005}
	if err := good.Validate(); err != nil {
		t.Errorf("valid system rejected: %v", err)
	}

	cases := []struct {
		name string
		sys  System
	}{
		{"zero stiffness", System{K: 0, M: 1, Ksi: 0.05, Dt: 0.01}},
		{"negative stiffness", System{K: -5, M: 1, Ksi: 0.05, Dt: 0.01}},
		{"zero mass", System{K: 100, M: 0, Ksi: 0.05, Dt: 0.01}},
		{"negative damping", System{K: 100, M: 1, Ksi: -0.01, Dt: 0.01}},
		{"zero step", System{K: 100, M: 1, Ksi: 0.05, Dt: 0}},
		{"nan stiffness", System{K: math.NaN(), M: 1, Ksi: 0.05, Dt: 0.01}},
	}
	for _, tc := range cases {
		if err := tc.sys.Validate(); err == nil {
			t.Errorf("%s: expected a validation error", tc.name)
		}
	}
}

func TestSystemUndamped(t *testing.T) {
	s := System{K: 250, M: 10, Ksi: 0, Dt: 0.02}
	if err := s.Validate(); err != nil {
		t.Errorf("undamped system should validate: %v", err)
	}
	if s.Damping() != 0 {
		t.Errorf("undamped system has damping coefficient %g", s.Damping())
	}
}
