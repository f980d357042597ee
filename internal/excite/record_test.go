package excite

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeRecord(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_SingleColumn(t *testing.T) {
	path := writeRecord(t, "motion.txt", "0.1\n-0.2\n0.3\n")
	r, err := Load(path, 0.02)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if r.Dt != 0.02 {
		t.Errorf("dt = %g, want 0.02", r.Dt)
	}
	want := []float64{0.1, -0.2, 0.3}
	for i, v := range want {
		if r.Samples[i] != v {
			t.Errorf("sample %d = %g, want %g", i, r.Samples[i], v)
		}
	}
	if r.Name != "motion" {
		t.Errorf("name = %q, want motion", r.Name)
	}
}

func TestLoad_SingleColumnNeedsStep(t *testing.T) {
	path := writeRecord(t, "motion.txt", "0.1\n0.2\n")
	if _, err := Load(path, 0); err == nil {
		t.Error("expected an error without a sample step")
	}
}

func TestLoad_TwoColumnWhitespace(t *testing.T) {
	path := writeRecord(t, "motion.dat", "0.00 1.0\n0.05 2.0\n0.10 3.0\n")
	r, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if math.Abs(r.Dt-0.05) > 1e-12 {
		t.Errorf("dt = %g, want 0.05", r.Dt)
	}
	if r.Samples[2] != 3.0 {
		t.Errorf("sample 2 = %g, want 3", r.Samples[2])
	}
}

func TestLoad_TwoColumnCSVWithHeader(t *testing.T) {
	path := writeRecord(t, "motion.csv", "time,accel\n0.0,0.5\n0.01,0.6\n0.02,0.7\n")
	r, err := Load(path, 0)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if math.Abs(r.Dt-0.01) > 1e-12 {
		t.Errorf("dt = %g, want 0.01", r.Dt)
	}
	if len(r.Samples) != 3 {
		t.Errorf("got %d samples, want 3", len(r.Samples))
	}
}

func TestLoad_SkipsCommentsAndBlanks(t *testing.T) {
	path := writeRecord(t, "motion.txt", "# header\n\n0.1\n# mid comment\n0.2\n")
	r, err := Load(path, 0.01)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(r.Samples) != 2 {
		t.Errorf("got %d samples, want 2", len(r.Samples))
	}
}

func TestLoad_RejectsNonUniformTimes(t *testing.T) {
	path := writeRecord(t, "motion.dat", "0.0 1\n0.1 2\n0.3 3\n")
	if _, err := Load(path, 0); err == nil {
		t.Error("expected an error for non-uniform sampling")
	}
}

func TestLoad_RejectsGarbageMidFile(t *testing.T) {
	path := writeRecord(t, "motion.txt", "0.1\nnot-a-number\n0.2\n")
	if _, err := Load(path, 0.01); err == nil {
		t.Error("expected a parse error")
	}
}

func TestResample_Halving(t *testing.T) {
	r := &Record{Name: "r", Dt: 0.1, Samples: []float64{0, 1, 2, 3}}
	out, err := Resample(r, 0.05)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	// The ramp interpolates exactly.
	want := []float64{0, 0.5, 1, 1.5, 2, 2.5, 3}
	if len(out.Samples) != len(want) {
		t.Fatalf("got %d samples, want %d", len(out.Samples), len(want))
	}
	for i, v := range want {
		if math.Abs(out.Samples[i]-v) > 1e-12 {
			t.Errorf("sample %d = %g, want %g", i, out.Samples[i], v)
		}
	}
}

func TestResample_SameStepCopies(t *testing.T) {
	r := &Record{Name: "r", Dt: 0.1, Samples: []float64{1, 2}}
	out, err := Resample(r, 0.1)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	out.Samples[0] = 99
	if r.Samples[0] != 1 {
		t.Error("resample must not alias the source samples")
	}
}

func TestHarmonic(t *testing.T) {
	r := Harmonic(2, 5, 0.001, 400)
	// A quarter period of a 5 Hz sine is 50 samples.
	if math.Abs(r.Samples[50]-2) > 1e-9 {
		t.Errorf("quarter-period sample = %g, want 2", r.Samples[50])
	}
	if math.Abs(r.Samples[200]) > 1e-9 {
		t.Errorf("full period sample = %g, want 0", r.Samples[200])
	}
}

func TestDecayingHarmonic_Envelope(t *testing.T) {
	r := DecayingHarmonic(1, 5, 2, 0.001, 1000)
	// Peaks a full period apart shrink by exp(-decay*T).
	ratio := r.Samples[250] / r.Samples[50]
	want := math.Exp(-2 * 0.2)
	if math.Abs(ratio-want) > 1e-9 {
		t.Errorf("peak ratio = %g, want %g", ratio, want)
	}
}

func TestImpulse(t *testing.T) {
	r := Impulse(2.5, 0.01, 10)
	if r.Samples[0] != 2.5 {
		t.Errorf("first sample = %g, want 2.5", r.Samples[0])
	}
	for i := 1; i < 10; i++ {
		if r.Samples[i] != 0 {
			t.Errorf("sample %d = %g, want 0", i, r.Samples[i])
		}
	}
}

func TestPulse_QuietAfterDuration(t *testing.T) {
	r := Pulse(3, 0.1, 0.01, 50)
	if math.Abs(r.Samples[5]-3) > 1e-9 {
		t.Errorf("pulse midpoint = %g, want 3", r.Samples[5])
	}
	for i := 11; i < 50; i++ {
		if r.Samples[i] != 0 {
			t.Errorf("sample %d = %g after the pulse ended", i, r.Samples[i])
		}
	}
}

func TestRicker_PeakAtCenter(t *testing.T) {
	r := Ricker(1.5, 4, 0.001, 1001)
	if math.Abs(r.Samples[500]-1.5) > 1e-9 {
		t.Errorf("center sample = %g, want 1.5", r.Samples[500])
	}
	if math.Abs(r.Samples[0]) > 1e-6 {
		t.Errorf("edge sample = %g, should be near zero", r.Samples[0])
	}
}

func TestRecordValidate(t *testing.T) {
	bad := &Record{Name: "b", Dt: 0, Samples: []float64{1}}
	if err := bad.Validate(); err == nil {
		t.Error("zero step should fail validation")
	}
	empty := &Record{Name: "e", Dt: 0.01}
	if err := empty.Validate(); err == nil {
		t.Error("empty record should fail validation")
	}
}
