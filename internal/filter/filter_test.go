package filter

import (
	"math"
	"testing"
)

func TestApply_Identity(t *testing.T) {
	f := Filter{B: [4]float64{1, 0, 0, 0}, A: [4]float64{1, 0, 0, 0}}
	x := []float64{1, -2, 3.5, 0, 7}
	y := f.Apply(x, State{})
	for i := range x {
		if y[i] != x[i] {
			t.Errorf("sample %d: got %g, want %g", i, y[i], x[i])
		}
	}
}

func TestApply_PureDelay(t *testing.T) {
	f := Filter{B: [4]float64{0, 1, 0, 0}, A: [4]float64{1, 0, 0, 0}}
	x := []float64{1, 2, 3, 4, 5}
	y := f.Apply(x, State{})
	if y[0] != 0 {
		t.Errorf("first output should be 0, got %g", y[0])
	}
	for i := 1; i < len(x); i++ {
		if y[i] != x[i-1] {
			t.Errorf("sample %d: got %g, want %g", i, y[i], x[i-1])
		}
	}
}

func TestApply_OnePoleRecurrence(t *testing.T) {
	f := Filter{B: [4]float64{1, 0, 0, 0}, A: [4]float64{1, -0.5, 0, 0}}
	x := []float64{1, 0, 0, 0, 0, 0}
	y := f.Apply(x, State{})
	for i := range y {
		want := math.Pow(0.5, float64(i))
		if math.Abs(y[i]-want) > 1e-15 {
			t.Errorf("sample %d: got %g, want %g", i, y[i], want)
		}
	}
}

// directForm evaluates the same difference equation sample by sample from
// its definition, with zero initial conditions.
func directForm(b, a [4]float64, x []float64) []float64 {
	y := make([]float64, len(x))
	at := func(s []float64, i int) float64 {
		if i < 0 {
			return 0
		}
		return s[i]
	}
	for n := range x {
		v := 0.0
		for k := 0; k < 4; k++ {
			v += b[k] * at(x, n-k)
		}
		for k := 1; k < 4; k++ {
			v -= a[k] * at(y, n-k)
		}
		y[n] = v
	}
	return y
}

func TestApply_MatchesDirectForm(t *testing.T) {
	f := Filter{
		B: [4]float64{0.3, -0.1, 0.05, 0.2},
		A: [4]float64{1, -1.2, 0.7, -0.1},
	}
	x := []float64{1, 0.5, -0.25, 2, -1, 0, 0.75, 3, -2, 0.1, 0.1, -0.6}

	got := f.Apply(x, State{})
	want := directForm(f.B, f.A, x)
	for i := range x {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d: transposed form %g, direct form %g", i, got[i], want[i])
		}
	}
}

func TestSeedFromHistory_ContinuesHomogeneousResponse(t *testing.T) {
	a := [4]float64{1, -1.5, 0.8, -0.2}
	f := Filter{A: a}

	// Three most recent outputs, newest first.
	y0, y1, y2 := 0.9, 0.6, 0.2

	zi := SeedFromHistory(a, y0, y1, y2)
	got := f.Apply(make([]float64, 6), zi)

	hist := []float64{y2, y1, y0}
	for i := range got {
		n := len(hist)
		want := -a[1]*hist[n-1] - a[2]*hist[n-2] - a[3]*hist[n-3]
		if math.Abs(got[i]-want) > 1e-12 {
			t.Errorf("sample %d: got %g, want %g", i, got[i], want)
		}
		hist = append(hist, want)
	}
}

func TestSeedFromHistory_ZeroHistoryIsZeroState(t *testing.T) {
	zi := SeedFromHistory([4]float64{1, -0.4, 0.3, -0.05}, 0, 0, 0)
	if zi != (State{}) {
		t.Errorf("zero history should preload nothing, got %v", zi)
	}
}
