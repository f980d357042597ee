package gssss

import (
	"errors"
	"math"
	"sort"
	"testing"
)

func maxCoeffDiff(a, b Coefficients) float64 {
	pairs := [][2]float64{
		{a.W1, b.W1},
		{a.W1L1, b.W1L1}, {a.W2L2, b.W2L2}, {a.W3L3, b.W3L3},
		{a.W1L4, b.W1L4}, {a.W2L5, b.W2L5}, {a.W1L6, b.W1L6},
		{a.L1, b.L1}, {a.L2, b.L2}, {a.L3, b.L3}, {a.L4, b.L4}, {a.L5, b.L5},
	}
	var max float64
	for _, p := range pairs {
		if d := math.Abs(p[0] - p[1]); d > max {
			max = d
		}
	}
	return max
}

func TestSelect_AverageAcceleration(t *testing.T) {
	c, notice, err := Select("naa", 0)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if notice != nil {
		t.Errorf("fixed-constant scheme should never produce a notice, got %v", notice)
	}

	want := Coefficients{
		W1: 1, W1L1: 1, W2L2: 0.5, W3L3: 0.25, W1L4: 1, W2L5: 0.5, W1L6: 1,
		L1: 1, L2: 0.5, L3: 0.25, L4: 1, L5: 0.5,
	}
	if d := maxCoeffDiff(c, want); d > 1e-12 {
		t.Errorf("average acceleration constants off by %g: %+v", d, c)
	}
}

func TestSelect_GeneralizedAlphaValues(t *testing.T) {
	c, notice, err := Select("u0v0opt", 0.8)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if notice != nil {
		t.Errorf("r=0.8 is in range, unexpected notice %v", notice)
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"W1", c.W1, 1 / 1.8},
		{"L3", c.L3, 1 / (1.8 * 1.8)},
		{"L5", c.L5, (3 + 1.6 - 0.64) / (2 * 1.8 * 1.8)},
		{"W1L6", c.W1L6, (2 + 2.4 - 0.512) / (1.8 * 1.8 * 1.8)},
		{"W2L2", c.W2L2, 0.5 / 1.8},
	}
	for _, ck := range checks {
		if math.Abs(ck.got-ck.want) > 1e-12 {
			t.Errorf("%s: got %.15g, want %.15g", ck.name, ck.got, ck.want)
		}
	}
}

func TestSelect_AlphaFamilyCollapsesToNewmark(t *testing.T) {
	// With no high-frequency dissipation both HHT and WBZ reduce to the
	// average acceleration rule.
	naa, _, err := Select("naa", 0)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	for _, name := range []string{"hht", "wbz"} {
		c, _, err := Select(name, 1)
		if err != nil {
			t.Fatalf("Select(%s) failed: %v", name, err)
		}
		if d := maxCoeffDiff(c, naa); d > 1e-12 {
			t.Errorf("%s at r=1 should equal naa, max diff %g", name, d)
		}
	}
}

func TestSelect_MidpointIsGeneralizedAlphaAtOne(t *testing.T) {
	mid, _, err := Select("midpoint", 0.3)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	ga, _, err := Select("u0v0opt", 1)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if d := maxCoeffDiff(mid, ga); d > 1e-12 {
		t.Errorf("midpoint should equal u0v0opt at r=1, max diff %g", d)
	}
	if math.Abs(mid.W1-0.5) > 1e-12 {
		t.Errorf("midpoint blends the load at midstep, got W1=%g", mid.W1)
	}
}

func TestSelect_WilsonConstants(t *testing.T) {
	c, _, err := Select("wilson", 0)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"W1", c.W1, 1.4},
		{"W2L2", c.W2L2, 1.4 * 1.4 / 2},
		{"W3L3", c.W3L3, 1.4 * 1.4 * 1.4 / 6},
		{"W1L6", c.W1L6, 1.4},
		{"L3", c.L3, 1.0 / 6.0},
		{"L5", c.L5, 0.5},
	}
	for _, ck := range checks {
		if math.Abs(ck.got-ck.want) > 1e-12 {
			t.Errorf("%s: got %.15g, want %.15g", ck.name, ck.got, ck.want)
		}
	}
}

func TestSelect_CentralDifferenceIsExplicit(t *testing.T) {
	c, _, err := Select("cdm", 0)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if c.W3L3 != 0 || c.L3 != 0 {
		t.Errorf("central difference must not weight the displacement increment: W3L3=%g L3=%g", c.W3L3, c.L3)
	}
}

func TestSelect_ClampsLowRadius(t *testing.T) {
	c, notice, err := Select("u0v0opt", -0.2)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if notice == nil {
		t.Fatal("expected a clamp notice for r=-0.2")
	}
	if notice.Requested != -0.2 || notice.Applied != 0 {
		t.Errorf("notice = %+v, want requested -0.2 applied 0", notice)
	}

	atZero, _, _ := Select("u0v0opt", 0)
	if d := maxCoeffDiff(c, atZero); d > 1e-12 {
		t.Errorf("clamped coefficients should match the bound, max diff %g", d)
	}
}

func TestSelect_ClampsHighRadius(t *testing.T) {
	_, notice, err := Select("hht", 1.5)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if notice == nil || notice.Applied != 1 {
		t.Fatalf("expected a clamp to 1, got %+v", notice)
	}
}

func TestSelect_HHTLowerBound(t *testing.T) {
	_, notice, err := Select("hht", 0.2)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if notice == nil || notice.Applied != 0.5 {
		t.Fatalf("hht should clamp to its 1/2 lower bound, got %+v", notice)
	}
}

func TestSelect_BoundsProduceNoNotice(t *testing.T) {
	cases := []struct {
		scheme string
		rho    float64
	}{
		{"u0v0opt", 0},
		{"u0v0opt", 1},
		{"hht", 0.5},
		{"u0v1opt", 1.0 / 3.0},
	}
	for _, tc := range cases {
		_, notice, err := Select(tc.scheme, tc.rho)
		if err != nil {
			t.Fatalf("Select(%s, %g) failed: %v", tc.scheme, tc.rho, err)
		}
		if notice != nil {
			t.Errorf("Select(%s, %g): boundary value should not be flagged, got %v", tc.scheme, tc.rho, notice)
		}
	}
}

func TestSelect_UnknownScheme(t *testing.T) {
	_, _, err := Select("houbolt", 0.5)
	if !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("expected ErrUnknownScheme, got %v", err)
	}
}

func TestSelect_RejectsNaNRadius(t *testing.T) {
	if _, _, err := Select("u0v0opt", math.NaN()); err == nil {
		t.Error("expected an error for a NaN spectral radius")
	}
}

func TestSelect_AliasesResolve(t *testing.T) {
	cases := []struct{ alias, canonical string }{
		{"newmark", "naa"},
		{"Generalized-Alpha", "u0v0opt"},
		{"central_difference", "cdm"},
		{"Hilber-Hughes-Taylor", "hht"},
	}
	for _, tc := range cases {
		a, _, err := Select(tc.alias, 0.9)
		if err != nil {
			t.Fatalf("Select(%s) failed: %v", tc.alias, err)
		}
		c, _, err := Select(tc.canonical, 0.9)
		if err != nil {
			t.Fatalf("Select(%s) failed: %v", tc.canonical, err)
		}
		if d := maxCoeffDiff(a, c); d > 1e-15 {
			t.Errorf("alias %s should resolve to %s, max diff %g", tc.alias, tc.canonical, d)
		}
	}
}

func TestSelect_FixedSchemesIgnoreRadius(t *testing.T) {
	a, _, _ := Select("wilson", 0.1)
	b, notice, _ := Select("wilson", 7)
	if notice != nil {
		t.Errorf("fixed scheme emitted a notice: %v", notice)
	}
	if d := maxCoeffDiff(a, b); d != 0 {
		t.Errorf("wilson should ignore the requested radius, max diff %g", d)
	}
}

func TestKnown_SortedCanonicalNames(t *testing.T) {
	names := Known()
	if len(names) != len(schemes) {
		t.Fatalf("Known returned %d names, registry has %d", len(names), len(schemes))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Known should be sorted, got %v", names)
	}
}

func TestLookup(t *testing.T) {
	s, err := Lookup("bossak-alpha")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if s.Name != "wbz" {
		t.Errorf("alias resolved to %s, want wbz", s.Name)
	}

	if _, err := Lookup("nosuch"); !errors.Is(err, ErrUnknownScheme) {
		t.Errorf("expected ErrUnknownScheme, got %v", err)
	}
}
