package gssss

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrUnknownScheme is returned by Select and Lookup when no registered
// scheme matches the requested name or alias.
var ErrUnknownScheme = errors.New("unknown scheme")

// Scheme describes one registered algorithm: its canonical name, accepted
// aliases, the admissible range of the spectral radius r∞, and the builder
// that produces coefficients for a radius inside that range.
type Scheme struct {
	Name    string
	Aliases []string
	Family  string
	Summary string

	// UsesRho reports whether the scheme is tuned by r∞. Classical
	// fixed-constant schemes ignore the requested radius entirely.
	UsesRho bool
	RhoMin  float64
	RhoMax  float64

	build func(rho float64) Coefficients
}

// Notice records a spectral radius that fell outside the admissible range
// of its scheme and the value actually applied after clamping.
type Notice struct {
	Scheme    string
	Requested float64
	Applied   float64
	Min       float64
	Max       float64
}

func (n Notice) String() string {
	return fmt.Sprintf("scheme %s: spectral radius %g outside [%g, %g], using %g",
		n.Scheme, n.Requested, n.Min, n.Max, n.Applied)
}

var schemes = []Scheme{
	{
		Name:    "u0v0opt",
		Aliases: []string{"generalized-alpha", "chung-hulbert"},
		Family:  "U0",
		Summary: "optimal dissipation over the whole range; the generalized-alpha method",
		UsesRho: true,
		RhoMin:  0, RhoMax: 1,
		build: func(rho float64) Coefficients { return u0(rho, rho, rho) },
	},
	{
		Name:    "u0v1opt",
		Family:  "U0",
		Summary: "optimal U0-V1 member; spurious root tied to (1-r)/2r",
		UsesRho: true,
		RhoMin:  1.0 / 3.0, RhoMax: 1,
		build: func(rho float64) Coefficients { return u0(rho, rho, (1-rho)/(2*rho)) },
	},
	{
		Name:    "u0v0nd",
		Aliases: []string{"non-dissipative"},
		Family:  "U0",
		Summary: "undamped principal roots; r∞ damps only the spurious root",
		UsesRho: true,
		RhoMin:  0, RhoMax: 1,
		build: func(rho float64) Coefficients { return u0(1, 1, rho) },
	},
	{
		Name:    "wbz",
		Aliases: []string{"bossak-alpha"},
		Family:  "alpha",
		Summary: "WBZ-alpha; spurious root pinned at zero",
		UsesRho: true,
		RhoMin:  0, RhoMax: 1,
		build: func(rho float64) Coefficients { return u0(rho, rho, 0) },
	},
	{
		Name:    "hht",
		Aliases: []string{"hilber-hughes-taylor"},
		Family:  "alpha",
		Summary: "HHT-alpha; r∞ limited to [1/2, 1]",
		UsesRho: true,
		RhoMin:  1.0 / 2.0, RhoMax: 1,
		build: func(rho float64) Coefficients { return u0(rho, rho, (1-rho)/(2*rho)) },
	},
	{
		Name:    "midpoint",
		Aliases: []string{"implicit-midpoint"},
		Family:  "U0",
		Summary: "implicit midpoint rule; u0v0opt with r∞ fixed at one",
		build:   func(float64) Coefficients { return u0(1, 1, 1) },
	},
	{
		Name:    "annihilating",
		Aliases: []string{"asymptotic-annihilation"},
		Family:  "U0",
		Summary: "u0v0opt with r∞ fixed at zero; kills the unresolved response in one step",
		build:   func(float64) Coefficients { return u0(0, 0, 0) },
	},
	{
		Name:    "naa",
		Aliases: []string{"newmark", "trapezoidal", "average-acceleration"},
		Family:  "newmark",
		Summary: "Newmark average acceleration (gamma=1/2, beta=1/4)",
		build:   func(float64) Coefficients { return newmark(1.0/2.0, 1.0/4.0) },
	},
	{
		Name:    "nla",
		Aliases: []string{"linear-acceleration"},
		Family:  "newmark",
		Summary: "Newmark linear acceleration (gamma=1/2, beta=1/6)",
		build:   func(float64) Coefficients { return newmark(1.0/2.0, 1.0/6.0) },
	},
	{
		Name:    "cdm",
		Aliases: []string{"central-difference"},
		Family:  "newmark",
		Summary: "central difference (beta=0); explicit and conditionally stable",
		build:   func(float64) Coefficients { return newmark(1.0/2.0, 0) },
	},
	{
		Name:    "fox-goodwin",
		Aliases: []string{"royal-road"},
		Family:  "newmark",
		Summary: "Fox-Goodwin (beta=1/12); fourth-order phase accuracy",
		build:   func(float64) Coefficients { return newmark(1.0/2.0, 1.0/12.0) },
	},
	{
		Name:    "newmark-damped",
		Aliases: []string{"ndm"},
		Family:  "newmark",
		Summary: "dissipative Newmark (gamma=0.6, beta=0.3025)",
		build:   func(float64) Coefficients { return newmark(0.6, 0.3025) },
	},
	{
		Name:    "wilson",
		Aliases: []string{"wilson-theta"},
		Family:  "wilson",
		Summary: "Wilson-theta collocation with theta=1.4",
		build:   func(float64) Coefficients { return wilson(1.4) },
	},
}

var byName = make(map[string]*Scheme)

func init() {
	for i := range schemes {
		s := &schemes[i]
		byName[normalize(s.Name)] = s
		for _, a := range s.Aliases {
			byName[normalize(a)] = s
		}
	}
}

var nameCleaner = strings.NewReplacer("-", "", "_", "", " ", "")

func normalize(name string) string {
	return nameCleaner.Replace(strings.ToLower(name))
}

// Lookup resolves a scheme name or alias to its registry entry.
func Lookup(name string) (Scheme, error) {
	s, ok := byName[normalize(name)]
	if !ok {
		return Scheme{}, fmt.Errorf("%w: %s", ErrUnknownScheme, name)
	}
	return *s, nil
}

// Select resolves name and builds its coefficients for spectral radius rho.
// A radius outside the scheme's admissible range is clamped to the nearest
// bound and reported through a non-nil Notice; the returned coefficients are
// always usable when the error is nil. Fixed-constant schemes ignore rho.
func Select(name string, rho float64) (Coefficients, *Notice, error) {
	s, ok := byName[normalize(name)]
	if !ok {
		return Coefficients{}, nil, fmt.Errorf("%w: %s", ErrUnknownScheme, name)
	}
	if !s.UsesRho {
		return s.build(0), nil, nil
	}
	if math.IsNaN(rho) {
		return Coefficients{}, nil, fmt.Errorf("scheme %s: spectral radius is NaN", s.Name)
	}
	applied := rho
	if applied < s.RhoMin {
		applied = s.RhoMin
	} else if applied > s.RhoMax {
		applied = s.RhoMax
	}
	var notice *Notice
	if applied != rho {
		notice = &Notice{
			Scheme:    s.Name,
			Requested: rho,
			Applied:   applied,
			Min:       s.RhoMin,
			Max:       s.RhoMax,
		}
	}
	return s.build(applied), notice, nil
}

// Schemes returns a copy of the registry in declaration order.
func Schemes() []Scheme {
	out := make([]Scheme, len(schemes))
	copy(out, schemes)
	return out
}

// Known returns the sorted canonical scheme names.
func Known() []string {
	names := make([]string, len(schemes))
	for i, s := range schemes {
		names[i] = s.Name
	}
	sort.Strings(names)
	return names
}
