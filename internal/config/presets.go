package config

import "sort"

var Presets = map[string]*Config{
	"impulse": {
		Scheme: "naa", Rho: 1,
		System: SystemConfig{Stiffness: 1000, Mass: 1, Damping: 0.05, Dt: 0.01},
		Record: RecordConfig{Dt: 0.01, Scale: 1, Synth: "impulse", Amplitude: 1, Samples: 600},
	},
	"resonant": {
		Scheme: "u0v0opt", Rho: 1,
		System: SystemConfig{Stiffness: 986.96, Mass: 1, Damping: 0.02, Dt: 0.005},
		Record: RecordConfig{Dt: 0.005, Scale: 1, Synth: "harmonic", Amplitude: 1, Frequency: 5, Samples: 2000},
	},
	"pulse": {
		Scheme: "nla", Rho: 1,
		System: SystemConfig{Stiffness: 39.478, Mass: 1, Damping: 0.05, Dt: 0.01},
		Record: RecordConfig{Dt: 0.01, Scale: 1, Synth: "pulse", Amplitude: 3, Width: 0.5, Samples: 800},
	},
	"ricker": {
		Scheme: "hht", Rho: 0.9,
		System: SystemConfig{Stiffness: 1000, Mass: 1, Damping: 0.05, Dt: 0.005},
		Record: RecordConfig{Dt: 0.005, Scale: 1, Synth: "ricker", Amplitude: 2, Frequency: 3, Samples: 1601},
	},
	"dissipative": {
		Scheme: "annihilating",
		System: SystemConfig{Stiffness: 1000, Mass: 1, Damping: 0.05, Dt: 0.01},
		Record: RecordConfig{Dt: 0.01, Scale: 1, Synth: "decaying", Amplitude: 1.5, Frequency: 4, Decay: 0.8, Samples: 1200},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
