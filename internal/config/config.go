package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStiffness = 1000.0
	DefaultMass      = 1.0
	DefaultDamping   = 0.05
	DefaultStep      = 0.01
	DefaultScheme    = "u0v0opt"
	DefaultRho       = 1.0
	DefaultScale     = 1.0
	DefaultSamples   = 2000
	DefaultFrequency = 2.0
)

type Config struct {
	Scheme  string        `yaml:"scheme"`
	Rho     float64       `yaml:"rho"`
	System  SystemConfig  `yaml:"system"`
	Record  RecordConfig  `yaml:"record"`
	Initial InitialConfig `yaml:"initial"`
}

type SystemConfig struct {
	Stiffness float64 `yaml:"stiffness"`
	Mass      float64 `yaml:"mass"`
	Damping   float64 `yaml:"damping"`
	Dt        float64 `yaml:"dt"`
}

// RecordConfig selects the excitation: a file when Path is set, otherwise a
// synthetic source named by Synth (impulse, harmonic, decaying, pulse, ricker).
type RecordConfig struct {
	Path       string  `yaml:"path"`
	Dt         float64 `yaml:"dt"`
	Scale      float64 `yaml:"scale"`
	Synth      string  `yaml:"synth"`
	Amplitude  float64 `yaml:"amplitude"`
	Frequency  float64 `yaml:"frequency"`
	Decay      float64 `yaml:"decay"`
	Width      float64 `yaml:"width"`
	Samples    int     `yaml:"samples"`
	ForceInput bool    `yaml:"force_input"`
}

type InitialConfig struct {
	Disp float64 `yaml:"disp"`
	Vel  float64 `yaml:"vel"`
}

func DefaultConfig() *Config {
	return &Config{
		Scheme: DefaultScheme,
		Rho:    DefaultRho,
		System: SystemConfig{
			Stiffness: DefaultStiffness,
			Mass:      DefaultMass,
			Damping:   DefaultDamping,
			Dt:        DefaultStep,
		},
		Record: RecordConfig{
			Dt:        DefaultStep,
			Scale:     DefaultScale,
			Synth:     "ricker",
			Amplitude: 1.0,
			Frequency: DefaultFrequency,
			Samples:   DefaultSamples,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
