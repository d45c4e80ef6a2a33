package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cjlkaiser-cpu/physics-sound-lab/internal/sim"
)

const (
	DefaultDuration     = 2.0
	DefaultSampleStride = 100
	DefaultPosition     = 0.5
	DefaultAmplitude    = 1.0
)

// Config describes one batch run: the tuning of both strings, the shared
// damping and bridge stiffness, the plucks to apply before stepping, and
// how long to run. Values pass through the driver's clamps, so an
// out-of-range file still produces a valid run.
type Config struct {
	String1Hz       float64 `yaml:"string1_hz"`
	String2Hz       float64 `yaml:"string2_hz"`
	Damping         float64 `yaml:"damping"`
	BridgeStiffness float64 `yaml:"bridge_stiffness"`

	Duration     float64 `yaml:"duration"`      // seconds of simulated time
	SampleStride int     `yaml:"sample_stride"` // steps between samples

	Plucks []Pluck `yaml:"plucks"`
}

// Pluck is one pluck gesture applied before the run starts.
type Pluck struct {
	String    int     `yaml:"string"`
	Position  float64 `yaml:"position"`
	Amplitude float64 `yaml:"amplitude"`
}

func DefaultConfig() *Config {
	return &Config{
		String1Hz:       sim.DefaultFrequency1,
		String2Hz:       sim.DefaultFrequency2,
		Damping:         0.00001,
		BridgeStiffness: 1.0,
		Duration:        DefaultDuration,
		SampleStride:    DefaultSampleStride,
		Plucks: []Pluck{
			{String: 0, Position: DefaultPosition, Amplitude: DefaultAmplitude},
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
		return nil, fmt.Errorf("parsing %s: %w", path, err)
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

// Steps converts the configured duration to physics steps at the fixed
// oversampled timestep.
func (c *Config) Steps() int {
	return int(c.Duration / sim.Dt)
}

// Apply configures a simulation and applies the plucks.
func (c *Config) Apply(s *sim.Simulation) {
	s.SetString1Frequency(c.String1Hz)
	s.SetString2Frequency(c.String2Hz)
	s.SetDamping(c.Damping)
	s.SetBridgeStiffness(c.BridgeStiffness)
	for _, p := range c.Plucks {
		s.Pluck(p.String, p.Position, p.Amplitude)
	}
}
