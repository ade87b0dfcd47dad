// Package config loads run settings from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt         = 0.005
	DefaultDuration   = 20.0
	DefaultScale      = 1.0
	DefaultFrameEvery = 4
	DefaultOutDir     = "runs"
)

// Config selects the demo variant, the render backend, and the stepping
// parameters for a run.
type Config struct {
	Backend    string       `yaml:"backend"` // terminal, window, svg
	Tie        string       `yaml:"tie"`     // none, spring, rod
	Dt         float64      `yaml:"dt"`
	Duration   float64      `yaml:"duration"`
	Scale      float32      `yaml:"scale"` // default geometry size hint, 0 suppresses it
	FrameEvery int          `yaml:"frame_every"`
	OutDir     string       `yaml:"out_dir"`
	Camera     CameraConfig `yaml:"camera"`
}

// CameraConfig overrides the initial camera when set.
type CameraConfig struct {
	Location   []float32 `yaml:"location"`
	FocalPoint []float32 `yaml:"focal_point"`
}

func DefaultConfig() *Config {
	return &Config{
		Backend:    "terminal",
		Tie:        "spring",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Scale:      DefaultScale,
		FrameEvery: DefaultFrameEvery,
		OutDir:     DefaultOutDir,
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
	if err := cfg.Validate(); err != nil {
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

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("config: dt must be positive, got %v", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("config: duration must be positive, got %v", c.Duration)
	}
	switch c.Tie {
	case "none", "spring", "rod":
	default:
		return fmt.Errorf("config: unknown tie %q", c.Tie)
	}
	switch c.Backend {
	case "terminal", "window", "svg":
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	for _, v := range [][]float32{c.Camera.Location, c.Camera.FocalPoint} {
		if len(v) != 0 && len(v) != 3 {
			return fmt.Errorf("config: camera vectors need exactly 3 components, got %d", len(v))
		}
	}
	return nil
}
