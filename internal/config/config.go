// Package config holds the YAML workbench configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStatePath  = "system_state.json"
	DefaultPlotHeight = 10
	DefaultPlotWidth  = 80
	DefaultStepSize   = 1.0
)

type Config struct {
	StatePath string        `yaml:"state_path"`
	Initial   InitialState  `yaml:"initial"`
	Plot      PlotConfig    `yaml:"plot"`
	Inspector InspectConfig `yaml:"inspector"`
}

// InitialState seeds new state files and process runs.
type InitialState struct {
	InternalEnergy float64 `yaml:"internal_energy"`
	HeatAdded      float64 `yaml:"heat_added"`
	WorkDone       float64 `yaml:"work_done"`
}

type PlotConfig struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
}

// InspectConfig tunes the interactive inspector.
type InspectConfig struct {
	StepSize float64 `yaml:"step_size"`
}

func DefaultConfig() *Config {
	return &Config{
		StatePath: DefaultStatePath,
		Plot: PlotConfig{
			Height: DefaultPlotHeight,
			Width:  DefaultPlotWidth,
		},
		Inspector: InspectConfig{
			StepSize: DefaultStepSize,
		},
	}
}

// Load layers the file at path over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
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
