package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/airport-sim/airport-sim/sim"
)

// LoadConfig returns the default configuration overlaid with the YAML file
// at path. An empty path returns the defaults unchanged. Fields absent from
// the file keep their default values.
func LoadConfig(path string) (*sim.SimulationConfig, error) {
	cfg := sim.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
