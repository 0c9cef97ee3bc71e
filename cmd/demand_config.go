package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/airport-sim/airport-sim/sim"
)

// demandFile is the on-disk demand schedule:
//
//	slots:
//	  - start_min: 0
//	    end_min: 30
//	    pax: 120
type demandFile struct {
	Slots []sim.DemandSlot `yaml:"slots"`
}

// LoadDemandSchedule parses a YAML demand schedule and validates every
// slot, so malformed schedules fail before the engine is constructed.
func LoadDemandSchedule(path string) ([]sim.DemandSlot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var df demandFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(df.Slots) == 0 {
		return nil, fmt.Errorf("%s: demand schedule has no slots", path)
	}

	for i, slot := range df.Slots {
		if err := slot.Validate(); err != nil {
			return nil, fmt.Errorf("%s: slot %d: %w", path, i, err)
		}
	}
	return df.Slots, nil
}
