package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SimulationConfig)
	}{
		{"zero arrival df", func(c *SimulationConfig) { c.ArrivalDF = 0 }},
		{"negative arrival scale", func(c *SimulationConfig) { c.ArrivalScale = -1 }},
		{"inverted arrival range", func(c *SimulationConfig) { c.ArrivalRangeMin = 120; c.ArrivalRangeMax = 20 }},
		{"p_online above 1", func(c *SimulationConfig) { c.POnline = 1.5 }},
		{"negative p_baggage", func(c *SimulationConfig) { c.PBaggage = -0.1 }},
		{"p_baggage_counter above 1", func(c *SimulationConfig) { c.PBaggageCounter = 2 }},
		{"zero check-in split", func(c *SimulationConfig) { c.POnline = 0; c.PKiosk = 0; c.PCounter = 0 }},
		{"zero multi min", func(c *SimulationConfig) { c.GroupMultiMin = 0 }},
		{"inverted multi range", func(c *SimulationConfig) { c.GroupMultiMin = 5; c.GroupMultiMax = 3 }},
		{"zero kiosk capacity", func(c *SimulationConfig) { c.CapacityCheckinKiosk = 0 }},
		{"negative counter capacity", func(c *SimulationConfig) { c.CapacityCheckinCounter = -2 }},
		{"zero drop capacity", func(c *SimulationConfig) { c.CapacityDropPoint = 0 }},
		{"zero service mean", func(c *SimulationConfig) { c.ServiceTagKioskMean = 0 }},
		{"negative service std", func(c *SimulationConfig) { c.ServiceDropPointStd = -1 }},
		{"negative floor", func(c *SimulationConfig) { c.ServiceTimeFloorSec = -1 }},
		{"negative online delay", func(c *SimulationConfig) { c.OnlineCheckinDelaySec = -1 }},
		{"negative security delay", func(c *SimulationConfig) { c.SecurityTransitDelaySec = -1 }},
		{"zero sample interval", func(c *SimulationConfig) { c.SampleIntervalSec = 0 }},
		{"negative horizon buffer", func(c *SimulationConfig) { c.HorizonBufferSec = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewSimulator_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CapacityTagKiosk = 0

	_, err := NewSimulator(cfg, nil)
	require.Error(t, err)
}

func TestConfig_ServiceSamplersCoverAllStations(t *testing.T) {
	samplers := DefaultConfig().serviceSamplers()
	for _, name := range StationNames {
		require.Contains(t, samplers, name)
		assert.Greater(t, samplers[name].Mean, 0.0)
	}
}
