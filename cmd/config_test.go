package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/airport-sim/airport-sim/sim"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, sim.DefaultConfig(), cfg)
}

func TestLoadConfig_FileOverlaysDefaults(t *testing.T) {
	// GIVEN a YAML file setting only two fields
	path := writeTempYAML(t, `
capacity_checkin_kiosk: 3
seed: 99
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// THEN named fields take the file's values, the rest stay default
	assert.Equal(t, 3, cfg.CapacityCheckinKiosk)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, sim.DefaultConfig().ServiceCheckinKioskMean, cfg.ServiceCheckinKioskMean)
	assert.Equal(t, sim.DefaultConfig().POnline, cfg.POnline)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeTempYAML(t, "seed: [not, a, scalar]"))
	assert.Error(t, err)
}

func TestLoadDemandSchedule_Valid(t *testing.T) {
	path := writeTempYAML(t, `
slots:
  - start_min: 0
    end_min: 30
    pax: 120
  - start_min: 30
    end_min: 60
    pax: 80
`)

	slots, err := LoadDemandSchedule(path)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, sim.DemandSlot{StartMin: 0, EndMin: 30, PaxCount: 120}, slots[0])
	assert.Equal(t, sim.DemandSlot{StartMin: 30, EndMin: 60, PaxCount: 80}, slots[1])
}

func TestLoadDemandSchedule_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no slots key", "other: 1"},
		{"empty slots", "slots: []"},
		{"inverted slot", "slots:\n  - start_min: 30\n    end_min: 10\n    pax: 5"},
		{"zero-length slot", "slots:\n  - start_min: 30\n    end_min: 30\n    pax: 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadDemandSchedule(writeTempYAML(t, tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadDemandSchedule(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
